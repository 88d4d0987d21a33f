package main

import "mediarec/cmd"

func main() {
	cmd.Execute()
}
