package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"mediarec/internal/match"
	"mediarec/internal/titleindex"
)

// DefaultFamilyKeywords is the fixed keyword set used to exclude explicit
// titles from family-mode lookups when the config does not override it.
var DefaultFamilyKeywords = []string{"xxx", "porn", "erotic", "hentai", "explicit"}

type TMDB struct {
	APIKey   string
	BaseURL  string
	Language string
}

type Index struct {
	// Dir holds the downloaded exports and the built artifact.
	Dir  string
	File string
}

type Match struct {
	Cutoff int
}

type Family struct {
	Keywords []string
}

type Server struct {
	Addr string
}

type Config struct {
	TMDB   TMDB
	Index  Index
	Match  Match
	Family Family
	Server Server
}

// IndexPath is the on-disk location of the index artifact.
func (c Config) IndexPath() string {
	return filepath.Join(c.Index.Dir, c.Index.File)
}

// Load reads the ini config at path. Every key except tmdb.api_key has a
// default.
func Load(path string) (Config, error) {
	var c Config
	cfg, err := ini.Load(path)
	if err != nil {
		return c, fmt.Errorf("load config %s: %w", path, err)
	}

	sec := cfg.Section("tmdb")
	c.TMDB.APIKey = sec.Key("api_key").String()
	c.TMDB.BaseURL = sec.Key("base_url").String()
	c.TMDB.Language = sec.Key("language").MustString("en-US")

	sec = cfg.Section("index")
	c.Index.Dir = sec.Key("dir").MustString(".")
	c.Index.File = sec.Key("file").MustString(titleindex.ArtifactName)

	sec = cfg.Section("match")
	c.Match.Cutoff = sec.Key("cutoff").MustInt(match.DefaultCutoff)
	if c.Match.Cutoff < 0 || c.Match.Cutoff > 100 {
		return c, fmt.Errorf("config %s: match cutoff %d out of range [0,100]", path, c.Match.Cutoff)
	}

	sec = cfg.Section("family")
	for _, k := range sec.Key("keywords").Strings(",") {
		if k = strings.TrimSpace(k); k != "" {
			c.Family.Keywords = append(c.Family.Keywords, k)
		}
	}
	if len(c.Family.Keywords) == 0 {
		c.Family.Keywords = append([]string(nil), DefaultFamilyKeywords...)
	}

	sec = cfg.Section("server")
	c.Server.Addr = sec.Key("addr").MustString(":39039")

	return c, nil
}
