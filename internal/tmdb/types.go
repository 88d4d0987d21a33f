package tmdb

// Result is a single entry from a search, discover or category listing.
type Result struct {
	ID            int     `json:"id"`
	Title         string  `json:"title,omitempty"`
	Name          string  `json:"name,omitempty"`
	MediaType     string  `json:"media_type,omitempty"`
	Overview      string  `json:"overview,omitempty"`
	ReleaseDate   string  `json:"release_date,omitempty"`
	FirstAirDate  string  `json:"first_air_date,omitempty"`
	PosterPath    string  `json:"poster_path,omitempty"`
	Popularity    float64 `json:"popularity,omitempty"`
	VoteAverage   float64 `json:"vote_average,omitempty"`
	VoteCount     int     `json:"vote_count,omitempty"`
	GenreIDs      []int   `json:"genre_ids,omitempty"`
	Adult         bool    `json:"adult,omitempty"`
	OriginalTitle string  `json:"original_title,omitempty"`
}

// DisplayTitle returns whichever of title/name is set; movies carry title,
// TV entries carry name.
func (r Result) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.Name
}

// Page is the paginated listing envelope.
type Page struct {
	Page         int      `json:"page"`
	Results      []Result `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

// Genre is one entry of the genre list endpoint.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type genreList struct {
	Genres []Genre `json:"genres"`
}

// Video is a trailer/clip attached to a details response.
type Video struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// Details is the full record for a single movie or show, with videos
// appended.
type Details struct {
	Result
	Genres []Genre `json:"genres,omitempty"`
	Videos struct {
		Results []Video `json:"results"`
	} `json:"videos"`
}

// apiError is TMDB's error envelope.
type apiError struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}
