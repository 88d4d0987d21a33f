package tmdb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// SearchMulti searches movies and TV shows by free text. Results whose
// media_type is neither movie nor tv (people, collections) are dropped.
func (c *Client) SearchMulti(ctx context.Context, query string, includeAdult bool) ([]Result, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", strconv.FormatBool(includeAdult))

	var page Page
	if err := c.get(ctx, "/search/multi", params, &page); err != nil {
		return nil, err
	}

	out := make([]Result, 0, len(page.Results))
	for _, r := range page.Results {
		if r.MediaType == "movie" || r.MediaType == "tv" {
			out = append(out, r)
		}
	}
	return out, nil
}

// MovieDetails fetches the full record for a movie, with videos appended.
func (c *Client) MovieDetails(ctx context.Context, id int) (*Details, error) {
	params := url.Values{}
	params.Set("append_to_response", "videos")

	var d Details
	if err := c.get(ctx, "/movie/"+strconv.Itoa(id), params, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// TVDetails fetches the full record for a show, with videos appended.
func (c *Client) TVDetails(ctx context.Context, id int) (*Details, error) {
	params := url.Values{}
	params.Set("append_to_response", "videos")

	var d Details
	if err := c.get(ctx, "/tv/"+strconv.Itoa(id), params, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Genres returns the genre name -> id mapping for a media type ("movie" or
// "tv").
func (c *Client) Genres(ctx context.Context, mediaType string) (map[string]int, error) {
	var list genreList
	if err := c.get(ctx, "/genre/"+mediaType+"/list", nil, &list); err != nil {
		return nil, err
	}

	genres := make(map[string]int, len(list.Genres))
	for _, g := range list.Genres {
		genres[g.Name] = g.ID
	}
	return genres, nil
}

// Category fetches a curated listing such as popular or top_rated.
func (c *Client) Category(ctx context.Context, mediaType, category string, page int, includeAdult bool) (*Page, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("include_adult", strconv.FormatBool(includeAdult))

	var p Page
	if err := c.get(ctx, fmt.Sprintf("/%s/%s", mediaType, category), params, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Discover runs a filtered discovery query. Filters are passed through as
// query parameters (with_genres, certification.lte, ...).
func (c *Client) Discover(ctx context.Context, mediaType string, page int, filters url.Values) (*Page, error) {
	params := url.Values{}
	for k, vs := range filters {
		for _, v := range vs {
			params.Add(k, v)
		}
	}
	params.Set("page", strconv.Itoa(page))
	if params.Get("sort_by") == "" {
		params.Set("sort_by", "popularity.desc")
	}

	var p Page
	if err := c.get(ctx, "/discover/"+mediaType, params, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
