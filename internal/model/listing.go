package model

import "strings"

// Summary is a venue or artist as it appears in lists and search results.
type Summary struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Area groups the venues of one (city, state) pair.
type Area struct {
	City   string     `json:"city"`
	State  string     `json:"state"`
	Venues []*Summary `json:"venues"`
}

// SearchResult 搜尋結果
type SearchResult struct {
	Count int        `json:"count"`
	Data  []*Summary `json:"data"`
}

// Checkbox binds an HTML checkbox. Browsers send "on", or the input's value
// attribute, when checked and nothing otherwise.
type Checkbox bool

// UnmarshalParam implements gin's binding.BindUnmarshaler.
func (c *Checkbox) UnmarshalParam(param string) error {
	switch strings.ToLower(strings.TrimSpace(param)) {
	case "y", "yes", "on", "true", "1":
		*c = true
	default:
		*c = false
	}
	return nil
}
