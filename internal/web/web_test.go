package web

import (
	"bytes"
	"testing"
	"time"

	"go-gin-booking/internal/cache"
	"go-gin-booking/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDatetime(t *testing.T) {
	start := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)

	assert.Equal(t, "Tue 05, 21, 2019 9:30PM", FormatDatetime("medium", start))
	assert.Equal(t, "Tuesday May, 21, 2019 at 9:30PM", FormatDatetime("full", start))
	assert.Equal(t, "Tue 05, 21, 2019 9:30PM", FormatDatetime("", start))
}

func TestTemplates(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	listing := &model.ShowListing{
		ID: 1, ArtistID: 4, ArtistName: "Guns N Petals", ArtistImageLink: "https://example.com/a.jpg",
		VenueID: 1, VenueName: "The Musical Hop", StartTime: start,
	}
	venue := &model.Venue{
		ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA",
		Genres: []string{"Jazz", "Swing"}, SeekingTalent: true, SeekingDescription: "We are on the lookout",
	}
	artist := &model.Artist{ID: 4, Name: "Guns N Petals", City: "San Francisco", State: "CA", Genres: []string{"Rock n Roll"}}
	results := &model.SearchResult{Count: 1, Data: []*model.Summary{{ID: 1, Name: "The Musical Hop"}}}
	flashes := []cache.Flash{{Category: cache.FlashSuccess, Message: "Venue The Musical Hop was successfully listed!"}}

	tests := []struct {
		name     string
		data     map[string]any
		contains []string
	}{
		{"pages/home.html", map[string]any{"Flashes": flashes}, []string{"successfully listed!", "alert-success"}},
		{"pages/venues.html", map[string]any{"Areas": []*model.Area{{
			City: "San Francisco", State: "CA", Venues: []*model.Summary{{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 2}},
		}}}, []string{"San Francisco, CA", "/venues/1", "2 upcoming shows"}},
		{"pages/venues.html", map[string]any{"Areas": []*model.Area{}}, []string{"No venues listed yet."}},
		{"pages/search_venues.html", map[string]any{"Results": results, "SearchTerm": "hop"}, []string{`for "hop": 1`}},
		{"pages/search_artists.html", map[string]any{"Results": &model.SearchResult{Data: []*model.Summary{}}, "SearchTerm": ""}, []string{": 0"}},
		{"pages/show_venue.html", map[string]any{"Venue": &model.VenueDetail{
			Venue: venue, UpcomingShows: []*model.ShowListing{listing}, PastShows: []*model.ShowListing{}, UpcomingShowsCount: 1,
		}}, []string{"1 Upcoming Shows", "0 Past Shows", "Sunday April, 1, 2035 at 8:00PM", "We are on the lookout", "/venues/1/delete"}},
		{"pages/artists.html", map[string]any{"Artists": []*model.Summary{{ID: 4, Name: "Guns N Petals"}}}, []string{"/artists/4"}},
		{"pages/show_artist.html", map[string]any{"Artist": &model.ArtistDetail{
			Artist: artist, PastShows: []*model.ShowListing{listing}, UpcomingShows: []*model.ShowListing{}, PastShowsCount: 1,
		}}, []string{"Not currently seeking performance venues", "1 Past Shows"}},
		{"pages/shows.html", map[string]any{"Shows": []*model.ShowListing{listing}}, []string{"Guns N Petals", "https://example.com/a.jpg"}},
		{"forms/new_venue.html", map[string]any{"Form": &model.VenueForm{}}, []string{`action="/venues/create"`, `<option value="Jazz">`}},
		{"forms/edit_venue.html", map[string]any{"Form": model.NewVenueForm(venue), "Venue": venue}, []string{
			`action="/venues/1/edit"`, `<option value="Jazz" selected>`, `<option value="CA" selected>`, "checked",
		}},
		{"forms/new_artist.html", map[string]any{"Form": &model.ArtistForm{}}, []string{`action="/artists/create"`}},
		{"forms/edit_artist.html", map[string]any{"Form": model.NewArtistForm(artist), "Artist": artist}, []string{
			`action="/artists/4/edit"`, `<option value="Rock n Roll" selected>`,
		}},
		{"forms/new_show.html", map[string]any{"Form": &model.ShowForm{}}, []string{`name="start_time"`}},
		{"errors/404.html", map[string]any{}, []string{"Not Found"}},
		{"errors/500.html", map[string]any{}, []string{"Internal Server Error"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.data["Title"] = "Fyyur"

			err := tmpl.ExecuteTemplate(&buf, tt.name, tt.data)

			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}
