// Package query holds the read-only derivations behind the list, search and
// detail pages. Nothing here touches storage.
package query

import (
	"strings"
	"time"

	"go-gin-booking/internal/model"
)

type location struct {
	city, state string
}

// GroupByLocation groups venues by exact (city, state) pair. Groups appear in
// the order their first venue appears in venues, and venues keep their
// relative order within a group. upcoming maps venue id to its number of
// upcoming shows; missing ids count as zero.
func GroupByLocation(venues []*model.Venue, upcoming map[int]int) []*model.Area {
	areas := make([]*model.Area, 0)
	index := make(map[location]*model.Area)

	for _, v := range venues {
		key := location{city: v.City, state: v.State}
		area, ok := index[key]
		if !ok {
			area = &model.Area{City: v.City, State: v.State, Venues: make([]*model.Summary, 0)}
			index[key] = area
			areas = append(areas, area)
		}
		area.Venues = append(area.Venues, v.Summary(upcoming[v.ID]))
	}

	return areas
}

// Search returns every item whose name contains term, ignoring case. An empty
// term matches everything. Results keep the order of items.
func Search[T any](term string, items []T, summarize func(T) *model.Summary) *model.SearchResult {
	needle := strings.ToLower(term)
	data := make([]*model.Summary, 0)

	for _, item := range items {
		s := summarize(item)
		if strings.Contains(strings.ToLower(s.Name), needle) {
			data = append(data, s)
		}
	}

	return &model.SearchResult{Count: len(data), Data: data}
}

// SplitShows partitions shows into those that started before now and those
// starting at or after now. Both keep the input order.
func SplitShows(shows []*model.ShowListing, now time.Time) (past, upcoming []*model.ShowListing) {
	past = make([]*model.ShowListing, 0)
	upcoming = make([]*model.ShowListing, 0)

	for _, s := range shows {
		if s.StartTime.Before(now) {
			past = append(past, s)
		} else {
			upcoming = append(upcoming, s)
		}
	}

	return past, upcoming
}
