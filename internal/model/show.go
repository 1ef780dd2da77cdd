package model

import (
	"strings"
	"time"

	apperrors "go-gin-booking/pkg/app_errors"
)

// ShowTimeLayout is the start_time format accepted by the show form.
const ShowTimeLayout = "2006-01-02 15:04:05"

// Show 演出模型
//
// ArtistName and VenueName are copied from the artist and venue when the show
// is created and are not updated when either is renamed.
type Show struct {
	ID         int       `json:"id" db:"id"`
	ArtistID   int       `json:"artist_id" db:"artist_id"`
	ArtistName string    `json:"artist_name" db:"artist_name"`
	VenueID    int       `json:"venue_id" db:"venue_id"`
	VenueName  string    `json:"venue_name" db:"venue_name"`
	StartTime  time.Time `json:"start_time" db:"start_time"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// ShowListing is a show joined with the image links of its artist and venue.
type ShowListing struct {
	ID              int       `json:"id"`
	ArtistID        int       `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	VenueID         int       `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	VenueImageLink  string    `json:"venue_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// ShowForm 建立演出表單
//
// Ids are bound as text so a non-numeric value fails validation on its own
// field rather than aborting the whole bind.
type ShowForm struct {
	ArtistID  string `form:"artist_id" binding:"required,recordid"`
	VenueID   string `form:"venue_id" binding:"required,recordid"`
	StartTime string `form:"start_time" binding:"required,datetime=2006-01-02 15:04:05"`
}

// ToShow parses the form into a show in the given location. Names are filled
// in by the service from the referenced rows. Unparsable fields come back as
// a *apperrors.ValidationError.
func (f *ShowForm) ToShow(loc *time.Location) (*Show, error) {
	var invalid []string

	artistID, ok := parseRecordID(f.ArtistID)
	if !ok {
		invalid = append(invalid, "artist_id")
	}
	venueID, ok := parseRecordID(f.VenueID)
	if !ok {
		invalid = append(invalid, "venue_id")
	}
	start, err := time.ParseInLocation(ShowTimeLayout, strings.TrimSpace(f.StartTime), loc)
	if err != nil {
		invalid = append(invalid, "start_time")
	}

	if len(invalid) > 0 {
		return nil, &apperrors.ValidationError{Fields: invalid}
	}
	return &Show{
		ArtistID:  artistID,
		VenueID:   venueID,
		StartTime: start,
	}, nil
}
