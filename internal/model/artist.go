package model

import "time"

// Artist 藝人模型
type Artist struct {
	ID                 int       `json:"id" db:"id"`
	Name               string    `json:"name" db:"name"`
	City               string    `json:"city" db:"city"`
	State              string    `json:"state" db:"state"`
	Phone              string    `json:"phone" db:"phone"`
	Genres             []string  `json:"genres" db:"genres"`
	ImageLink          string    `json:"image_link" db:"image_link"`
	Website            string    `json:"website" db:"website"`
	FacebookLink       string    `json:"facebook_link" db:"facebook_link"`
	SeekingVenue       bool      `json:"seeking_venue" db:"seeking_venue"`
	SeekingDescription string    `json:"seeking_description" db:"seeking_description"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

func (a *Artist) Summary(upcoming int) *Summary {
	return &Summary{ID: a.ID, Name: a.Name, NumUpcomingShows: upcoming}
}

// ArtistForm 建立／編輯藝人表單
type ArtistForm struct {
	Name               string   `form:"name" binding:"required,max=120"`
	City               string   `form:"city" binding:"required,max=120"`
	State              string   `form:"state" binding:"required,usstate"`
	Phone              string   `form:"phone" binding:"omitempty,phone"`
	Genres             []string `form:"genres" binding:"required,min=1,dive,genre"`
	ImageLink          string   `form:"image_link" binding:"omitempty,url,max=500"`
	FacebookLink       string   `form:"facebook_link" binding:"omitempty,url,max=120"`
	WebsiteLink        string   `form:"website_link" binding:"omitempty,url,max=120"`
	SeekingVenue       Checkbox `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" binding:"max=500"`
}

func NewArtistForm(a *Artist) *ArtistForm {
	return &ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             a.Genres,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		WebsiteLink:        a.Website,
		SeekingVenue:       Checkbox(a.SeekingVenue),
		SeekingDescription: a.SeekingDescription,
	}
}

func (f *ArtistForm) ApplyTo(a *Artist) {
	a.Name = f.Name
	a.City = f.City
	a.State = f.State
	a.Phone = f.Phone
	a.Genres = f.Genres
	a.ImageLink = f.ImageLink
	a.FacebookLink = f.FacebookLink
	a.Website = f.WebsiteLink
	a.SeekingVenue = bool(f.SeekingVenue)
	a.SeekingDescription = ""
	if a.SeekingVenue {
		a.SeekingDescription = f.SeekingDescription
	}
}

func (f *ArtistForm) ToArtist() *Artist {
	a := &Artist{}
	f.ApplyTo(a)
	return a
}

// ArtistDetail 藝人頁面：含過去與即將到來的演出
type ArtistDetail struct {
	*Artist
	PastShows          []*ShowListing
	UpcomingShows      []*ShowListing
	PastShowsCount     int
	UpcomingShowsCount int
}
