package model

import "time"

// Venue 場地模型
type Venue struct {
	ID                 int       `json:"id" db:"id"`
	Name               string    `json:"name" db:"name"`
	City               string    `json:"city" db:"city"`
	State              string    `json:"state" db:"state"`
	Address            string    `json:"address" db:"address"`
	Phone              string    `json:"phone" db:"phone"`
	Genres             []string  `json:"genres" db:"genres"`
	ImageLink          string    `json:"image_link" db:"image_link"`
	Website            string    `json:"website" db:"website"`
	FacebookLink       string    `json:"facebook_link" db:"facebook_link"`
	SeekingTalent      bool      `json:"seeking_talent" db:"seeking_talent"`
	SeekingDescription string    `json:"seeking_description" db:"seeking_description"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// Summary returns the venue as a list entry with the given upcoming show count.
func (v *Venue) Summary(upcoming int) *Summary {
	return &Summary{ID: v.ID, Name: v.Name, NumUpcomingShows: upcoming}
}

// VenueForm 建立／編輯場地表單
type VenueForm struct {
	Name               string   `form:"name" binding:"required,max=120"`
	City               string   `form:"city" binding:"required,max=120"`
	State              string   `form:"state" binding:"required,usstate"`
	Address            string   `form:"address" binding:"required,max=120"`
	Phone              string   `form:"phone" binding:"omitempty,phone"`
	Genres             []string `form:"genres" binding:"required,min=1,dive,genre"`
	ImageLink          string   `form:"image_link" binding:"omitempty,url,max=500"`
	FacebookLink       string   `form:"facebook_link" binding:"omitempty,url,max=120"`
	WebsiteLink        string   `form:"website_link" binding:"omitempty,url,max=120"`
	SeekingTalent      Checkbox `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" binding:"max=500"`
}

// NewVenueForm prefills a form from a stored venue.
func NewVenueForm(v *Venue) *VenueForm {
	return &VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             v.Genres,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		WebsiteLink:        v.Website,
		SeekingTalent:      Checkbox(v.SeekingTalent),
		SeekingDescription: v.SeekingDescription,
	}
}

// ApplyTo copies the submitted fields onto v. The description is dropped
// when the venue is not seeking talent.
func (f *VenueForm) ApplyTo(v *Venue) {
	v.Name = f.Name
	v.City = f.City
	v.State = f.State
	v.Address = f.Address
	v.Phone = f.Phone
	v.Genres = f.Genres
	v.ImageLink = f.ImageLink
	v.FacebookLink = f.FacebookLink
	v.Website = f.WebsiteLink
	v.SeekingTalent = bool(f.SeekingTalent)
	v.SeekingDescription = ""
	if v.SeekingTalent {
		v.SeekingDescription = f.SeekingDescription
	}
}

func (f *VenueForm) ToVenue() *Venue {
	v := &Venue{}
	f.ApplyTo(v)
	return v
}

// VenueDetail 場地頁面：含過去與即將到來的演出
type VenueDetail struct {
	*Venue
	PastShows          []*ShowListing
	UpcomingShows      []*ShowListing
	PastShowsCount     int
	UpcomingShowsCount int
}
