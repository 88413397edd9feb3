package hotel

import (
	"net/url"
	"strconv"
	"strings"

	"travelbooking/internal/domain"
	"travelbooking/internal/search"
)

const (
	defaultGuests = 2
	defaultRooms  = 1
)

// SearchQuery is the hotel search boundary. Stay dates and occupancy are
// validated and echoed; availability per date is not modelled.
type SearchQuery struct {
	Destination string `form:"destination"`
	CheckIn     string `form:"checkIn" binding:"omitempty,isodate"`
	CheckOut    string `form:"checkOut" binding:"omitempty,isodate"`
	Guests      *int   `form:"guests" binding:"omitempty,min=1,max=20"`
	Rooms       *int   `form:"rooms" binding:"omitempty,min=1,max=10"`
	MinPrice    string `form:"minPrice"`
	MaxPrice    string `form:"maxPrice"`
	Rating      string `form:"rating"`
	Amenities   string `form:"amenities"`
	Page        string `form:"page"`
	Limit       string `form:"limit"`
}

type SearchParams struct {
	Destination string `json:"destination,omitempty"`
	CheckIn     string `json:"checkIn,omitempty"`
	CheckOut    string `json:"checkOut,omitempty"`
	Guests      int    `json:"guests"`
	Rooms       int    `json:"rooms"`
}

func (q SearchQuery) Params() SearchParams {
	p := SearchParams{
		Destination: q.Destination,
		CheckIn:     q.CheckIn,
		CheckOut:    q.CheckOut,
		Guests:      defaultGuests,
		Rooms:       defaultRooms,
	}
	if q.Guests != nil {
		p.Guests = *q.Guests
	}
	if q.Rooms != nil {
		p.Rooms = *q.Rooms
	}
	return p
}

func (q SearchQuery) Paging() search.Page {
	return search.ParsePage(q.Page, q.Limit)
}

func (q SearchQuery) CacheKey() string {
	v := url.Values{}
	if d := strings.ToLower(strings.TrimSpace(q.Destination)); d != "" {
		v.Set("destination", d)
	}
	for k, raw := range map[string]string{"minPrice": q.MinPrice, "maxPrice": q.MaxPrice, "rating": q.Rating} {
		if n := search.OptionalFloat(raw); n != nil {
			v.Set(k, strconv.FormatFloat(*n, 'f', -1, 64))
		}
	}
	if tokens := search.SplitCSV(strings.ToLower(q.Amenities)); len(tokens) > 0 {
		v.Set("amenities", strings.Join(tokens, ","))
	}
	return v.Encode()
}

// BookRequest carries no price; the room rate comes from the catalog.
type BookRequest struct {
	HotelID         string         `json:"hotelId" binding:"required"`
	RoomType        string         `json:"roomType" binding:"required"`
	CheckIn         string         `json:"checkIn" binding:"required,isodate"`
	CheckOut        string         `json:"checkOut" binding:"required,isodate"`
	Guests          int            `json:"guests" binding:"required,min=1"`
	Rooms           int            `json:"rooms" binding:"required,min=1"`
	GuestDetails    []domain.Guest `json:"guestDetails" binding:"required,min=1,dive"`
	SpecialRequests string         `json:"specialRequests"`
}
