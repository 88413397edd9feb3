package car

import (
	"net/url"
	"strconv"
	"strings"

	"travelbooking/internal/domain"
	"travelbooking/internal/search"
)

// SearchQuery is the rental car search boundary. Rental dates are validated
// and echoed back.
type SearchQuery struct {
	PickupLocation  string `form:"pickupLocation"`
	DropoffLocation string `form:"dropoffLocation"`
	PickupDate      string `form:"pickupDate" binding:"omitempty,isodate"`
	DropoffDate     string `form:"dropoffDate" binding:"omitempty,isodate"`
	Category        string `form:"category"`
	Transmission    string `form:"transmission"`
	MinPrice        string `form:"minPrice"`
	MaxPrice        string `form:"maxPrice"`
	Page            string `form:"page"`
	Limit           string `form:"limit"`
}

type SearchParams struct {
	PickupLocation  string `json:"pickupLocation,omitempty"`
	DropoffLocation string `json:"dropoffLocation,omitempty"`
	PickupDate      string `json:"pickupDate,omitempty"`
	DropoffDate     string `json:"dropoffDate,omitempty"`
}

func (q SearchQuery) Params() SearchParams {
	return SearchParams{
		PickupLocation:  q.PickupLocation,
		DropoffLocation: q.DropoffLocation,
		PickupDate:      q.PickupDate,
		DropoffDate:     q.DropoffDate,
	}
}

func (q SearchQuery) Paging() search.Page {
	return search.ParsePage(q.Page, q.Limit)
}

func (q SearchQuery) CacheKey() string {
	v := url.Values{}
	for k, s := range map[string]string{
		"pickupLocation":  q.PickupLocation,
		"dropoffLocation": q.DropoffLocation,
		"category":        q.Category,
		"transmission":    q.Transmission,
	} {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			v.Set(k, s)
		}
	}
	for k, raw := range map[string]string{"minPrice": q.MinPrice, "maxPrice": q.MaxPrice} {
		if n := search.OptionalFloat(raw); n != nil {
			v.Set(k, strconv.FormatFloat(*n, 'f', -1, 64))
		}
	}
	return v.Encode()
}

// BookRequest carries no price; the daily rate comes from the catalog.
type BookRequest struct {
	CarID         string         `json:"carId" binding:"required"`
	PickupDate    string         `json:"pickupDate" binding:"required,isodate"`
	DropoffDate   string         `json:"dropoffDate" binding:"required,isodate"`
	DriverDetails *domain.Driver `json:"driverDetails" binding:"required"`
	Insurance     string         `json:"insurance"`
}
