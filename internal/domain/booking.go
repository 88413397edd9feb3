package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

type BookingType string

const (
	BookingFlight     BookingType = "flight"
	BookingHotel      BookingType = "hotel"
	BookingCar        BookingType = "car"
	BookingRestaurant BookingType = "restaurant"
)

func (t BookingType) Valid() bool {
	switch t {
	case BookingFlight, BookingHotel, BookingCar, BookingRestaurant:
		return true
	}
	return false
}

// ReferencePrefix is the leading segment of booking references of this type.
func (t BookingType) ReferencePrefix() string {
	switch t {
	case BookingFlight:
		return "FL"
	case BookingHotel:
		return "HT"
	case BookingCar:
		return "CR"
	case BookingRestaurant:
		return "RS"
	}
	return "BK"
}

type Booking struct {
	ID               int64          `json:"id"`
	UserID           int64          `json:"user"`
	Type             BookingType    `json:"type"`
	BookingReference string         `json:"bookingReference"`
	Status           BookingStatus  `json:"status"`
	TotalAmount      float64        `json:"totalAmount"`
	Currency         string         `json:"currency"`
	Details          BookingDetails `json:"bookingDetails"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// Cancellable reports whether the booking may still move to cancelled.
func (b *Booking) Cancellable() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}

// BookingFilter narrows a user's booking list. Zero values match everything.
type BookingFilter struct {
	Type   BookingType
	Status BookingStatus
}

type BookingStats struct {
	Total      int64                   `json:"total"`
	ByStatus   map[BookingStatus]int64 `json:"byStatus"`
	ByType     map[BookingType]int64   `json:"byType"`
	TotalSpent map[string]float64      `json:"totalSpent"`
}

// BookingDetails is the snapshot of the catalog item and requester input taken
// at commit time. The concrete type always agrees with Booking.Type.
type BookingDetails interface {
	BookingType() BookingType
	isBookingDetails()
}

type Passport struct {
	Number         string `json:"number" binding:"required"`
	ExpiryDate     string `json:"expiryDate" binding:"required,isodate"`
	CountryOfIssue string `json:"countryOfIssue" binding:"required"`
}

type Passenger struct {
	FirstName   string    `json:"firstName" binding:"required"`
	LastName    string    `json:"lastName" binding:"required"`
	DateOfBirth string    `json:"dateOfBirth" binding:"required,isodate"`
	Passport    *Passport `json:"passport,omitempty" binding:"omitempty"`
}

type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type FlightSnapshot struct {
	ID           string      `json:"id"`
	Airline      string      `json:"airline"`
	FlightNumber string      `json:"flightNumber"`
	Departure    Endpoint    `json:"departure"`
	Arrival      Endpoint    `json:"arrival"`
	Class        FlightClass `json:"class"`
	Aircraft     string      `json:"aircraft"`
}

type FlightDetails struct {
	Flight            FlightSnapshot `json:"flight"`
	Passengers        []Passenger    `json:"passengers"`
	Contact           Contact        `json:"contact"`
	SeatPreference    string         `json:"seatPreference,omitempty"`
	MealPreference    string         `json:"mealPreference,omitempty"`
	PricePerPassenger float64        `json:"pricePerPassenger"`
}

func (FlightDetails) BookingType() BookingType { return BookingFlight }
func (FlightDetails) isBookingDetails()        {}

type Guest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email,omitempty" binding:"omitempty,email"`
}

type HotelSnapshot struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Location Location `json:"location"`
}

type HotelDetails struct {
	Hotel           HotelSnapshot `json:"hotel"`
	Room            RoomType      `json:"room"`
	CheckIn         string        `json:"checkIn"`
	CheckOut        string        `json:"checkOut"`
	Nights          int           `json:"nights"`
	Guests          int           `json:"guests"`
	Rooms           int           `json:"rooms"`
	GuestDetails    []Guest       `json:"guestDetails"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	PricePerNight   float64       `json:"pricePerNight"`
}

func (HotelDetails) BookingType() BookingType { return BookingHotel }
func (HotelDetails) isBookingDetails()        {}

type Driver struct {
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	LicenseNumber string `json:"licenseNumber" binding:"required"`
}

type CarSnapshot struct {
	ID       string      `json:"id"`
	Make     string      `json:"make"`
	Model    string      `json:"model"`
	Year     int         `json:"year"`
	Category CarCategory `json:"category"`
	Image    string      `json:"image"`
}

type CarDetails struct {
	Car           CarSnapshot `json:"car"`
	PickupDate    string      `json:"pickupDate"`
	DropoffDate   string      `json:"dropoffDate"`
	Days          int         `json:"days"`
	DriverDetails Driver      `json:"driverDetails"`
	Insurance     string      `json:"insurance,omitempty"`
	PricePerDay   float64     `json:"pricePerDay"`
}

func (CarDetails) BookingType() BookingType { return BookingCar }
func (CarDetails) isBookingDetails()        {}

// DecodeDetails restores the typed details payload stored for a booking of type t.
func DecodeDetails(t BookingType, raw []byte) (BookingDetails, error) {
	switch t {
	case BookingFlight:
		var d FlightDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode flight details: %w", err)
		}
		return d, nil
	case BookingHotel:
		var d HotelDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode hotel details: %w", err)
		}
		return d, nil
	case BookingCar:
		var d CarDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode car details: %w", err)
		}
		return d, nil
	}
	return nil, fmt.Errorf("no details codec for booking type %q", t)
}
