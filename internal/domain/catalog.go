package domain

import "time"

// CatalogKind names the catalog a bookable item belongs to.
type CatalogKind string

const (
	CatalogFlights CatalogKind = "flights"
	CatalogHotels  CatalogKind = "hotels"
	CatalogCars    CatalogKind = "cars"
)

type FlightClass string

const (
	ClassEconomy  FlightClass = "economy"
	ClassBusiness FlightClass = "business"
	ClassFirst    FlightClass = "first"
)

type Endpoint struct {
	Airport  string    `json:"airport"`
	City     string    `json:"city"`
	Country  string    `json:"country"`
	Date     time.Time `json:"date"`
	Terminal string    `json:"terminal,omitempty"`
}

type Baggage struct {
	Carry   string `json:"carry"`
	Checked string `json:"checked"`
}

type Flight struct {
	ID             string      `json:"id"`
	Airline        string      `json:"airline"`
	FlightNumber   string      `json:"flightNumber"`
	Departure      Endpoint    `json:"departure"`
	Arrival        Endpoint    `json:"arrival"`
	Duration       string      `json:"duration"`
	Aircraft       string      `json:"aircraft"`
	Price          float64     `json:"price"`
	Currency       string      `json:"currency"`
	AvailableSeats int         `json:"availableSeats"`
	Class          FlightClass `json:"class"`
	Baggage        Baggage     `json:"baggage"`
}

func (f Flight) ItemID() string        { return f.ID }
func (f Flight) UnitPrice() float64    { return f.Price }
func (f Flight) PriceCurrency() string { return f.Currency }

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Location struct {
	Address     string      `json:"address"`
	City        string      `json:"city"`
	Country     string      `json:"country"`
	Coordinates Coordinates `json:"coordinates"`
}

type RoomType struct {
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Available   int     `json:"available"`
	MaxGuests   int     `json:"maxGuests"`
	Description string  `json:"description"`
}

type Hotel struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Location      Location   `json:"location"`
	Rating        float64    `json:"rating"`
	Images        []string   `json:"images"`
	Amenities     []string   `json:"amenities"`
	RoomTypes     []RoomType `json:"roomTypes"`
	CheckIn       time.Time  `json:"checkIn"`
	CheckOut      time.Time  `json:"checkOut"`
	PricePerNight float64    `json:"pricePerNight"`
	Currency      string     `json:"currency"`
}

func (h Hotel) ItemID() string        { return h.ID }
func (h Hotel) UnitPrice() float64    { return h.PricePerNight }
func (h Hotel) PriceCurrency() string { return h.Currency }

// Room returns the room type with the given name. Names match exactly.
func (h Hotel) Room(name string) (RoomType, bool) {
	for _, rt := range h.RoomTypes {
		if rt.Type == name {
			return rt, true
		}
	}
	return RoomType{}, false
}

type CarCategory string

const (
	CarEconomy  CarCategory = "economy"
	CarCompact  CarCategory = "compact"
	CarMidsize  CarCategory = "midsize"
	CarFullsize CarCategory = "fullsize"
	CarLuxury   CarCategory = "luxury"
	CarSUV      CarCategory = "suv"
)

type Transmission string

const (
	TransmissionManual    Transmission = "manual"
	TransmissionAutomatic Transmission = "automatic"
)

type Car struct {
	ID              string       `json:"id"`
	Make            string       `json:"make"`
	Model           string       `json:"model"`
	Year            int          `json:"year"`
	Category        CarCategory  `json:"category"`
	Transmission    Transmission `json:"transmission"`
	FuelType        string       `json:"fuelType"`
	Seats           int          `json:"seats"`
	Doors           int          `json:"doors"`
	AirConditioning bool         `json:"airConditioning"`
	Image           string       `json:"image"`
	PricePerDay     float64      `json:"pricePerDay"`
	Currency        string       `json:"currency"`
	Available       bool         `json:"available"`
	PickupLocation  string       `json:"pickupLocation"`
	DropoffLocation string       `json:"dropoffLocation"`
	PickupDate      time.Time    `json:"pickupDate"`
	DropoffDate     time.Time    `json:"dropoffDate"`
}

func (c Car) ItemID() string        { return c.ID }
func (c Car) UnitPrice() float64    { return c.PricePerDay }
func (c Car) PriceCurrency() string { return c.Currency }

// Airport is reference data for the airport lookup; it is not bookable.
type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}
