package catalog

import (
	"time"

	"travelbooking/internal/domain"
)

func at(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func day(value string) time.Time {
	return at(value + "T00:00:00Z")
}

// SampleFlights is the demo flight catalog.
func SampleFlights() []domain.Flight {
	return []domain.Flight{
		{
			ID:           "FL001",
			Airline:      "American Airlines",
			FlightNumber: "AA100",
			Departure: domain.Endpoint{
				Airport: "JFK", City: "New York", Country: "USA",
				Date: at("2024-02-15T08:00:00Z"), Terminal: "4",
			},
			Arrival: domain.Endpoint{
				Airport: "LAX", City: "Los Angeles", Country: "USA",
				Date: at("2024-02-15T11:30:00Z"), Terminal: "7",
			},
			Duration:       "5h 30m",
			Aircraft:       "Boeing 737",
			Price:          299.99,
			Currency:       "USD",
			AvailableSeats: 45,
			Class:          domain.ClassEconomy,
			Baggage:        domain.Baggage{Carry: "1 x 10kg", Checked: "1 x 23kg"},
		},
		{
			ID:           "FL002",
			Airline:      "Delta Air Lines",
			FlightNumber: "DL200",
			Departure: domain.Endpoint{
				Airport: "LAX", City: "Los Angeles", Country: "USA",
				Date: at("2024-02-16T14:15:00Z"), Terminal: "2",
			},
			Arrival: domain.Endpoint{
				Airport: "JFK", City: "New York", Country: "USA",
				Date: at("2024-02-16T22:45:00Z"), Terminal: "4",
			},
			Duration:       "5h 30m",
			Aircraft:       "Airbus A320",
			Price:          349.99,
			Currency:       "USD",
			AvailableSeats: 23,
			Class:          domain.ClassEconomy,
			Baggage:        domain.Baggage{Carry: "1 x 10kg", Checked: "1 x 23kg"},
		},
		{
			ID:           "FL003",
			Airline:      "United Airlines",
			FlightNumber: "UA300",
			Departure: domain.Endpoint{
				Airport: "ORD", City: "Chicago", Country: "USA",
				Date: at("2024-02-17T09:30:00Z"), Terminal: "1",
			},
			Arrival: domain.Endpoint{
				Airport: "LHR", City: "London", Country: "UK",
				Date: at("2024-02-17T21:00:00Z"), Terminal: "5",
			},
			Duration:       "8h 30m",
			Aircraft:       "Boeing 787",
			Price:          899.99,
			Currency:       "USD",
			AvailableSeats: 67,
			Class:          domain.ClassBusiness,
			Baggage:        domain.Baggage{Carry: "2 x 10kg", Checked: "2 x 32kg"},
		},
	}
}

// SampleHotels is the demo hotel catalog.
func SampleHotels() []domain.Hotel {
	return []domain.Hotel{
		{
			ID:   "HTL001",
			Name: "Grand Plaza Hotel",
			Location: domain.Location{
				Address: "123 Main Street", City: "New York", Country: "USA",
				Coordinates: domain.Coordinates{Lat: 40.7128, Lng: -74.0060},
			},
			Rating:    4.5,
			Images:    []string{"https://example.com/hotel1-1.jpg", "https://example.com/hotel1-2.jpg"},
			Amenities: []string{"WiFi", "Pool", "Gym", "Restaurant", "Bar", "Spa"},
			RoomTypes: []domain.RoomType{
				{
					Type: "Standard Room", Price: 199, Currency: "USD", Available: 5, MaxGuests: 2,
					Description: "Comfortable room with city view",
				},
				{
					Type: "Deluxe Suite", Price: 399, Currency: "USD", Available: 2, MaxGuests: 4,
					Description: "Spacious suite with premium amenities",
				},
			},
			CheckIn:       day("2024-02-15"),
			CheckOut:      day("2024-02-17"),
			PricePerNight: 199,
			Currency:      "USD",
		},
		{
			ID:   "HTL002",
			Name: "Seaside Resort",
			Location: domain.Location{
				Address: "456 Beach Avenue", City: "Los Angeles", Country: "USA",
				Coordinates: domain.Coordinates{Lat: 34.0522, Lng: -118.2437},
			},
			Rating:    4.8,
			Images:    []string{"https://example.com/hotel2-1.jpg", "https://example.com/hotel2-2.jpg"},
			Amenities: []string{"Beach Access", "WiFi", "Pool", "Restaurant", "Parking"},
			RoomTypes: []domain.RoomType{
				{
					Type: "Ocean View Room", Price: 299, Currency: "USD", Available: 8, MaxGuests: 2,
					Description: "Room with stunning ocean views",
				},
			},
			CheckIn:       day("2024-02-16"),
			CheckOut:      day("2024-02-18"),
			PricePerNight: 299,
			Currency:      "USD",
		},
	}
}

// SampleCars is the demo rental car catalog.
func SampleCars() []domain.Car {
	return []domain.Car{
		{
			ID: "CAR001", Make: "Toyota", Model: "Camry", Year: 2023,
			Category: domain.CarMidsize, Transmission: domain.TransmissionAutomatic, FuelType: "hybrid",
			Seats: 5, Doors: 4, AirConditioning: true,
			Image:       "https://example.com/toyota-camry.jpg",
			PricePerDay: 45, Currency: "USD", Available: true,
			PickupLocation: "LAX Airport", DropoffLocation: "LAX Airport",
			PickupDate: day("2024-02-15"), DropoffDate: day("2024-02-17"),
		},
		{
			ID: "CAR002", Make: "BMW", Model: "3 Series", Year: 2023,
			Category: domain.CarLuxury, Transmission: domain.TransmissionAutomatic, FuelType: "petrol",
			Seats: 5, Doors: 4, AirConditioning: true,
			Image:       "https://example.com/bmw-3series.jpg",
			PricePerDay: 89, Currency: "USD", Available: true,
			PickupLocation: "JFK Airport", DropoffLocation: "JFK Airport",
			PickupDate: day("2024-02-16"), DropoffDate: day("2024-02-18"),
		},
		{
			ID: "CAR003", Make: "Ford", Model: "Explorer", Year: 2023,
			Category: domain.CarSUV, Transmission: domain.TransmissionAutomatic, FuelType: "petrol",
			Seats: 7, Doors: 4, AirConditioning: true,
			Image:       "https://example.com/ford-explorer.jpg",
			PricePerDay: 65, Currency: "USD", Available: true,
			PickupLocation: "ORD Airport", DropoffLocation: "ORD Airport",
			PickupDate: day("2024-02-17"), DropoffDate: day("2024-02-19"),
		},
	}
}

// SampleAirports backs the airport lookup.
func SampleAirports() []domain.Airport {
	return []domain.Airport{
		{Code: "JFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "USA"},
		{Code: "LAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "USA"},
		{Code: "ORD", Name: "O'Hare International Airport", City: "Chicago", Country: "USA"},
		{Code: "LHR", Name: "Heathrow Airport", City: "London", Country: "UK"},
		{Code: "CDG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "France"},
		{Code: "NRT", Name: "Narita International Airport", City: "Tokyo", Country: "Japan"},
		{Code: "SYD", Name: "Sydney Kingsford Smith Airport", City: "Sydney", Country: "Australia"},
	}
}
