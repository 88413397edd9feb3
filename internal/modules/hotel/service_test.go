package hotel

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelbooking/internal/catalog"
	"travelbooking/internal/database/dbtest"
	"travelbooking/internal/domain"
	"travelbooking/internal/middleware"
	"travelbooking/internal/modules/booking"
	"travelbooking/internal/pkg/jwt"
	"travelbooking/internal/pkg/validator"
	"travelbooking/internal/repository"
	"travelbooking/internal/search"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func newTestService(t *testing.T) (*Service, *repository.BookingRepository, int64) {
	t.Helper()
	db := dbtest.New(t)

	user := &domain.User{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", PasswordHash: "x"}
	require.NoError(t, repository.NewUserRepository(db).Create(context.Background(), user))

	bookings := repository.NewBookingRepository(db)
	searcher := catalog.NewSearcher[domain.Hotel](domain.CatalogHotels, catalog.NewMemoryStore(catalog.SampleHotels()), nil, 0)
	return NewService(searcher, booking.NewCommitter(bookings, nil)), bookings, user.ID
}

func standardRoom() BookRequest {
	return BookRequest{
		HotelID:      "HTL001",
		RoomType:     "Standard Room",
		CheckIn:      "2024-02-15",
		CheckOut:     "2024-02-17",
		Guests:       2,
		Rooms:        1,
		GuestDetails: []domain.Guest{{FirstName: "Jane", LastName: "Doe"}},
	}
}

func TestBook_PricesRoomTimesNights(t *testing.T) {
	svc, bookings, userID := newTestService(t)

	b, err := svc.Book(context.Background(), userID, standardRoom())

	require.NoError(t, err)
	assert.Equal(t, 398.0, b.TotalAmount)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Regexp(t, `^HT-[0-9A-F]{10}$`, b.BookingReference)

	stored, err := bookings.GetByReference(context.Background(), b.BookingReference)
	require.NoError(t, err)
	details, ok := stored.Details.(domain.HotelDetails)
	require.True(t, ok)
	assert.Equal(t, 2, details.Nights)
	assert.Equal(t, 199.0, details.PricePerNight)
	assert.Equal(t, "Standard Room", details.Room.Type)
	assert.Equal(t, "Grand Plaza Hotel", details.Hotel.Name)
}

func TestBook_MultipleRoomsAndPartialDays(t *testing.T) {
	svc, _, userID := newTestService(t)

	req := standardRoom()
	req.RoomType = "Deluxe Suite"
	req.Rooms = 2
	req.CheckIn = "2024-02-15T15:00:00Z"
	req.CheckOut = "2024-02-17T11:00:00Z"

	b, err := svc.Book(context.Background(), userID, req)

	require.NoError(t, err)
	assert.Equal(t, 399.0*2*2, b.TotalAmount)
}

func TestBook_Failures(t *testing.T) {
	svc, bookings, userID := newTestService(t)

	tests := []struct {
		name   string
		mutate func(*BookRequest)
		kind   error
		msg    string
	}{
		{"unknown hotel", func(r *BookRequest) { r.HotelID = "HTL999" }, domain.ErrNotFound, "Hotel not found"},
		{"unknown room type", func(r *BookRequest) { r.RoomType = "standard room" }, domain.ErrNotFound, "Room type not found"},
		{"not enough rooms", func(r *BookRequest) { r.RoomType = "Deluxe Suite"; r.Rooms = 3 }, domain.ErrUnavailable, "Not enough rooms available"},
		{"same day stay", func(r *BookRequest) { r.CheckOut = r.CheckIn }, domain.ErrValidation, ""},
		{"inverted stay", func(r *BookRequest) { r.CheckIn, r.CheckOut = r.CheckOut, r.CheckIn }, domain.ErrValidation, ""},
		{"no guests listed", func(r *BookRequest) { r.GuestDetails = nil }, domain.ErrValidation, ""},
		{"availability checked before structure", func(r *BookRequest) { r.Rooms = 6; r.GuestDetails = nil }, domain.ErrUnavailable, "Not enough rooms available"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := standardRoom()
			tt.mutate(&req)

			b, err := svc.Book(context.Background(), userID, req)

			assert.Nil(t, b)
			assert.ErrorIs(t, err, tt.kind)
			if tt.msg != "" {
				assert.Equal(t, tt.msg, err.Error())
			}
		})
	}

	_, total, err := bookings.ListByUser(context.Background(), userID, domain.BookingFilter{}, search.NewPage(1, 20))
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestBook_PricingIsDeterministic(t *testing.T) {
	svc, _, userID := newTestService(t)

	for i := 0; i < 5; i++ {
		b, err := svc.Book(context.Background(), userID, standardRoom())
		require.NoError(t, err)
		assert.Equal(t, 398.0, b.TotalAmount)
	}
}

func TestSearch(t *testing.T) {
	svc, _, _ := newTestService(t)

	tests := []struct {
		name string
		q    SearchQuery
		want []string
	}{
		{"all by price", SearchQuery{}, []string{"HTL001", "HTL002"}},
		{"destination city", SearchQuery{Destination: "los angeles"}, []string{"HTL002"}},
		{"destination country", SearchQuery{Destination: "usa"}, []string{"HTL001", "HTL002"}},
		{"price range inclusive", SearchQuery{MinPrice: "199", MaxPrice: "199"}, []string{"HTL001"}},
		{"rating minimum", SearchQuery{Rating: "4.6"}, []string{"HTL002"}},
		{"amenities all required", SearchQuery{Amenities: "wifi, pool,spa"}, []string{"HTL001"}},
		{"amenity substring", SearchQuery{Amenities: "beach"}, []string{"HTL002"}},
		{"malformed numbers fail open", SearchQuery{MinPrice: "lots", Rating: "five"}, []string{"HTL001", "HTL002"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Search(context.Background(), tt.q)
			require.NoError(t, err)

			got := make([]string, 0, len(res.Items))
			for _, h := range res.Items {
				got = append(got, h.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCacheKey(t *testing.T) {
	a := SearchQuery{Destination: " New York", Amenities: "Pool, WiFi", MaxPrice: "300.0"}
	b := SearchQuery{Destination: "new york", Amenities: "pool,wifi", MaxPrice: "300", Page: "2"}
	assert.Equal(t, a.CacheKey(), b.CacheKey())

	c := SearchQuery{Destination: "new york", MaxPrice: "301"}
	assert.NotEqual(t, a.CacheKey(), c.CacheKey())
}

func TestHandler(t *testing.T) {
	svc, _, userID := newTestService(t)
	jwtService := jwt.New("secret", time.Hour)
	token, err := jwtService.GenerateToken(userID, "user")
	require.NoError(t, err)

	router := gin.New()
	h := NewHandler(svc)
	api := router.Group("/api")
	h.RegisterPublicRoutes(api)
	protected := api.Group("")
	protected.Use(middleware.JWTAuth(jwtService))
	h.RegisterProtectedRoutes(protected)

	t.Run("search echoes defaults", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/hotels/search?destination=york&checkIn=2024-02-15", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Data struct {
				Items        []domain.Hotel `json:"items"`
				SearchParams SearchParams   `json:"searchParams"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Data.Items, 1)
		assert.Equal(t, SearchParams{Destination: "york", CheckIn: "2024-02-15", Guests: 2, Rooms: 1}, body.Data.SearchParams)
	})

	t.Run("search rejects out of range occupancy", func(t *testing.T) {
		for _, q := range []string{"guests=21", "rooms=11", "rooms=0", "checkOut=soon"} {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest("GET", "/api/hotels/search?"+q, nil))
			assert.Equal(t, http.StatusBadRequest, w.Code, q)
		}
	})

	t.Run("detail", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/hotels/HTL404", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"status":"error","message":"Hotel not found"}`, w.Body.String())
	})

	t.Run("book ignores client price", func(t *testing.T) {
		body := `{"hotelId":"HTL001","roomType":"Standard Room","checkIn":"2024-02-15","checkOut":"2024-02-17",
			"guests":1,"rooms":1,"guestDetails":[{"firstName":"Jane","lastName":"Doe"}],"totalAmount":5,"price":1}`
		req := httptest.NewRequest("POST", "/api/hotels/book", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var resp struct {
			Message string `json:"message"`
			Data    struct {
				Booking struct {
					TotalAmount float64 `json:"totalAmount"`
					Type        string  `json:"type"`
				} `json:"booking"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Hotel booked successfully", resp.Message)
		assert.Equal(t, 398.0, resp.Data.Booking.TotalAmount)
		assert.Equal(t, "hotel", resp.Data.Booking.Type)
	})

	t.Run("book same day stay", func(t *testing.T) {
		body := `{"hotelId":"HTL001","roomType":"Standard Room","checkIn":"2024-02-15","checkOut":"2024-02-15",
			"guests":1,"rooms":1,"guestDetails":[{"firstName":"Jane","lastName":"Doe"}]}`
		req := httptest.NewRequest("POST", "/api/hotels/book", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"field":"checkOut"`)
	})
}
