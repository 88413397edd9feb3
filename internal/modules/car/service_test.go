package car

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

func newTestService(t *testing.T, cars []domain.Car) (*Service, *repository.BookingRepository, int64) {
	t.Helper()
	db := dbtest.New(t)

	user := &domain.User{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", PasswordHash: "x"}
	require.NoError(t, repository.NewUserRepository(db).Create(context.Background(), user))

	bookings := repository.NewBookingRepository(db)
	searcher := catalog.NewSearcher[domain.Car](domain.CatalogCars, catalog.NewMemoryStore(cars), nil, 0)
	return NewService(searcher, booking.NewCommitter(bookings, nil)), bookings, user.ID
}

func camry() BookRequest {
	return BookRequest{
		CarID:         "CAR001",
		PickupDate:    "2024-02-15",
		DropoffDate:   "2024-02-18",
		DriverDetails: &domain.Driver{FirstName: "Jane", LastName: "Doe", LicenseNumber: "D1234567"},
	}
}

func TestBook_PricesPerDay(t *testing.T) {
	svc, bookings, userID := newTestService(t, catalog.SampleCars())

	b, err := svc.Book(context.Background(), userID, camry())

	require.NoError(t, err)
	assert.Equal(t, 135.0, b.TotalAmount)
	assert.Regexp(t, `^CR-[0-9A-F]{10}$`, b.BookingReference)

	stored, err := bookings.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	details, ok := stored.Details.(domain.CarDetails)
	require.True(t, ok)
	assert.Equal(t, 3, details.Days)
	assert.Equal(t, "Camry", details.Car.Model)
	assert.Equal(t, "D1234567", details.DriverDetails.LicenseNumber)
}

func TestBook_PartialDayRoundsUp(t *testing.T) {
	svc, _, userID := newTestService(t, catalog.SampleCars())

	req := camry()
	req.PickupDate = "2024-02-15T09:00:00Z"
	req.DropoffDate = "2024-02-16T10:00:00Z"

	b, err := svc.Book(context.Background(), userID, req)

	require.NoError(t, err)
	assert.Equal(t, 90.0, b.TotalAmount)
}

func TestBook_Failures(t *testing.T) {
	cars := catalog.SampleCars()
	cars[1].Available = false
	svc, bookings, userID := newTestService(t, cars)

	tests := []struct {
		name   string
		mutate func(*BookRequest)
		kind   error
		msg    string
	}{
		{"unknown car", func(r *BookRequest) { r.CarID = "CAR999" }, domain.ErrNotFound, "Car not found"},
		{"unavailable car", func(r *BookRequest) { r.CarID = "CAR002" }, domain.ErrUnavailable, "Car is not available"},
		{"same day rental", func(r *BookRequest) { r.DropoffDate = r.PickupDate }, domain.ErrValidation, ""},
		{"dropoff before pickup", func(r *BookRequest) { r.DropoffDate = "2024-02-14" }, domain.ErrValidation, ""},
		{"missing driver", func(r *BookRequest) { r.DriverDetails = nil }, domain.ErrValidation, ""},
		{"missing license", func(r *BookRequest) { r.DriverDetails.LicenseNumber = "" }, domain.ErrValidation, ""},
		{"unavailable wins over missing license", func(r *BookRequest) {
			r.CarID = "CAR002"
			r.DriverDetails.LicenseNumber = ""
		}, domain.ErrUnavailable, "Car is not available"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := camry()
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

func TestSearch(t *testing.T) {
	cars := catalog.SampleCars()
	cars[2].Available = false
	svc, _, _ := newTestService(t, cars)

	tests := []struct {
		name string
		q    SearchQuery
		want []string
	}{
		{"unavailable cars are hidden", SearchQuery{}, []string{"CAR001", "CAR002"}},
		{"pickup location substring", SearchQuery{PickupLocation: "jfk"}, []string{"CAR002"}},
		{"dropoff location substring", SearchQuery{DropoffLocation: "LAX"}, []string{"CAR001"}},
		{"category is case-insensitive", SearchQuery{Category: "LUXURY"}, []string{"CAR002"}},
		{"transmission", SearchQuery{Transmission: "manual"}, []string{}},
		{"price range", SearchQuery{MinPrice: "50", MaxPrice: "100"}, []string{"CAR002"}},
		{"hidden even when matching", SearchQuery{PickupLocation: "ORD"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Search(context.Background(), tt.q)
			require.NoError(t, err)

			got := make([]string, 0, len(res.Items))
			for _, c := range res.Items {
				got = append(got, c.ID)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want), res.Total)
		})
	}
}

func TestHandler(t *testing.T) {
	svc, _, userID := newTestService(t, catalog.SampleCars())
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

	book := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/api/cars/book", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("search paginates", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/cars/search?limit=2&page=2&pickupDate=2024-02-15", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Data struct {
				Items        []domain.Car `json:"items"`
				SearchParams SearchParams `json:"searchParams"`
			} `json:"data"`
			Pagination struct {
				Total      int `json:"total"`
				TotalPages int `json:"totalPages"`
			} `json:"pagination"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Data.Items, 1)
		assert.Equal(t, "CAR002", body.Data.Items[0].ID)
		assert.Equal(t, 3, body.Pagination.Total)
		assert.Equal(t, 2, body.Pagination.TotalPages)
		assert.Equal(t, "2024-02-15", body.Data.SearchParams.PickupDate)
	})

	t.Run("search rejects bad dates", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/cars/search?dropoffDate=next-week", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("same day rental is rejected", func(t *testing.T) {
		w := book(`{"carId":"CAR001","pickupDate":"2024-02-15","dropoffDate":"2024-02-15",
			"driverDetails":{"firstName":"Jane","lastName":"Doe","licenseNumber":"D1"}}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"field":"dropoffDate"`)
		assert.NotContains(t, w.Body.String(), "totalAmount")
	})

	t.Run("missing license is rejected at the boundary", func(t *testing.T) {
		w := book(`{"carId":"CAR001","pickupDate":"2024-02-15","dropoffDate":"2024-02-17",
			"driverDetails":{"firstName":"Jane","lastName":"Doe"}}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"field":"driverDetails.licenseNumber"`)
	})

	t.Run("book", func(t *testing.T) {
		w := book(`{"carId":"CAR003","pickupDate":"2024-02-17","dropoffDate":"2024-02-19","totalAmount":1,
			"driverDetails":{"firstName":"Jane","lastName":"Doe","licenseNumber":"D1"},"insurance":"full"}`)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var resp struct {
			Message string `json:"message"`
			Data    struct {
				Booking struct {
					TotalAmount    float64 `json:"totalAmount"`
					BookingDetails struct {
						Days      int    `json:"days"`
						Insurance string `json:"insurance"`
					} `json:"bookingDetails"`
				} `json:"booking"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Car booked successfully", resp.Message)
		assert.Equal(t, 130.0, resp.Data.Booking.TotalAmount)
		assert.Equal(t, 2, resp.Data.Booking.BookingDetails.Days)
		assert.Equal(t, "full", resp.Data.Booking.BookingDetails.Insurance)
	})

	t.Run("detail", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/cars/CAR404", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"status":"error","message":"Car not found"}`, w.Body.String())
	})
}
