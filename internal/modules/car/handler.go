package car

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelbooking/internal/middleware"
	"travelbooking/internal/pkg/response"
	"travelbooking/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts car rental search and lookup.
func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	cars := api.Group("/cars")
	{
		cars.GET("/search", h.Search)
		cars.GET("/:id", h.Get)
	}
}

// RegisterProtectedRoutes mounts rental booking on an authenticated group.
func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/cars/book", h.Book)
}

// Search handles GET /api/cars/search.
func (h *Handler) Search(c *gin.Context) {
	var q SearchQuery
	if errs := validator.BindQuery(c, &q); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	res, err := h.service.Search(c.Request.Context(), q)
	if err != nil {
		response.FromError(c, err, "Error searching cars")
		return
	}

	response.Paginated(c, gin.H{
		"items":        res.Items,
		"searchParams": q.Params(),
	}, response.Pagination{
		Page:       res.Page,
		Limit:      res.Limit,
		Total:      res.Total,
		TotalPages: res.TotalPages,
	})
}

// Get returns one rental car by id.
func (h *Handler) Get(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err, "Error fetching car details")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"item": item})
}

// Book reserves a car for the caller. The total is days times the daily rate.
func (h *Handler) Book(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validator.FieldErrors(err))
		return
	}

	b, err := h.service.Book(c.Request.Context(), userID, req)
	if err != nil {
		response.FromError(c, err, "Error booking car")
		return
	}
	response.WithMessage(c, http.StatusCreated, "Car booked successfully", gin.H{"booking": b})
}
