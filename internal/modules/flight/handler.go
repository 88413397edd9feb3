package flight

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

// RegisterPublicRoutes mounts flight search and lookup.
func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	flights := api.Group("/flights")
	{
		flights.GET("/search", h.Search)
		flights.GET("/airports/search", h.SearchAirports)
		flights.GET("/:id", h.Get)
	}
}

// RegisterProtectedRoutes mounts flight booking on an authenticated group.
func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/flights/book", h.Book)
}

// Search handles GET /api/flights/search.
func (h *Handler) Search(c *gin.Context) {
	var q SearchQuery
	if errs := validator.BindQuery(c, &q); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	res, err := h.service.Search(c.Request.Context(), q)
	if err != nil {
		response.FromError(c, err, "Error searching flights")
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

// Get returns one flight by id.
func (h *Handler) Get(c *gin.Context) {
	f, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err, "Error fetching flight details")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"item": f})
}

// SearchAirports matches airports by code, name or city.
func (h *Handler) SearchAirports(c *gin.Context) {
	var q AirportQuery
	if errs := validator.BindQuery(c, &q); errs != nil {
		response.ValidationError(c, errs)
		return
	}
	airports, err := h.service.SearchAirports(q.Q)
	if err != nil {
		response.FromError(c, err, "Error searching airports")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"airports": airports})
}

// Book handles POST /api/flights/book. Price fields in the body are ignored.
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
		response.FromError(c, err, "Error booking flight")
		return
	}
	response.WithMessage(c, http.StatusCreated, "Flight booked successfully", gin.H{"booking": b})
}
