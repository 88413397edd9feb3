package booking

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"travelbooking/internal/middleware"
	"travelbooking/internal/pkg/jwt"
	"travelbooking/internal/pkg/response"
	"travelbooking/internal/pkg/validator"
	"travelbooking/internal/search"
)

type Handler struct {
	service  *Service
	hub      *Hub
	jwt      *jwt.Service
	upgrader websocket.Upgrader
}

// NewHandler builds the booking handler. allowOrigin decides which browser
// origins may open the live updates socket.
func NewHandler(service *Service, hub *Hub, jwtService *jwt.Service, allowOrigin func(*http.Request) bool) *Handler {
	return &Handler{
		service: service,
		hub:     hub,
		jwt:     jwtService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     allowOrigin,
		},
	}
}

// RegisterRoutes mounts booking management on an authenticated group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	b := rg.Group("/bookings")
	b.GET("", h.List)
	b.GET("/stats/summary", h.Stats)
	b.GET("/reference/:reference", h.GetByReference)
	b.GET("/:id", h.Get)
	b.DELETE("/:id", h.Cancel)
}

// RegisterLiveRoutes mounts the websocket endpoint. Browsers cannot set
// headers on upgrade requests, so it authenticates with a token query param.
func (h *Handler) RegisterLiveRoutes(rg *gin.RouterGroup) {
	rg.GET("/ws/bookings", h.Live)
}

// List pages through the caller's bookings, newest first.
func (h *Handler) List(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var q ListQuery
	if errs := validator.BindQuery(c, &q); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	res, err := h.service.List(c.Request.Context(), userID, q.Filter(), search.ParsePage(q.Page, q.Limit))
	if err != nil {
		response.FromError(c, err, "Error fetching bookings")
		return
	}

	response.Paginated(c, gin.H{"bookings": res.Bookings}, response.Pagination{
		Page:       res.Page,
		Limit:      res.Limit,
		Total:      res.Total,
		TotalPages: res.TotalPages,
	})
}

// Get returns a booking owned by the caller.
func (h *Handler) Get(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.service.Get(c.Request.Context(), userID, id)
	if err != nil {
		response.FromError(c, err, "Error fetching booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

// GetByReference looks a booking up by its public reference.
func (h *Handler) GetByReference(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	b, err := h.service.GetByReference(c.Request.Context(), userID, c.Param("reference"))
	if err != nil {
		response.FromError(c, err, "Error fetching booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

// Cancel moves an active booking to cancelled.
func (h *Handler) Cancel(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), userID, id)
	if err != nil {
		response.FromError(c, err, "Error cancelling booking")
		return
	}

	response.WithMessage(c, http.StatusOK, "Booking cancelled successfully", gin.H{"booking": b})
}

// Stats counts the caller's bookings by status and type.
func (h *Handler) Stats(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	stats, err := h.service.Stats(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err, "Error fetching booking statistics")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

// Live upgrades to a websocket that streams the caller's booking events.
func (h *Handler) Live(c *gin.Context) {
	claims, err := h.jwt.ValidateToken(c.Query("token"))
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		slog.WarnContext(c.Request.Context(), "websocket upgrade failed", "error", err)
		return
	}

	h.hub.Serve(claims.UserID, conn)
}

func bookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid booking ID")
		return 0, false
	}
	return id, true
}
