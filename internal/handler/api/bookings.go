package api

import (
	"errors"
	"net/http"

	reqdto "studiobook/internal/handler/dto/request"
	resdto "studiobook/internal/handler/dto/response"
	"studiobook/internal/handler/middleware"
	"studiobook/internal/pkg/errs"
	"studiobook/internal/usecase/commands"
	"studiobook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, qrs queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		commands: cmds,
		queries:  qrs,
	}
}

// @Summary Create booking request
// @Description Place a pending booking request with a payment hold
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingRecordResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /booking-requests [post]
func (h *BookingHandler) CreateRequest(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.commands.CreateRequest(c.Request.Context(), req.ToParams(userID))
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRequest(created))
}

// @Summary Confirm booking request
// @Description Capture the payment hold and promote the request to a booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking request ID"
// @Success 200 {object} resdto.BookingRecordResponse
// @Failure 401 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /booking-requests/{id}/confirm [post]
func (h *BookingHandler) ConfirmRequest(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Booking request ID required",
		})
		return
	}

	confirmed, err := h.commands.ConfirmRequest(c.Request.Context(), id)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(confirmed))
}

// @Summary Decline booking request
// @Description Reject the request and release the payment hold
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking request ID"
// @Param request body reqdto.DeclineBookingRequest false "Decline reason"
// @Success 200 {object} resdto.DeclineResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /booking-requests/{id}/decline [post]
func (h *BookingHandler) DeclineRequest(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Booking request ID required",
		})
		return
	}

	var req reqdto.DeclineBookingRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	result, err := h.commands.DeclineRequest(c.Request.Context(), id, req.TrimmedReason())
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.DeclineResponse{
		Request:      resdto.FromRequest(result.Request),
		CancelFailed: result.CancelFailed,
	})
}

// @Summary Cancel booking
// @Description Cancel a confirmed booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingRecordResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [patch]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Booking ID required",
		})
		return
	}

	cancelled, err := h.commands.CancelBooking(c.Request.Context(), id)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(cancelled))
}

// @Summary List active bookings
// @Description Merged view of a studio's bookings and open requests
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param studioId query string true "Studio ID"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListActiveBookings(c *gin.Context) {
	studioID := c.Query("studioId")
	if studioID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "studioId query parameter required",
		})
		return
	}

	views, err := h.queries.ActiveBookings(c.Request.Context(), studioID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.BookingListResponse{Bookings: views})
}

// @Summary List pending requests
// @Description A studio's pending booking requests
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param studioId query string true "Studio ID"
// @Success 200 {object} resdto.RequestListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /booking-requests [get]
func (h *BookingHandler) ListPendingRequests(c *gin.Context) {
	studioID := c.Query("studioId")
	if studioID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "studioId query parameter required",
		})
		return
	}

	views, err := h.queries.PendingRequests(c.Request.Context(), studioID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.RequestListResponse{Requests: views})
}

// @Summary List own requests
// @Description Every booking request made by the authenticated user
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.RequestListResponse
// @Failure 401 {object} map[string]string
// @Router /booking-requests/mine [get]
func (h *BookingHandler) ListMyRequests(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.queries.UserRequests(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.RequestListResponse{Requests: views})
}

func (h *BookingHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking request not found",
		})
	case errors.Is(err, errs.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, errs.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "User not found",
		})
	case errors.Is(err, errs.ErrStudioNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Studio not found",
		})
	case errors.Is(err, errs.ErrAlreadyProcessed):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking request already processed",
		})
	case errors.Is(err, errs.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking is not in a cancellable state",
		})
	case errors.Is(err, errs.ErrBookingConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Requested slot conflicts with a confirmed booking",
		})
	case errors.Is(err, errs.ErrPaymentAuthFailed):
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error": "Payment authorization failed",
		})
	case errors.Is(err, errs.ErrPaymentCaptureFailed):
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error": "Payment capture failed, request left pending",
		})
	case errors.Is(err, errs.ErrValidationFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
