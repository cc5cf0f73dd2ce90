package enrollment

import (
	"errors"
	"net/http"
	"strconv"

	"eventpass/internal/auth"
	"eventpass/internal/wallet"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Enroll godoc
// @Summary      Enroll in event
// @Description  Creates a confirmed enrollment, paying with a pass credit or the wallet.
// @Tags         enrollments
// @Security     BearerAuth
// @Produce      json
// @Param        eventID  path      int  true  "Event ID"
// @Success      201      {object}  EnrollResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /events/{eventID}/enroll [post]
func (h *Handler) Enroll(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	eventID, err := strconv.Atoi(c.Param("eventID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	enrollment, payment, err := h.service.Enroll(c.Request.Context(), userID, eventID)
	if err != nil {
		switch {
		case errors.Is(err, ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		case errors.Is(err, ErrEventInPast):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot enroll in a past event"})
		case errors.Is(err, ErrEventFull):
			c.JSON(http.StatusConflict, gin.H{"error": "Event is full"})
		case errors.Is(err, ErrAlreadyEnrolled):
			c.JSON(http.StatusConflict, gin.H{"error": "You are already enrolled in this event"})
		case errors.Is(err, wallet.ErrInsufficientBalance):
			c.JSON(http.StatusConflict, gin.H{"error": "Insufficient wallet balance"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to enroll"})
		}
		return
	}

	c.JSON(http.StatusCreated, EnrollResponse{
		Enrollment: enrollment,
		PaidWith:   payment,
	})
}

// Cancel godoc
// @Summary      Cancel enrollment
// @Description  Cancels a confirmed enrollment at least 24 hours before the event and refunds the payment.
// @Tags         enrollments
// @Security     BearerAuth
// @Produce      json
// @Param        enrollmentID  path      int  true  "Enrollment ID"
// @Success      200           {object}  CancelResponse
// @Failure      400           {object}  api.ErrorResponse
// @Failure      403           {object}  api.ErrorResponse
// @Failure      404           {object}  api.ErrorResponse
// @Failure      409           {object}  api.ErrorResponse
// @Router       /enrollments/{enrollmentID}/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	enrollmentID, err := strconv.Atoi(c.Param("enrollmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid enrollment ID"})
		return
	}

	refund, err := h.service.Cancel(c.Request.Context(), userID, enrollmentID)
	if err != nil {
		switch {
		case errors.Is(err, ErrEnrollmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Enrollment not found"})
		case errors.Is(err, ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Can only cancel own enrollments"})
		case errors.Is(err, ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		case errors.Is(err, ErrCancellationWindowClosed):
			c.JSON(http.StatusConflict, gin.H{"error": "Cancellation is only possible at least 24 hours before the event"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel enrollment"})
		}
		return
	}

	c.JSON(http.StatusOK, CancelResponse{
		Message: "Enrollment cancelled successfully",
		Refund:  string(refund.Method),
	})
}

// ListMyEnrollments godoc
// @Summary      List my enrollments
// @Tags         enrollments
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   EnrollmentWithEvent
// @Failure      500  {object}  api.ErrorResponse
// @Router       /enrollments [get]
func (h *Handler) ListMyEnrollments(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	enrollments, err := h.service.GetUserEnrollments(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load enrollments"})
		return
	}

	c.JSON(http.StatusOK, enrollments)
}

// ListByEvent godoc
// @Summary      List enrollments for event
// @Description  Admin roster of everyone enrolled in an event.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        eventID  path      int  true  "Event ID"
// @Success      200      {array}   EnrollmentWithUser
// @Failure      400      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /admin/events/{eventID}/enrollments [get]
func (h *Handler) ListByEvent(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("eventID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	enrollments, err := h.service.GetEventEnrollments(c.Request.Context(), eventID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load enrollments"})
		return
	}

	c.JSON(http.StatusOK, enrollments)
}
