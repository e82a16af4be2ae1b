package payment

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"gymdesk/internal/member"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Record godoc
// @Summary      Record payment
// @Description  Records a payment and advances the member's renewal date by one subscription period from the payment date. The amount defaults to the member's fee.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      RecordRequest  true  "Payment data"
// @Success      201      {object}  RecordResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /payments [post]
func (h *Handler) Record(c *gin.Context) {
	var req RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.Record(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, member.ErrMemberNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		case errors.Is(err, ErrInvalidMethod), errors.Is(err, ErrInvalidDate), errors.Is(err, ErrZeroAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      List payments
// @Description  Returns payments within a date range (whole days, inclusive), newest first, with member names.
// @Tags         payments
// @Produce      json
// @Param        from  query     string  false  "Start date (YYYY-MM-DD, default 30 days ago)"
// @Param        to    query     string  false  "End date (YYYY-MM-DD, default today)"
// @Success      200   {array}   PaymentWithMember
// @Failure      400   {object}  api.ErrorResponse
// @Failure      500   {object}  api.ErrorResponse
// @Router       /payments [get]
func (h *Handler) List(c *gin.Context) {
	now := time.Now()
	from, to, err := parseRange(c.Query("from"), c.Query("to"), now.AddDate(0, 0, -30), now)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payments, err := h.service.ListRange(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// ListByMember godoc
// @Summary      List member payments
// @Tags         payments
// @Produce      json
// @Param        memberID  path      int  true  "Member ID"
// @Success      200       {array}   Payment
// @Failure      400       {object}  api.ErrorResponse
// @Failure      404       {object}  api.ErrorResponse
// @Router       /members/{memberID}/payments [get]
func (h *Handler) ListByMember(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	payments, err := h.service.ListByMember(c.Request.Context(), memberID)
	if err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// parseRange turns inclusive YYYY-MM-DD bounds into a half-open
// [start of from-day, start of day after to-day) interval.
func parseRange(fromStr, toStr string, defaultFrom, defaultTo time.Time) (time.Time, time.Time, error) {
	from := startOfDay(defaultFrom)
	to := startOfDay(defaultTo)

	if fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidDate
		}
		from = parsed
	}
	if toStr != "" {
		parsed, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidDate
		}
		to = parsed
	}

	return from, to.AddDate(0, 0, 1), nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
