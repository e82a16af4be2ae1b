package checkin

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

// Create godoc
// @Summary      Check a member in
// @Description  Records a gym check-in. Rejected with 409 when the membership is due, overdue, or the payment is incomplete.
// @Tags         check-ins
// @Produce      json
// @Param        memberID  path      int  true  "Member ID"
// @Success      201       {object}  Response
// @Failure      400       {object}  api.ErrorResponse
// @Failure      404       {object}  api.ErrorResponse
// @Failure      409       {object}  api.ErrorResponse
// @Failure      500       {object}  api.ErrorResponse
// @Router       /members/{memberID}/checkin [post]
func (h *Handler) Create(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	resp, err := h.service.CheckIn(c.Request.Context(), memberID)
	if err != nil {
		switch {
		case errors.Is(err, member.ErrMemberNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		case errors.Is(err, member.ErrMembershipDue),
			errors.Is(err, member.ErrMembershipOverdue),
			errors.Is(err, member.ErrPaymentIncomplete):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record check-in"})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListByMember godoc
// @Summary      List member check-ins
// @Tags         check-ins
// @Produce      json
// @Param        memberID  path      int  true   "Member ID"
// @Param        limit     query     int  false  "Max rows (default 50)"
// @Success      200       {array}   CheckIn
// @Failure      400       {object}  api.ErrorResponse
// @Failure      404       {object}  api.ErrorResponse
// @Router       /members/{memberID}/checkins [get]
func (h *Handler) ListByMember(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	checkIns, err := h.service.ListByMember(c.Request.Context(), memberID, limit)
	if err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch check-ins"})
		return
	}

	c.JSON(http.StatusOK, checkIns)
}

// ListRecent godoc
// @Summary      List recent check-ins
// @Description  Returns check-ins within a date range (whole days, inclusive), newest first, with member names. Defaults to today.
// @Tags         check-ins
// @Produce      json
// @Param        from  query     string  false  "Start date (YYYY-MM-DD, default today)"
// @Param        to    query     string  false  "End date (YYYY-MM-DD, default today)"
// @Success      200   {array}   CheckInWithMember
// @Failure      400   {object}  api.ErrorResponse
// @Failure      500   {object}  api.ErrorResponse
// @Router       /checkins [get]
func (h *Handler) ListRecent(c *gin.Context) {
	now := time.Now()
	from, to, err := parseRange(c.Query("from"), c.Query("to"), now, now)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	checkIns, err := h.service.ListRecent(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch check-ins"})
		return
	}

	c.JSON(http.StatusOK, checkIns)
}

func parseRange(fromStr, toStr string, defaultFrom, defaultTo time.Time) (time.Time, time.Time, error) {
	from := startOfDay(defaultFrom)
	to := startOfDay(defaultTo)

	if fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid date, use YYYY-MM-DD")
		}
		from = parsed
	}
	if toStr != "" {
		parsed, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid date, use YYYY-MM-DD")
		}
		to = parsed
	}

	return from, to.AddDate(0, 0, 1), nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
