package report

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"gymdesk/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// Revenue godoc
// @Summary      Revenue report
// @Description  Revenue over a date range (whole days, inclusive), grouped by payment method or subscription type.
// @Tags         reports
// @Produce      json
// @Param        from      query     string  false  "Start date (YYYY-MM-DD, default 30 days ago)"
// @Param        to        query     string  false  "End date (YYYY-MM-DD, default today)"
// @Param        group_by  query     string  false  "method or type (default method)"
// @Success      200       {object}  RevenueReport
// @Failure      400       {object}  api.ErrorResponse
// @Failure      500       {object}  api.ErrorResponse
// @Router       /reports/revenue [get]
func (h *Handler) Revenue(c *gin.Context) {
	now := time.Now()
	from, to, err := parseRange(c.Query("from"), c.Query("to"), now.AddDate(0, 0, -30), now)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := &RevenueReport{From: from, To: to}

	switch c.DefaultQuery("group_by", "method") {
	case "method":
		rows, err := h.repo.RevenueByMethod(c.Request.Context(), from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
			return
		}
		for _, row := range rows {
			report.RevenueCents += row.RevenueCents
			report.Payments += row.Payments
		}
		report.ByMethod = rows
	case "type":
		rows, err := h.repo.RevenueByType(c.Request.Context(), from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
			return
		}
		for _, row := range rows {
			report.RevenueCents += row.RevenueCents
			report.Payments += row.Payments
		}
		report.ByType = rows
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "group_by must be method or type"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// CheckIns godoc
// @Summary      Check-in report
// @Description  Check-ins per day over a trailing window.
// @Tags         reports
// @Produce      json
// @Param        days  query     int  false  "Window size in days (default 7, max 365)"
// @Success      200   {array}   CheckInsByDay
// @Failure      400   {object}  api.ErrorResponse
// @Failure      500   {object}  api.ErrorResponse
// @Router       /reports/checkins [get]
func (h *Handler) CheckIns(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 1 || days > 365 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be between 1 and 365"})
		return
	}

	now := time.Now()
	to := startOfDay(now).AddDate(0, 0, 1)
	from := to.AddDate(0, 0, -days)

	rows, err := h.repo.CheckInsByDay(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// Summary godoc
// @Summary      Dashboard summary
// @Description  Member counts per status, check-ins today, and revenue for the current month.
// @Tags         reports
// @Produce      json
// @Success      200  {object}  Summary
// @Failure      500  {object}  api.ErrorResponse
// @Router       /reports/summary [get]
func (h *Handler) Summary(c *gin.Context) {
	s, err := h.repo.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}

	metrics.MembersByStatus.WithLabelValues("active").Set(float64(s.ActiveMembers))
	metrics.MembersByStatus.WithLabelValues("due").Set(float64(s.DueMembers))
	metrics.MembersByStatus.WithLabelValues("overdue").Set(float64(s.OverdueMembers))

	c.JSON(http.StatusOK, s)
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
