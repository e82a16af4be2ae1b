package settings

import (
	"net/http"

	"gymdesk/internal/logger"

	"github.com/gin-gonic/gin"
)

// PinHeader carries the settings PIN on mutating requests. The PIN is a
// plain-string convenience gate for the front desk, not an auth scheme.
const PinHeader = "X-Settings-Pin"

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Get godoc
// @Summary      Get settings
// @Description  Returns the singleton settings record, creating it with defaults on first run.
// @Tags         settings
// @Produce      json
// @Success      200  {object}  Settings
// @Failure      500  {object}  api.ErrorResponse
// @Router       /settings [get]
func (h *Handler) Get(c *gin.Context) {
	s, err := h.repo.GetOrCreate(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	c.JSON(http.StatusOK, s)
}

// Update godoc
// @Summary      Update settings
// @Description  Updates gym profile, default fees and the optional PIN. When a PIN is configured the X-Settings-Pin header must match it.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        X-Settings-Pin  header    string         false  "Current PIN, required when one is set"
// @Param        request         body      UpdateRequest  true   "Settings data"
// @Success      200             {object}  Settings
// @Failure      400             {object}  api.ErrorResponse
// @Failure      403             {object}  api.ErrorResponse
// @Failure      500             {object}  api.ErrorResponse
// @Router       /settings [put]
func (h *Handler) Update(c *gin.Context) {
	current, err := h.repo.GetOrCreate(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	if current.PinSet && c.GetHeader(PinHeader) != *current.PinCode {
		c.JSON(http.StatusForbidden, gin.H{"error": "Settings PIN required"})
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	current.GymName = req.GymName
	current.LogoURL = optional(req.LogoURL)
	current.ContactPhone = optional(req.ContactPhone)
	current.ContactEmail = optional(req.ContactEmail)
	current.Address = optional(req.Address)
	if req.DailyFeeCents > 0 {
		current.DailyFeeCents = req.DailyFeeCents
	}
	if req.WeeklyFeeCents > 0 {
		current.WeeklyFeeCents = req.WeeklyFeeCents
	}
	if req.MonthlyFeeCents > 0 {
		current.MonthlyFeeCents = req.MonthlyFeeCents
	}
	if req.QuarterlyFeeCents > 0 {
		current.QuarterlyFeeCents = req.QuarterlyFeeCents
	}
	if req.AnnualFeeCents > 0 {
		current.AnnualFeeCents = req.AnnualFeeCents
	}
	if req.PinCode != nil {
		current.PinCode = optional(*req.PinCode)
	}

	updated, err := h.repo.Update(c.Request.Context(), current)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}

	logger.Info("Settings updated")
	c.JSON(http.StatusOK, updated)
}

// VerifyPin godoc
// @Summary      Verify settings PIN
// @Description  Advisory check for the settings screen; the PUT endpoint enforces the PIN regardless.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        request  body      VerifyPinRequest  true  "PIN to verify"
// @Success      200      {object}  VerifyPinResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /settings/verify-pin [post]
func (h *Handler) VerifyPin(c *gin.Context) {
	var req VerifyPinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := h.repo.GetOrCreate(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	valid := !s.PinSet || *s.PinCode == req.Pin
	c.JSON(http.StatusOK, VerifyPinResponse{Valid: valid})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
