package export

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CSV godoc
// @Summary      Export CSV
// @Description  Downloads all members and payments as a CSV file.
// @Tags         export
// @Produce      text/csv
// @Success      200  {string}  string  "CSV document"
// @Failure      500  {object}  api.ErrorResponse
// @Router       /export/csv [get]
func (h *Handler) CSV(c *gin.Context) {
	backup, err := h.service.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build export"})
		return
	}

	data, err := MarshalCSV(backup)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build export"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", Filename(backup, "csv")))
	c.Data(http.StatusOK, "text/csv", data)
}

// JSON godoc
// @Summary      Export JSON backup
// @Description  Downloads a full JSON backup of settings, members, and payments.
// @Tags         export
// @Produce      json
// @Success      200  {object}  Backup
// @Failure      500  {object}  api.ErrorResponse
// @Router       /export/json [get]
func (h *Handler) JSON(c *gin.Context) {
	backup, err := h.service.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build export"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", Filename(backup, "json")))
	c.JSON(http.StatusOK, backup)
}
