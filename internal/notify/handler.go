package notify

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Sweep godoc
// @Summary      Queue renewal reminders
// @Description  Queues a reminder email for every due or overdue member with an email on file. The background worker delivers them.
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  map[string]int
// @Failure      500  {object}  api.ErrorResponse
// @Router       /notify/sweep [post]
func (h *Handler) Sweep(c *gin.Context) {
	queued, err := h.service.SweepDueMembers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to queue reminders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"queued": queued})
}

// Queue godoc
// @Summary      Reminder queue length
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  map[string]int64
// @Router       /notify/queue [get]
func (h *Handler) Queue(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"length": h.service.QueueLength(c.Request.Context())})
}
