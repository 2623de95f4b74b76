package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Check
// @Summary Health check
// @Description Reports whether the service is up and able to serve requests
// @Tags health
// @Produce json
// @Success 200
// @Router /healthz [get]
func (h *Handler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
