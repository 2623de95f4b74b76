package weather

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ronniefr/Weather-web-app/internal/models"
)

const timeoutDuration = 10 * time.Second

type weatherProvider interface {
	GetByCity(ctx context.Context, city string) (models.WeatherReading, error)
}

type Handler struct {
	service weatherProvider
}

func NewHandler(svc weatherProvider) *Handler {
	return &Handler{service: svc}
}

// GetWeather
// @Summary Get current weather
// @Description Returns a synthesized weather reading for the given city
// @Tags weather
// @Produce json
// @Param city path string true "City name"
// @Success 200 {object} models.WeatherReading
// @Failure 400
// @Failure 500
// @Router /weather/{city} [get]
func (h *Handler) GetWeather(c *gin.Context) {
	// The router never matches an empty segment, but a percent-encoded blank
	// ("%20") still reaches us decoded.
	city := c.Param("city")
	if strings.TrimSpace(city) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "city name cannot be empty"})
		return
	}

	ctxWithTimeout, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	data, err := h.service.GetByCity(ctxWithTimeout, city)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, data)
}
