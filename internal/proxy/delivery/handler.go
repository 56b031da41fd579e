package delivery

import (
	"log"
	"net/http"
	"strconv"

	"parkhub-backend/pkg/proxyclient"

	"github.com/gin-gonic/gin"
)

// ProxyHandler forwards requests to third-party geo/weather/events APIs.
// Upstream status and body are passed through verbatim; transport errors
// become a generic 500.
type ProxyHandler struct {
	client *proxyclient.Client
}

func NewProxyHandler(client *proxyclient.Client) *ProxyHandler {
	return &ProxyHandler{client: client}
}

func coordParams(c *gin.Context, latKey, lonKey string) (float64, float64, bool) {
	lat, err := strconv.ParseFloat(c.Query(latKey), 64)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid %s", latKey)
		return 0, 0, false
	}
	lon, err := strconv.ParseFloat(c.Query(lonKey), 64)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid %s", lonKey)
		return 0, 0, false
	}
	return lat, lon, true
}

func passThrough(c *gin.Context, up *proxyclient.Upstream, err error) {
	if err != nil {
		log.Printf("[ERROR] proxy call failed: %v", err)
		c.String(http.StatusInternalServerError, "An unexpected error occurred")
		return
	}
	contentType := up.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(up.StatusCode, contentType, up.Body)
}

func (h *ProxyHandler) Weather(c *gin.Context) {
	lat, lon, ok := coordParams(c, "lat", "lon")
	if !ok {
		return
	}
	up, err := h.client.Weather(c.Request.Context(), lat, lon)
	passThrough(c, up, err)
}

func (h *ProxyHandler) AirQuality(c *gin.Context) {
	lat, lon, ok := coordParams(c, "lat", "lon")
	if !ok {
		return
	}
	up, err := h.client.AirQuality(c.Request.Context(), lat, lon)
	passThrough(c, up, err)
}

func (h *ProxyHandler) Directions(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	profile := c.Query("profile")
	if start == "" || end == "" || profile == "" {
		c.String(http.StatusBadRequest, "start, end and profile are required")
		return
	}
	up, err := h.client.Directions(c.Request.Context(), start, end, profile)
	passThrough(c, up, err)
}

func (h *ProxyHandler) Speak(c *gin.Context) {
	audio := h.client.Speak(c.Request.Context(), c.Query("instruction"))
	c.Data(http.StatusOK, "audio/mpeg", audio)
}

func (h *ProxyHandler) Events(c *gin.Context) {
	c.String(http.StatusOK, h.client.Events(c.Request.Context()))
}

func (h *ProxyHandler) PointsOfInterest(c *gin.Context) {
	lat, lon, ok := coordParams(c, "latitude", "longitude")
	if !ok {
		return
	}
	up, err := h.client.PointsOfInterest(c.Request.Context(), lat, lon)
	passThrough(c, up, err)
}
