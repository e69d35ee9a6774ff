package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/slopewatch/go-landslide-risk/internal/metrics"
	"github.com/slopewatch/go-landslide-risk/internal/risk"
	"github.com/slopewatch/go-landslide-risk/internal/store"
)

type Handler struct {
	sampler *risk.Sampler
	alerts  *store.Store
}

func NewHandler(sampler *risk.Sampler, alerts *store.Store) *Handler {
	return &Handler{
		sampler: sampler,
		alerts:  alerts,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/risk", h.getRisk)
	r.GET("/api/alerts", h.listAlerts)
	r.POST("/api/alerts", h.createAlert)
	r.POST("/api/ack", h.ackAlert)
	r.GET("/health", h.health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (h *Handler) getRisk(c *gin.Context) {
	c.JSON(http.StatusOK, h.sampler.Sample())
}

func (h *Handler) listAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"alerts": h.alerts.List()})
}

// createAlert registers a manual alert. All fields are optional and
// unvalidated: a missing message falls back to a default, missing
// coordinates stay null, and a malformed body is treated as empty.
func (h *Handler) createAlert(c *gin.Context) {
	var body struct {
		Message *string  `json:"message"`
		Lat     *float64 `json:"lat"`
		Lon     *float64 `json:"lon"`
	}
	_ = c.ShouldBindJSON(&body)

	message := "Manual Alert"
	if body.Message != nil {
		message = *body.Message
	}

	h.alerts.Create(message, body.Lat, body.Lon)
	metrics.AlertsCreatedTotal.WithLabelValues("manual").Inc()

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ackAlert marks the alert named in the body as reviewed. The response is
// success regardless of whether the id matched anything; an unknown id is
// a silent no-op.
func (h *Handler) ackAlert(c *gin.Context) {
	var body struct {
		ID *int `json:"id"`
	}
	_ = c.ShouldBindJSON(&body)

	if body.ID != nil {
		if h.alerts.Acknowledge(*body.ID) {
			metrics.AlertsAcknowledgedTotal.Inc()
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
