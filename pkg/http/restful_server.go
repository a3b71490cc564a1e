package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/gaureshpai/cprm-prototype-sub001/pkg/hospital"
)

type RestfulServer struct {
	Server           *gin.Engine
	Hospital         *hospital.Hospital
	RateLimiterStore *hospital.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(displayID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(displayID)
	}
}

func (rs *RestfulServer) CheckDisplayLimiter(displayID string) bool {
	limiter := rs.GetLimiter(displayID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(displayID string, displayRate float64, displayBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(displayID, rate.Limit(displayRate), displayBurst)
}

// abortWithError translates the core error taxonomy onto HTTP status codes.
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, hospital.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, hospital.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, hospital.ErrUpstreamUnavailable):
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	rs.Server.POST("/displays", rs.PostDisplay)

	displays := rs.Server.Group("/displays/:display_id")
	{
		displays.POST("/heartbeat", rs.PostHeartbeat)
		displays.GET("/data", rs.GetDisplayData)
		displays.POST("/status", rs.PostDisplayStatus)
		displays.POST("/limiter", rs.PostLimiter)
	}

	alerts := rs.Server.Group("/alerts")
	{
		alerts.POST("", rs.PostAlert)
		alerts.GET("/active", rs.GetActiveAlerts)
		alerts.POST("/:alert_id/acknowledge", rs.AcknowledgeAlert)
		alerts.POST("/:alert_id/resolve", rs.ResolveAlert)
	}
}
