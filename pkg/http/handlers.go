package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"github.com/gaureshpai/cprm-prototype-sub001/pkg/hospital"
	"github.com/gaureshpai/cprm-prototype-sub001/pkg/models"
)

type HeartbeatRequest struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

var heartbeatRequestSchema = z.Struct(z.Shape{
	"Status":    z.String(),
	"Timestamp": z.Time(),
})

func (rs *RestfulServer) PostHeartbeat(c *gin.Context) {
	displayID := c.Param("display_id")

	if !rs.CheckDisplayLimiter(displayID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req HeartbeatRequest

	if err := heartbeatRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	display, err := rs.Hospital.Liveness.Heartbeat(displayID, &hospital.HeartbeatInput{
		Status:    models.DisplayStatus(req.Status),
		Timestamp: req.Timestamp,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"display_id":   display.DisplayID,
		"status":       display.Status,
		"last_seen_at": display.LastSeenAt,
	})
}

func (rs *RestfulServer) GetDisplayData(c *gin.Context) {
	displayID := c.Param("display_id")

	if !rs.CheckDisplayLimiter(displayID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	// always well-formed, even when the persistence collaborator is down
	snapshot := rs.Hospital.Feed.GetDisplayData(c.Request.Context(), displayID)
	c.JSON(http.StatusOK, snapshot)
}

type RegisterDisplayRequest struct {
	DisplayID   string `json:"display_id"`
	Location    string `json:"location"`
	ContentMode string `json:"content_mode"`
	Config      string `json:"config"`
}

var registerDisplayRequestSchema = z.Struct(z.Shape{
	"DisplayID":   z.String().Required(),
	"Location":    z.String(),
	"ContentMode": z.String(),
	"Config":      z.String(),
})

func (rs *RestfulServer) PostDisplay(c *gin.Context) {
	var req RegisterDisplayRequest
	if err := registerDisplayRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	display, err := rs.Hospital.Liveness.Register(&hospital.RegisterDisplayInput{
		DisplayID:   req.DisplayID,
		Location:    req.Location,
		ContentMode: req.ContentMode,
		Config:      req.Config,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, display)
}

type DisplayStatusRequest struct {
	Status string `json:"status"`
}

var displayStatusRequestSchema = z.Struct(z.Shape{
	"Status": z.String().Required(),
})

func (rs *RestfulServer) PostDisplayStatus(c *gin.Context) {
	displayID := c.Param("display_id")

	var req DisplayStatusRequest
	if err := displayStatusRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	display, err := rs.Hospital.Liveness.SetStatus(displayID, models.DisplayStatus(req.Status))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"display_id":   display.DisplayID,
		"status":       display.Status,
		"last_seen_at": display.LastSeenAt,
	})
}

type BroadcastRequest struct {
	Code       string   `json:"code"`
	Department string   `json:"department"`
	Location   string   `json:"location"`
	Message    string   `json:"message"`
	Severity   string   `json:"severity"`
	Audience   []string `json:"audience"`
}

var broadcastRequestSchema = z.Struct(z.Shape{
	"Code":       z.String().Required(),
	"Department": z.String().Required(),
	"Location":   z.String().Required(),
	"Message":    z.String(),
	"Severity":   z.String(),
	"Audience":   z.Slice(z.String()),
})

func (rs *RestfulServer) PostAlert(c *gin.Context) {
	var req BroadcastRequest
	if err := broadcastRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	alert, err := rs.Hospital.Registry.Broadcast(&hospital.BroadcastInput{
		Code:       models.AlertCode(req.Code),
		Department: req.Department,
		Location:   req.Location,
		Message:    req.Message,
		Severity:   models.Severity(req.Severity),
		Audience:   req.Audience,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, alert)
}

func (rs *RestfulServer) AcknowledgeAlert(c *gin.Context) {
	alert, err := rs.Hospital.Registry.Acknowledge(c.Param("alert_id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

func (rs *RestfulServer) ResolveAlert(c *gin.Context) {
	alert, err := rs.Hospital.Registry.Resolve(c.Param("alert_id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

func (rs *RestfulServer) GetActiveAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, rs.Hospital.Registry.ListActive())
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	displayID := c.Param("display_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(displayID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
