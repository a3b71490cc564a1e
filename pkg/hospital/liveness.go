package hospital

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gaureshpai/cprm-prototype-sub001/pkg/common"
	"github.com/gaureshpai/cprm-prototype-sub001/pkg/models"
)

// DefaultStaleAfter is how long a display may stay silent before a read
// infers it offline. There is no background sweep, staleness is computed
// lazily whenever state is read.
const DefaultStaleAfter = 90 * time.Second

type HeartbeatInput struct {
	Status    models.DisplayStatus
	Timestamp time.Time
}

type LivenessOpts struct {
	// StaleAfter overrides DefaultStaleAfter.
	StaleAfter time.Duration
}

var knownDisplayStatuses = map[models.DisplayStatus]bool{
	models.DisplayOnline:      true,
	models.DisplayOffline:     true,
	models.DisplayWarning:     true,
	models.DisplayMaintenance: true,
}

func livenessLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameHospitalCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryLiveness),
	)
}

type RegisterDisplayInput struct {
	DisplayID   string
	Location    string
	ContentMode string
	Config      string
}

// register seeds a display row. New displays start offline until their first
// heartbeat.
func (h *Hospital) register(input *RegisterDisplayInput) (*models.Display, error) {
	if input == nil || strings.TrimSpace(input.DisplayID) == "" {
		return nil, validationErr("display id is required")
	}

	display := models.Display{
		DisplayID:   input.DisplayID,
		Location:    input.Location,
		Status:      models.DisplayOffline,
		ContentMode: input.ContentMode,
		LastSeenAt:  time.Now(),
		Config:      input.Config,
	}
	if err := h.Db.Conn.Create(&display).Error; err != nil {
		return nil, upstreamErr("create display", err)
	}

	livenessLogger().Info("Display registered",
		zap.String("display_id", display.DisplayID),
		zap.String("location", display.Location))

	return &display, nil
}

func (h *Hospital) heartbeat(displayID string, input *HeartbeatInput) (*models.Display, error) {
	if strings.TrimSpace(displayID) == "" {
		return nil, validationErr("display id is required")
	}

	status := models.DisplayOnline
	if input != nil && input.Status != "" {
		if !knownDisplayStatuses[input.Status] {
			return nil, validationErr("unknown display status %q", input.Status)
		}
		status = input.Status
	}

	seenAt := time.Now()
	if input != nil && !input.Timestamp.IsZero() {
		seenAt = input.Timestamp
	}

	return h.applyDisplayStatus(displayID, status, seenAt)
}

// setStatus is the manual admin path: turn-on, turn-off, maintenance,
// warning. Same persistence path as a heartbeat, the timestamp is always the
// server's.
func (h *Hospital) setStatus(displayID string, status models.DisplayStatus) (*models.Display, error) {
	if strings.TrimSpace(displayID) == "" {
		return nil, validationErr("display id is required")
	}
	if !knownDisplayStatuses[status] {
		return nil, validationErr("unknown display status %q", status)
	}
	return h.applyDisplayStatus(displayID, status, time.Now())
}

func (h *Hospital) applyDisplayStatus(displayID string, status models.DisplayStatus, seenAt time.Time) (*models.Display, error) {
	var display models.Display
	if err := h.Db.Conn.First(&display, "display_id = ?", displayID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// heartbeats never register a display, that is an admin action
			return nil, notFoundErr("display %q", displayID)
		}
		return nil, upstreamErr("find display", err)
	}

	display.Status = status
	display.LastSeenAt = seenAt

	err := h.Db.Conn.Model(&models.Display{}).
		Where("display_id = ?", displayID).
		Updates(map[string]any{"status": status, "last_seen_at": seenAt}).Error
	if err != nil {
		return nil, upstreamErr("update display", err)
	}

	livenessLogger().Info("Display status updated",
		zap.String("display_id", displayID),
		zap.String("status", string(status)),
		zap.Time("last_seen_at", seenAt))

	return &display, nil
}

// effectiveStatus downgrades a silent online display to offline at read
// time. Manual states (maintenance, warning, offline) are reported as-is.
func effectiveStatus(display *models.Display, now time.Time, staleAfter time.Duration) models.DisplayStatus {
	if display.Status == models.DisplayOnline && now.Sub(display.LastSeenAt) > staleAfter {
		return models.DisplayOffline
	}
	return display.Status
}

type ILivenessImpl struct {
	hospital *Hospital
	opts     LivenessOpts
}

func (il *ILivenessImpl) Register(input *RegisterDisplayInput) (*models.Display, error) {
	return il.hospital.register(input)
}

func (il *ILivenessImpl) Heartbeat(displayID string, input *HeartbeatInput) (*models.Display, error) {
	return il.hospital.heartbeat(displayID, input)
}

func (il *ILivenessImpl) SetStatus(displayID string, status models.DisplayStatus) (*models.Display, error) {
	return il.hospital.setStatus(displayID, status)
}

func (il *ILivenessImpl) EffectiveStatus(display *models.Display, now time.Time) models.DisplayStatus {
	return effectiveStatus(display, now, il.opts.StaleAfter)
}

func (h *Hospital) GetILiveness(opts LivenessOpts) ILiveness {
	if opts.StaleAfter <= 0 {
		opts.StaleAfter = DefaultStaleAfter
	}
	return &ILivenessImpl{hospital: h, opts: opts}
}
