package hospital

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gaureshpai/cprm-prototype-sub001/pkg/common"
	"github.com/gaureshpai/cprm-prototype-sub001/pkg/models"
)

// DefaultAutoAckDelay is how long a non-critical alert stays urgent before
// the registry acknowledges it on staff's behalf. Critical codes never time
// out, they always demand a human response.
const DefaultAutoAckDelay = 5 * time.Minute

type AlertEventType string

const (
	AlertCreated      AlertEventType = "created"
	AlertAcknowledged AlertEventType = "acknowledged"
	AlertResolved     AlertEventType = "resolved"
)

// Alert is one emergency declaration. Code and Severity are immutable after
// creation; Status only moves forward (active -> acknowledged -> resolved).
type Alert struct {
	ID         string             `json:"id"`
	Code       models.AlertCode   `json:"code"`
	Severity   models.Severity    `json:"severity"`
	Department string             `json:"department"`
	Location   string             `json:"location"`
	Message    string             `json:"message"`
	Status     models.AlertStatus `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
	Audience   []string           `json:"audience"`
}

// AlertEvent is what subscribers receive on every alert lifecycle change.
type AlertEvent struct {
	Type  AlertEventType `json:"type"`
	Alert Alert          `json:"alert"`
}

// Handler receives alert events. Filtering by department or severity is the
// handler's responsibility, the registry delivers everything.
type Handler func(event AlertEvent)

// Subscription identifies one registered handler. Go func values are not
// comparable, so Subscribe hands out a token and Unsubscribe takes it back.
// The registry tracks the active list only, it never owns handler lifetime.
type Subscription struct {
	id      uint64
	handler Handler
}

type BroadcastInput struct {
	Code       models.AlertCode
	Department string
	Location   string
	Message    string
	Severity   models.Severity
	Audience   []string
}

type RegistryOpts struct {
	// AutoAckDelay overrides DefaultAutoAckDelay, mainly for tests.
	AutoAckDelay time.Duration
}

// Registry is the in-memory alert authority. Single-process by design: in a
// multi-instance deployment the shared state must live in a shared store, see
// pkg/events for the event mirror that makes transitions observable outside
// this process.
type Registry struct {
	hospital *Hospital
	opts     RegistryOpts

	mu        sync.Mutex
	alerts    map[string]*Alert
	order     []string
	subs      []*Subscription
	nextSubID uint64
}

func (h *Hospital) GetIRegistry(opts RegistryOpts) IRegistry {
	if opts.AutoAckDelay <= 0 {
		opts.AutoAckDelay = DefaultAutoAckDelay
	}
	return &Registry{
		hospital: h,
		opts:     opts,
		alerts:   make(map[string]*Alert),
	}
}

func registryLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameHospitalCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryRegistry),
	)
}

func (r *Registry) Broadcast(input *BroadcastInput) (*Alert, error) {
	profile, ok := LookupCodeProfile(input.Code)
	if !ok {
		return nil, validationErr("unknown alert code %q", input.Code)
	}
	if strings.TrimSpace(input.Department) == "" {
		return nil, validationErr("department is required")
	}
	if strings.TrimSpace(input.Location) == "" {
		return nil, validationErr("location is required")
	}

	severity := input.Severity
	if severity == "" {
		severity = profile.Severity
	} else if !knownSeverities[severity] {
		return nil, validationErr("unknown severity %q", severity)
	}

	message := input.Message
	if strings.TrimSpace(message) == "" {
		message = profile.Message
	}

	audience := input.Audience
	if len(audience) == 0 {
		audience = []string{"all"}
	}

	alert := &Alert{
		ID:         uuid.NewString(),
		Code:       input.Code,
		Severity:   severity,
		Department: input.Department,
		Location:   input.Location,
		Message:    message,
		Status:     models.AlertActive,
		CreatedAt:  time.Now(),
		Audience:   append([]string(nil), audience...),
	}

	logger := registryLogger()

	r.mu.Lock()
	if err := r.persistCreate(alert); err != nil {
		r.mu.Unlock()
		return nil, err
	}
	r.alerts[alert.ID] = alert
	r.order = append(r.order, alert.ID)
	subs := append([]*Subscription(nil), r.subs...)
	out := copyAlert(alert)
	r.mu.Unlock()

	logger.Info("Alert broadcast", zap.Reflect("alert", out))

	r.notify(subs, AlertEvent{Type: AlertCreated, Alert: out})

	if severity != models.SeverityCritical {
		alertID := alert.ID
		time.AfterFunc(r.opts.AutoAckDelay, func() {
			r.autoAcknowledge(alertID)
		})
	}

	return &out, nil
}

func (r *Registry) Subscribe(handler Handler) *Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextSubID++
	sub := &Subscription{id: r.nextSubID, handler: handler}
	r.subs = append(r.subs, sub)
	return sub
}

func (r *Registry) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.subs {
		if s.id == sub.id {
			r.subs = append(r.subs[:i], r.subs[i+1:]...)
			return
		}
	}
}

func (r *Registry) Acknowledge(alertID string) (*Alert, error) {
	return r.transition(alertID, models.AlertAcknowledged, false)
}

func (r *Registry) Resolve(alertID string) (*Alert, error) {
	return r.transition(alertID, models.AlertResolved, false)
}

func (r *Registry) ListActive() []Alert {
	r.mu.Lock()
	defer r.mu.Unlock()

	active := []Alert{}
	for _, id := range r.order {
		if alert := r.alerts[id]; alert.Status == models.AlertActive {
			active = append(active, copyAlert(alert))
		}
	}
	return active
}

// autoAcknowledge fires from the deferred timer. It re-checks the current
// status under the lock so a manually acknowledged or resolved alert is
// never reset.
func (r *Registry) autoAcknowledge(alertID string) {
	if _, err := r.transition(alertID, models.AlertAcknowledged, true); err != nil {
		registryLogger().Error("Auto-acknowledge failed",
			zap.String("alert_id", alertID), zap.Error(err))
	}
}

// transition applies a forward status change. Repeating a transition the
// alert already passed is a no-op returning the current state, never a
// second subscriber notification.
func (r *Registry) transition(alertID string, target models.AlertStatus, auto bool) (*Alert, error) {
	r.mu.Lock()

	alert, ok := r.alerts[alertID]
	if !ok {
		r.mu.Unlock()
		return nil, notFoundErr("alert %q", alertID)
	}

	var eventType AlertEventType
	switch target {
	case models.AlertAcknowledged:
		if alert.Status != models.AlertActive {
			out := copyAlert(alert)
			r.mu.Unlock()
			return &out, nil
		}
		eventType = AlertAcknowledged
	case models.AlertResolved:
		if alert.Status == models.AlertResolved {
			out := copyAlert(alert)
			r.mu.Unlock()
			return &out, nil
		}
		eventType = AlertResolved
	default:
		r.mu.Unlock()
		return nil, ErrInternal
	}

	if err := r.persistStatus(alertID, target); err != nil {
		r.mu.Unlock()
		return nil, err
	}

	alert.Status = target
	subs := append([]*Subscription(nil), r.subs...)
	out := copyAlert(alert)
	r.mu.Unlock()

	registryLogger().Info("Alert transitioned",
		zap.Reflect("alert", out), zap.Bool("auto", auto))

	r.notify(subs, AlertEvent{Type: eventType, Alert: out})

	return &out, nil
}

// notify fans an event out, one goroutine per subscriber. A panicking or
// slow handler never blocks the caller or delivery to other handlers.
func (r *Registry) notify(subs []*Subscription, event AlertEvent) {
	for _, sub := range subs {
		go func(s *Subscription) {
			defer func() {
				if rec := recover(); rec != nil {
					common.GetLoggerWith(
						common.LoggerNameHospitalCore,
						zap.String(common.LoggerFieldCategory, common.LoggerCategorySubscriber),
					).Error("Subscriber panicked during fan-out",
						zap.Uint64("subscription_id", s.id),
						zap.Any("panic", rec))
				}
			}()
			s.handler(event)
		}(sub)
	}
}

func (r *Registry) persistCreate(alert *Alert) error {
	conn := r.hospital.Db.Conn
	if conn == nil {
		return nil
	}

	record := models.AlertRecord{
		AlertID:    alert.ID,
		Code:       alert.Code,
		Severity:   alert.Severity,
		Department: alert.Department,
		Location:   alert.Location,
		Message:    alert.Message,
		Status:     alert.Status,
		CreatedAt:  alert.CreatedAt,
		UpdatedAt:  alert.CreatedAt,
	}
	if err := conn.Create(&record).Error; err != nil {
		return upstreamErr("persist alert record", err)
	}
	return nil
}

func (r *Registry) persistStatus(alertID string, status models.AlertStatus) error {
	conn := r.hospital.Db.Conn
	if conn == nil {
		return nil
	}

	err := conn.Model(&models.AlertRecord{}).
		Where("alert_id = ?", alertID).
		Updates(map[string]any{"status": status, "updated_at": time.Now()}).Error
	if err != nil {
		return upstreamErr("persist alert status", err)
	}
	return nil
}

func copyAlert(alert *Alert) Alert {
	out := *alert
	out.Audience = append([]string(nil), alert.Audience...)
	return out
}
