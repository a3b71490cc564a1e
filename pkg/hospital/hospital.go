package hospital

import (
	"context"
	"time"

	"github.com/gaureshpai/cprm-prototype-sub001/pkg/db"
	"github.com/gaureshpai/cprm-prototype-sub001/pkg/models"
)

// IRegistry is the process-wide authority for emergency alert state and
// delivery.
type IRegistry interface {
	Broadcast(input *BroadcastInput) (*Alert, error)
	Subscribe(handler Handler) *Subscription
	Unsubscribe(sub *Subscription)
	Acknowledge(alertID string) (*Alert, error)
	Resolve(alertID string) (*Alert, error)
	ListActive() []Alert
}

// IFeed composes the read-only payload a public display renders.
type IFeed interface {
	GetDisplayData(ctx context.Context, displayID string) *DisplaySnapshot
}

// ILiveness maintains each display's status from heartbeat pings and manual
// admin actions. Register is the administrative seeding path, heartbeats
// never create displays.
type ILiveness interface {
	Register(input *RegisterDisplayInput) (*models.Display, error)
	Heartbeat(displayID string, input *HeartbeatInput) (*models.Display, error)
	SetStatus(displayID string, status models.DisplayStatus) (*models.Display, error)
	EffectiveStatus(display *models.Display, now time.Time) models.DisplayStatus
}

type Hospital struct {
	Db       db.DB
	Registry IRegistry
	Feed     IFeed
	Liveness ILiveness
}

type ServiceOpts struct {
	Registry IRegistry
	Feed     IFeed
	Liveness ILiveness
}

func (h *Hospital) WithServices(opts ServiceOpts) *Hospital {
	if opts.Registry != nil {
		h.Registry = opts.Registry
	}
	if opts.Feed != nil {
		h.Feed = opts.Feed
	}
	if opts.Liveness != nil {
		h.Liveness = opts.Liveness
	}
	return h
}
