// Package events mirrors alert registry events out of the process. The
// registry itself is a single-process, in-memory authority; deployments that
// run more than one instance subscribe the mirror so transitions become
// observable on a shared redis channel.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/gaureshpai/cprm-prototype-sub001/pkg/common"
	"github.com/gaureshpai/cprm-prototype-sub001/pkg/hospital"
)

const DefaultChannel = "cprm:alert_events"

const publishTimeout = 2 * time.Second

type RedisMirror struct {
	client  *redis.Client
	channel string
}

func NewRedisMirror(client *redis.Client, channel string) *RedisMirror {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisMirror{client: client, channel: channel}
}

// Handler returns a registry subscriber that publishes every alert event as
// JSON. Publish failures are logged and dropped, mirroring is best-effort
// and must never affect in-process delivery.
func (m *RedisMirror) Handler() hospital.Handler {
	logger := common.GetLoggerWith(
		common.LoggerNameRedisMirror,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlertMirror),
	)

	return func(event hospital.AlertEvent) {
		payload, err := json.Marshal(event)
		if err != nil {
			logger.Error("Failed to encode alert event", zap.Error(err))
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := m.client.Publish(ctx, m.channel, payload).Err(); err != nil {
			logger.Error("Failed to publish alert event",
				zap.String("channel", m.channel),
				zap.String("alert_id", event.Alert.ID),
				zap.Error(err))
			return
		}

		logger.Info("Alert event mirrored",
			zap.String("channel", m.channel),
			zap.String("type", string(event.Type)),
			zap.String("alert_id", event.Alert.ID))
	}
}
