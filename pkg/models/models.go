package models

import "time"

type AlertCode string

const (
	CodeBlue   AlertCode = "code_blue"
	CodeRed    AlertCode = "code_red"
	CodePink   AlertCode = "code_pink"
	CodeYellow AlertCode = "code_yellow"
	CodeGreen  AlertCode = "code_green"
)

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

type AlertStatus string

const (
	AlertActive       AlertStatus = "active"
	AlertAcknowledged AlertStatus = "acknowledged"
	AlertResolved     AlertStatus = "resolved"
)

type DisplayStatus string

const (
	DisplayOnline      DisplayStatus = "online"
	DisplayOffline     DisplayStatus = "offline"
	DisplayWarning     DisplayStatus = "warning"
	DisplayMaintenance DisplayStatus = "maintenance"
)

type QueueStatus string

const (
	QueueWaiting    QueueStatus = "waiting"
	QueueInProgress QueueStatus = "in_progress"
	QueueDone       QueueStatus = "done"
)

// Display is a physical or virtual screen endpoint. Status changes come from
// heartbeats, restarts, or manual admin action; LastSeenAt always tracks the
// most recent state-changing event.
type Display struct {
	DisplayID   string        `gorm:"primaryKey"`
	Location    string
	Status      DisplayStatus `gorm:"type:varchar(20);check:status IN ('online','offline','warning','maintenance')"`
	ContentMode string
	Uptime      string
	LastSeenAt  time.Time
	Config      string
}

type Department struct {
	Name         string `gorm:"primaryKey"`
	TotalBeds    int
	OccupiedBeds int
}

type TokenQueueEntry struct {
	ID          uint   `gorm:"primaryKey"`
	TokenNumber string `gorm:"index"`
	PatientName string
	Department  string
	Status      QueueStatus `gorm:"type:varchar(20);check:status IN ('waiting','in_progress','done')"`
	CreatedAt   time.Time
}

type DrugItem struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"index"`
	Batch         string
	Stock         int
	CriticalLevel int
	ExpiresAt     time.Time
}

// AlertRecord is the persisted history row for an alert. The in-memory
// registry is the authority while the process lives; records are never
// deleted, resolved alerts stay in history.
type AlertRecord struct {
	AlertID    string      `gorm:"primaryKey"`
	Code       AlertCode   `gorm:"type:varchar(20);check:code IN ('code_blue','code_red','code_pink','code_yellow','code_green')"`
	Severity   Severity    `gorm:"type:varchar(10)"`
	Department string
	Location   string
	Message    string
	Status     AlertStatus `gorm:"type:varchar(20);check:status IN ('active','acknowledged','resolved')"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
