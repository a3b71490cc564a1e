package hospital

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/gaureshpai/cprm-prototype-sub001/pkg/common"
	"github.com/gaureshpai/cprm-prototype-sub001/pkg/models"
)

// Page caps for the snapshot. A kiosk screen shows a glanceable page, not a
// full table.
const (
	QueuePageSize = 10
	DrugPageSize  = 5
)

// QueueEntryView is a queue entry shaped for an unauthenticated public
// screen. Only initials of the patient name ever appear here.
type QueueEntryView struct {
	TokenNumber     string             `json:"token_number"`
	PatientInitials string             `json:"patient_initials"`
	Department      string             `json:"department"`
	Status          models.QueueStatus `json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
}

type DepartmentView struct {
	Name         string `json:"name"`
	TotalBeds    int    `json:"total_beds"`
	OccupiedBeds int    `json:"occupied_beds"`
}

type DrugStockView struct {
	Name          string `json:"name"`
	Batch         string `json:"batch"`
	Stock         int    `json:"stock"`
	CriticalLevel int    `json:"critical_level"`
}

// DisplaySnapshot is the composite payload a display renders. Regenerated on
// every read, never cached. All four collections are always present so the
// screen can render a "no data" state instead of crashing.
type DisplaySnapshot struct {
	DisplayID    string           `json:"display_id"`
	GeneratedAt  time.Time        `json:"generated_at"`
	WaitingCount int              `json:"waiting_count"`
	Queue        []QueueEntryView `json:"queue"`
	Departments  []DepartmentView `json:"departments"`
	Alerts       []Alert          `json:"alerts"`
	LowStock     []DrugStockView  `json:"low_stock"`
}

func emptySnapshot(displayID string) *DisplaySnapshot {
	return &DisplaySnapshot{
		DisplayID:   displayID,
		GeneratedAt: time.Now(),
		Queue:       []QueueEntryView{},
		Departments: []DepartmentView{},
		Alerts:      []Alert{},
		LowStock:    []DrugStockView{},
	}
}

func (h *Hospital) getDisplayData(ctx context.Context, displayID string) *DisplaySnapshot {
	logger := common.GetLoggerWith(
		common.LoggerNameHospitalCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryFeed),
	)

	snapshot := emptySnapshot(displayID)
	conn := h.Db.Conn
	if conn == nil {
		return snapshot
	}
	conn = conn.WithContext(ctx)

	var entries []models.TokenQueueEntry
	err := conn.
		Where("status IN ?", []models.QueueStatus{models.QueueWaiting, models.QueueInProgress}).
		Order("created_at asc, id asc").
		Limit(QueuePageSize).
		Find(&entries).Error
	if err != nil {
		logger.Warn("Queue read failed, serving empty snapshot",
			zap.String("display_id", displayID), zap.Error(err))
		return emptySnapshot(displayID)
	}

	var departments []models.Department
	if err := conn.Order("name asc").Find(&departments).Error; err != nil {
		logger.Warn("Department read failed, serving empty snapshot",
			zap.String("display_id", displayID), zap.Error(err))
		return emptySnapshot(displayID)
	}

	var drugs []models.DrugItem
	err = conn.
		Where("stock < critical_level").
		Order("name asc").
		Limit(DrugPageSize).
		Find(&drugs).Error
	if err != nil {
		logger.Warn("Drug stock read failed, serving empty snapshot",
			zap.String("display_id", displayID), zap.Error(err))
		return emptySnapshot(displayID)
	}

	snapshot.Queue = common.Mapper(entries, func(e models.TokenQueueEntry) QueueEntryView {
		return QueueEntryView{
			TokenNumber:     e.TokenNumber,
			PatientInitials: common.AnonymizeName(e.PatientName),
			Department:      e.Department,
			Status:          e.Status,
			CreatedAt:       e.CreatedAt,
		}
	})
	snapshot.WaitingCount = common.Reducer(entries, func(acc int, e models.TokenQueueEntry) int {
		if e.Status == models.QueueWaiting {
			return acc + 1
		}
		return acc
	}, 0)
	snapshot.Departments = common.Mapper(departments, func(d models.Department) DepartmentView {
		return DepartmentView{Name: d.Name, TotalBeds: d.TotalBeds, OccupiedBeds: d.OccupiedBeds}
	})
	snapshot.LowStock = common.Mapper(drugs, func(d models.DrugItem) DrugStockView {
		return DrugStockView{Name: d.Name, Batch: d.Batch, Stock: d.Stock, CriticalLevel: d.CriticalLevel}
	})

	if h.Registry != nil {
		snapshot.Alerts = scopeAlerts(h.Registry.ListActive(), displayID)
	}

	return snapshot
}

// scopeAlerts keeps alerts addressed to everyone or to this display.
func scopeAlerts(alerts []Alert, displayID string) []Alert {
	scoped := []Alert{}
	for _, alert := range alerts {
		for _, target := range alert.Audience {
			if target == "all" || target == displayID {
				scoped = append(scoped, alert)
				break
			}
		}
	}
	return scoped
}

type IFeedImpl struct {
	hospital *Hospital
}

func (f *IFeedImpl) GetDisplayData(ctx context.Context, displayID string) *DisplaySnapshot {
	return f.hospital.getDisplayData(ctx, displayID)
}

func (h *Hospital) GetIFeed() IFeed {
	return &IFeedImpl{hospital: h}
}
