package gormrepo

import (
	"context"

	"gorm.io/gorm"

	"driftisle/internal/adapter/repo/gorm/model"
	"driftisle/internal/app/ports"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, events []ports.EventRecord) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]model.SimEvent, 0, len(events))
	for _, ev := range events {
		rows = append(rows, model.SimEvent{
			ID:         ev.ID,
			Type:       ev.Type,
			OccurredAt: ev.OccurredAt,
			AtMinutes:  ev.AtMinutes,
			Payload:    ev.Payload,
		})
	}
	return getDBFromCtx(ctx, r.db).WithContext(ctx).Create(&rows).Error
}

func (r EventRepo) ListRecent(ctx context.Context, limit int) ([]ports.EventRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []model.SimEvent
	err := getDBFromCtx(ctx, r.db).WithContext(ctx).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]ports.EventRecord, 0, len(rows))
	for _, m := range rows {
		out = append(out, ports.EventRecord{
			ID:         m.ID,
			Type:       m.Type,
			OccurredAt: m.OccurredAt,
			AtMinutes:  m.AtMinutes,
			Payload:    m.Payload,
		})
	}
	return out, nil
}

func (r EventRepo) Clear(ctx context.Context) error {
	return getDBFromCtx(ctx, r.db).WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.SimEvent{}).Error
}
