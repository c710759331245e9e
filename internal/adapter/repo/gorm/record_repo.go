package gormrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"driftisle/internal/adapter/repo/gorm/model"
	"driftisle/internal/app/ports"
)

type RecordRepo struct {
	db *gorm.DB
}

func NewRecordRepo(db *gorm.DB) RecordRepo {
	return RecordRepo{db: db}
}

func (r RecordRepo) Load(ctx context.Context, key string) ([]byte, error) {
	var m model.SimRecord
	if err := getDBFromCtx(ctx, r.db).WithContext(ctx).Where("key = ?", key).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return m.Payload, nil
}

func (r RecordRepo) Save(ctx context.Context, key string, payload []byte) error {
	m := model.SimRecord{Key: key, Payload: payload, UpdatedAt: time.Now()}
	return getDBFromCtx(ctx, r.db).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&m).Error
}

func (r RecordRepo) Delete(ctx context.Context, key string) error {
	return getDBFromCtx(ctx, r.db).WithContext(ctx).
		Where("key = ?", key).
		Delete(&model.SimRecord{}).Error
}
