package repositories

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"oneconversion/internal/models/db_models"
)

type SettingRepositoryInterface interface {
	Find(ctx context.Context, name string) (*db_models.Setting, error)
	Upsert(ctx context.Context, name string, payload datatypes.JSON) error
}

func NewSettingRepository(db *gorm.DB) SettingRepositoryInterface {
	return &SettingRepository{db: db}
}

type SettingRepository struct {
	db *gorm.DB
}

func (r *SettingRepository) Find(ctx context.Context, name string) (*db_models.Setting, error) {
	var setting db_models.Setting
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

func (r *SettingRepository) Upsert(ctx context.Context, name string, payload datatypes.JSON) error {
	setting := db_models.Setting{Name: name, Payload: payload}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&setting).Error
}
