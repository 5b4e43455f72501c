package implementation

import (
	"context"
	"errors"

	"strength-coach-be/internal/entity"
	"strength-coach-be/internal/mapper"
	"strength-coach-be/internal/model"
	"strength-coach-be/internal/repository/contract"
	"strength-coach-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReminderSettingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReminderSettingMapper
}

func NewReminderSettingRepository(db *gorm.DB) contract.ReminderSettingRepository {
	return &ReminderSettingRepositoryImpl{
		db:     db,
		mapper: mapper.NewReminderSettingMapper(),
	}
}

func (r *ReminderSettingRepositoryImpl) Upsert(ctx context.Context, setting *entity.ReminderSetting) error {
	if setting.Id == uuid.Nil {
		setting.Id = uuid.New()
	}
	modelSetting, err := r.mapper.ToModel(setting)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"time_of_day", "weekdays", "active", "updated_at",
		}),
	}).Create(modelSetting).Error
}

func (r *ReminderSettingRepositoryImpl) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.ReminderSetting, error) {
	var modelSetting model.ReminderSetting
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&modelSetting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelSetting)
}

func (r *ReminderSettingRepositoryImpl) FindAllActive(ctx context.Context) ([]*entity.ReminderSetting, error) {
	var modelSettings []*model.ReminderSetting
	query := applySpecifications(r.db.WithContext(ctx), specification.ActiveReminders{})
	if err := query.Find(&modelSettings).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(modelSettings)
}

func (r *ReminderSettingRepositoryImpl) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.ReminderSetting{}).Error
}
