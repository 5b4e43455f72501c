package implementation

import (
	"context"
	"errors"

	"strength-coach-be/internal/entity"
	"strength-coach-be/internal/mapper"
	"strength-coach-be/internal/model"
	"strength-coach-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StrengthProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StrengthProfileMapper
}

func NewStrengthProfileRepository(db *gorm.DB) contract.StrengthProfileRepository {
	return &StrengthProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewStrengthProfileMapper(),
	}
}

func (r *StrengthProfileRepositoryImpl) Upsert(ctx context.Context, profile *entity.StrengthProfile) error {
	if profile.Id == uuid.Nil {
		profile.Id = uuid.New()
	}
	modelProfile, err := r.mapper.ToModel(profile)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"scores", "top_strengths", "narrative", "completed_at", "updated_at",
		}),
	}).Create(modelProfile).Error
}

func (r *StrengthProfileRepositoryImpl) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.StrengthProfile, error) {
	var modelProfile model.StrengthProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&modelProfile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelProfile)
}

func (r *StrengthProfileRepositoryImpl) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.StrengthProfile{}).Error
}
