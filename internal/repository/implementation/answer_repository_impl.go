package implementation

import (
	"context"

	"strength-coach-be/internal/entity"
	"strength-coach-be/internal/mapper"
	"strength-coach-be/internal/model"
	"strength-coach-be/internal/repository/contract"
	"strength-coach-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnswerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AnswerMapper
}

func NewAnswerRepository(db *gorm.DB) contract.AnswerRepository {
	return &AnswerRepositoryImpl{
		db:     db,
		mapper: mapper.NewAnswerMapper(),
	}
}

// Upsert keeps the (user_id, question_id) invariant in the database itself:
// a conflicting insert turns into an update of the stored value.
func (r *AnswerRepositoryImpl) Upsert(ctx context.Context, answer *entity.Answer) error {
	if answer.Id == uuid.Nil {
		answer.Id = uuid.New()
	}
	modelAnswer := r.mapper.ToModel(answer)

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(modelAnswer).Error
	if err != nil {
		return err
	}

	*answer = *r.mapper.ToEntity(modelAnswer)
	return nil
}

func (r *AnswerRepositoryImpl) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Answer, error) {
	return r.FindAll(ctx,
		specification.OwnedByUser{UserID: userID},
		specification.OrderBy{Field: "created_at"},
	)
}

func (r *AnswerRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Answer, error) {
	var modelAnswers []*model.Answer
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelAnswers).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelAnswers), nil
}

func (r *AnswerRepositoryImpl) DeleteAllByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.Answer{}).Error
}
