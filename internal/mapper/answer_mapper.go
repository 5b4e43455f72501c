package mapper

import (
	"strength-coach-be/internal/entity"
	"strength-coach-be/internal/model"
)

type AnswerMapper struct{}

func NewAnswerMapper() *AnswerMapper {
	return &AnswerMapper{}
}

func (m *AnswerMapper) ToEntity(a *model.Answer) *entity.Answer {
	if a == nil {
		return nil
	}
	return &entity.Answer{
		Id:         a.Id,
		UserId:     a.UserId,
		QuestionId: a.QuestionId,
		Value:      a.Value,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  optionalTime(a.UpdatedAt),
	}
}

func (m *AnswerMapper) ToModel(a *entity.Answer) *model.Answer {
	if a == nil {
		return nil
	}
	modelAnswer := &model.Answer{
		Id:         a.Id,
		UserId:     a.UserId,
		QuestionId: a.QuestionId,
		Value:      a.Value,
		CreatedAt:  a.CreatedAt,
	}
	if a.UpdatedAt != nil {
		modelAnswer.UpdatedAt = *a.UpdatedAt
	}
	return modelAnswer
}

func (m *AnswerMapper) ToEntities(answers []*model.Answer) []*entity.Answer {
	out := make([]*entity.Answer, 0, len(answers))
	for _, a := range answers {
		out = append(out, m.ToEntity(a))
	}
	return out
}
