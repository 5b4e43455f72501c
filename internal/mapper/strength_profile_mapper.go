package mapper

import (
	"encoding/json"

	"strength-coach-be/internal/entity"
	"strength-coach-be/internal/model"

	"gorm.io/datatypes"
)

type StrengthProfileMapper struct{}

func NewStrengthProfileMapper() *StrengthProfileMapper {
	return &StrengthProfileMapper{}
}

func (m *StrengthProfileMapper) ToEntity(p *model.StrengthProfile) (*entity.StrengthProfile, error) {
	if p == nil {
		return nil, nil
	}

	scores := make(map[string]float64)
	if len(p.Scores) > 0 {
		if err := json.Unmarshal(p.Scores, &scores); err != nil {
			return nil, err
		}
	}

	var top []string
	if len(p.TopStrengths) > 0 {
		if err := json.Unmarshal(p.TopStrengths, &top); err != nil {
			return nil, err
		}
	}

	return &entity.StrengthProfile{
		Id:           p.Id,
		UserId:       p.UserId,
		Scores:       scores,
		TopStrengths: top,
		Narrative:    p.Narrative,
		CompletedAt:  p.CompletedAt,
		UpdatedAt:    optionalTime(p.UpdatedAt),
	}, nil
}

func (m *StrengthProfileMapper) ToModel(p *entity.StrengthProfile) (*model.StrengthProfile, error) {
	if p == nil {
		return nil, nil
	}

	scores, err := json.Marshal(p.Scores)
	if err != nil {
		return nil, err
	}
	top, err := json.Marshal(p.TopStrengths)
	if err != nil {
		return nil, err
	}

	modelProfile := &model.StrengthProfile{
		Id:           p.Id,
		UserId:       p.UserId,
		Scores:       datatypes.JSON(scores),
		TopStrengths: datatypes.JSON(top),
		Narrative:    p.Narrative,
		CompletedAt:  p.CompletedAt,
	}
	if p.UpdatedAt != nil {
		modelProfile.UpdatedAt = *p.UpdatedAt
	}
	return modelProfile, nil
}
