package mapper

import (
	"encoding/json"

	"strength-coach-be/internal/entity"
	"strength-coach-be/internal/model"

	"gorm.io/datatypes"
)

type ReminderSettingMapper struct{}

func NewReminderSettingMapper() *ReminderSettingMapper {
	return &ReminderSettingMapper{}
}

func (m *ReminderSettingMapper) ToEntity(r *model.ReminderSetting) (*entity.ReminderSetting, error) {
	if r == nil {
		return nil, nil
	}

	var weekdays []string
	if len(r.Weekdays) > 0 {
		if err := json.Unmarshal(r.Weekdays, &weekdays); err != nil {
			return nil, err
		}
	}

	return &entity.ReminderSetting{
		Id:        r.Id,
		UserId:    r.UserId,
		TimeOfDay: r.TimeOfDay,
		Weekdays:  weekdays,
		Active:    r.Active,
		CreatedAt: r.CreatedAt,
		UpdatedAt: optionalTime(r.UpdatedAt),
	}, nil
}

func (m *ReminderSettingMapper) ToModel(r *entity.ReminderSetting) (*model.ReminderSetting, error) {
	if r == nil {
		return nil, nil
	}

	weekdays, err := json.Marshal(r.Weekdays)
	if err != nil {
		return nil, err
	}

	modelSetting := &model.ReminderSetting{
		Id:        r.Id,
		UserId:    r.UserId,
		TimeOfDay: r.TimeOfDay,
		Weekdays:  datatypes.JSON(weekdays),
		Active:    r.Active,
		CreatedAt: r.CreatedAt,
	}
	if r.UpdatedAt != nil {
		modelSetting.UpdatedAt = *r.UpdatedAt
	}
	return modelSetting, nil
}

func (m *ReminderSettingMapper) ToEntities(settings []*model.ReminderSetting) ([]*entity.ReminderSetting, error) {
	out := make([]*entity.ReminderSetting, 0, len(settings))
	for _, r := range settings {
		e, err := m.ToEntity(r)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
