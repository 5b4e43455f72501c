package mapper

import (
	"time"

	"strength-coach-be/internal/entity"
	"strength-coach-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:          u.Id,
		ChatId:      u.ChatId,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   optionalTime(u.UpdatedAt),
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	modelUser := &model.User{
		Id:          u.Id,
		ChatId:      u.ChatId,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		CreatedAt:   u.CreatedAt,
	}
	if u.UpdatedAt != nil {
		modelUser.UpdatedAt = *u.UpdatedAt
	}
	return modelUser
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	out := make([]*entity.User, 0, len(users))
	for _, u := range users {
		out = append(out, m.ToEntity(u))
	}
	return out
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
