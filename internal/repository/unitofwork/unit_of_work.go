package unitofwork

import (
	"context"

	"strength-coach-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	AnswerRepository() contract.AnswerRepository
	StrengthProfileRepository() contract.StrengthProfileRepository
	ReminderSettingRepository() contract.ReminderSettingRepository
}
