package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exist")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrHabitNotFound = errors.New("habit doesn't exist")
	ErrWrongOwner    = errors.New("habit has different owner")
	ErrOwnerNotFound = errors.New("habit owner doesn't exist")
	ErrEmptyName     = errors.New("habit name is empty")

	ErrStatsNotFound = errors.New("user stats don't exist")
)
