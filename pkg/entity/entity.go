package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
}

// Habit is the canonical per-habit record. CurrentStreak and BestStreak are
// derived from CompletedDates and must only be written by the habits service
// after a recompute; BestStreak never decreases.
type Habit struct {
	ID                uuid.UUID  `json:"id"`
	UserID            uuid.UUID  `json:"uid"`
	Name              string     `json:"name"`
	CompletedDates    []string   `json:"completedDates"`
	CurrentStreak     int        `json:"currentStreak"`
	BestStreak        int        `json:"bestStreak"`
	LastIncrementTime *time.Time `json:"lastIncrementTime"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// UserStats is the denormalized per-user summary read by the leaderboard.
// It is a full-recompute projection of the owner's habit set, never patched
// incrementally.
type UserStats struct {
	UserID              uuid.UUID `json:"userId"`
	DisplayName         string    `json:"displayName"`
	Email               string    `json:"email"`
	LongestStreak       int       `json:"longestStreak"`
	TotalHabits         int       `json:"totalHabits"`
	TotalCompletedToday int       `json:"totalCompletedToday"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// LeaderboardEntry is derived on demand from UserStats rows, never stored.
type LeaderboardEntry struct {
	UserID              uuid.UUID `json:"userId"`
	DisplayName         string    `json:"displayName"`
	LongestStreak       int       `json:"longestStreak"`
	TotalHabits         int       `json:"totalHabits"`
	TotalCompletedToday int       `json:"totalCompletedToday"`
	Level               string    `json:"level"`
}

// LegacyCheck is a row of the pre-migration habit_checks table. Only the
// startup migrator reads these.
type LegacyCheck struct {
	ID        int
	HabitID   uuid.UUID
	CheckDate time.Time
}
