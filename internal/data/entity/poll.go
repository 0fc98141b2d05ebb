package entity

import (
	"time"

	"github.com/google/uuid"
)

type PollStatus string

const (
	PollStatusRequested PollStatus = "requested"
	PollStatusActive    PollStatus = "active"
)

func (s PollStatus) Valid() bool {
	return s == PollStatusRequested || s == PollStatusActive
}

type Poll struct {
	BaseSimple
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	Options     []string   `db:"options"`
	Status      PollStatus `db:"status"`
	EndsAt      *time.Time `db:"ends_at"`
	CreatedBy   uuid.UUID  `db:"created_by"`
}

// Ended reports whether voting has closed
func (p *Poll) Ended(now time.Time) bool {
	return p.EndsAt != nil && now.After(*p.EndsAt)
}

type PollVote struct {
	BaseSimple
	PollID      uuid.UUID `db:"poll_id"`
	UserID      uuid.UUID `db:"user_id"`
	OptionIndex int       `db:"option_index"`
}
