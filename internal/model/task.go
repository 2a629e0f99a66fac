package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TitleMaxLength mirrors the varchar(200) column.
const TitleMaxLength = 200

type Task struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID     *uuid.UUID `gorm:"type:uuid;index"`
	Title       string     `gorm:"size:200;not null"`
	Description string     `gorm:"type:text"`
	Completed   bool       `gorm:"not null"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	CompletedAt *time.Time
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// IsOwnedBy reports whether userID is the task owner. Unassigned tasks belong to nobody.
func (t *Task) IsOwnedBy(userID uuid.UUID) bool {
	return t.OwnerID != nil && *t.OwnerID == userID
}

// MarkCompleted stamps CompletedAt when completed is true. It never clears the
// timestamp when a task goes back to incomplete.
func (t *Task) MarkCompleted(completed bool, now time.Time) {
	t.Completed = completed
	if completed {
		t.CompletedAt = &now
	}
}
