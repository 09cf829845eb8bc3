package review

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Status is the review lifecycle state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// ExpertReview is one expert's overlay for one department-year: per-section
// expert scores, per-item overrides, free-text notes and the lock flag.
// Expert overrides never touch the department's source data.
type ExpertReview struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ExpertEmail  string    `gorm:"column:expert_email;uniqueIndex:idx_review_expert_dept_year" json:"expert_email"`
	DeptID       int       `gorm:"column:dept_id;uniqueIndex:idx_review_expert_dept_year" json:"dept_id"`
	AcademicYear string    `gorm:"column:academic_year;uniqueIndex:idx_review_expert_dept_year" json:"academic_year"`

	Section1Score *float64 `gorm:"column:section1_score" json:"section1_score,omitempty"`
	Section2Score *float64 `gorm:"column:section2_score" json:"section2_score,omitempty"`
	Section3Score *float64 `gorm:"column:section3_score" json:"section3_score,omitempty"`
	Section4Score *float64 `gorm:"column:section4_score" json:"section4_score,omitempty"`
	Section5Score *float64 `gorm:"column:section5_score" json:"section5_score,omitempty"`

	// ItemOverrides serializes map[itemKey]ItemOverride. Keys are the stable
	// "s<section>.i<item>" form; human-readable labels survive only as a
	// legacy read-path fallback.
	ItemOverrides      datatypes.JSON `gorm:"column:item_overrides" json:"item_overrides"`
	NarrativeOverrides datatypes.JSON `gorm:"column:narrative_overrides" json:"narrative_overrides"`
	Notes              string         `gorm:"column:notes" json:"notes"`

	IsLocked bool   `gorm:"column:is_locked" json:"is_locked"`
	Status   Status `gorm:"column:status" json:"status"`

	StartedAt   *time.Time `gorm:"column:started_at" json:"started_at,omitempty"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`
	LockedAt    *time.Time `gorm:"column:locked_at" json:"locked_at,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (ExpertReview) TableName() string { return "expert_reviews" }

// ItemOverride is one expert-entered score/remark for a single item.
type ItemOverride struct {
	Score   *float64 `json:"score,omitempty"`
	Remarks string   `json:"remarks,omitempty"`
}

// ItemKey builds the stable override key for a section item.
func ItemKey(section, item int) string {
	return fmt.Sprintf("s%d.i%d", section, item)
}
