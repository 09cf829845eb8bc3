package repos

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/review"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/logger"
)

// ExpertReviewRepo persists one expert's overlay per (expert, department,
// year). Lock-guard logic lives in the review service; this layer only moves
// rows.
type ExpertReviewRepo interface {
	Get(ctx context.Context, tx *gorm.DB, expertEmail string, deptID int, academicYear string) (*review.ExpertReview, bool, error)
	Upsert(ctx context.Context, tx *gorm.DB, row *review.ExpertReview) error
	Delete(ctx context.Context, tx *gorm.DB, expertEmail string, deptID int, academicYear string) error
	ListByDeptYear(ctx context.Context, tx *gorm.DB, deptID int, academicYear string) ([]review.ExpertReview, error)
}

type expertReviewRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewExpertReviewRepo(db *gorm.DB, baseLog *logger.Logger) ExpertReviewRepo {
	return &expertReviewRepo{db: db, log: baseLog.With("repo", "ExpertReviewRepo")}
}

func (r *expertReviewRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *expertReviewRepo) Get(ctx context.Context, tx *gorm.DB, expertEmail string, deptID int, academicYear string) (*review.ExpertReview, bool, error) {
	var rows []review.ExpertReview
	err := r.conn(tx).WithContext(ctx).
		Where("expert_email = ? AND dept_id = ? AND academic_year = ?", expertEmail, deptID, academicYear).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, false, err
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	return &rows[0], true, nil
}

func (r *expertReviewRepo) Upsert(ctx context.Context, tx *gorm.DB, row *review.ExpertReview) error {
	return r.conn(tx).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "expert_email"}, {Name: "dept_id"}, {Name: "academic_year"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"section1_score", "section2_score", "section3_score", "section4_score", "section5_score",
				"item_overrides", "narrative_overrides", "notes",
				"is_locked", "status",
				"started_at", "completed_at", "locked_at", "updated_at",
			}),
		}).
		Create(row).Error
}

func (r *expertReviewRepo) Delete(ctx context.Context, tx *gorm.DB, expertEmail string, deptID int, academicYear string) error {
	return r.conn(tx).WithContext(ctx).
		Where("expert_email = ? AND dept_id = ? AND academic_year = ?", expertEmail, deptID, academicYear).
		Delete(&review.ExpertReview{}).Error
}

func (r *expertReviewRepo) ListByDeptYear(ctx context.Context, tx *gorm.DB, deptID int, academicYear string) ([]review.ExpertReview, error) {
	var rows []review.ExpertReview
	err := r.conn(tx).WithContext(ctx).
		Where("dept_id = ? AND academic_year = ?", deptID, academicYear).
		Order("expert_email").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
