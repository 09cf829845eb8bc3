package repos

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/scores"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/logger"
)

// CachedScoreRepo persists the derived score snapshot, one row per
// (department, year). The only write path is Upsert, which replaces every
// section column atomically; partial-column updates are deliberately not
// offered so no reader can see a half-written mix of two computes.
type CachedScoreRepo interface {
	Get(ctx context.Context, tx *gorm.DB, deptID int, academicYear string) (*scores.CachedScore, bool, error)
	Upsert(ctx context.Context, tx *gorm.DB, row *scores.CachedScore) error
	Delete(ctx context.Context, tx *gorm.DB, deptID int, academicYear string) error
}

type cachedScoreRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCachedScoreRepo(db *gorm.DB, baseLog *logger.Logger) CachedScoreRepo {
	return &cachedScoreRepo{db: db, log: baseLog.With("repo", "CachedScoreRepo")}
}

func (r *cachedScoreRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *cachedScoreRepo) Get(ctx context.Context, tx *gorm.DB, deptID int, academicYear string) (*scores.CachedScore, bool, error) {
	var rows []scores.CachedScore
	err := r.conn(tx).WithContext(ctx).
		Where("dept_id = ? AND academic_year = ?", deptID, academicYear).
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

func (r *cachedScoreRepo) Upsert(ctx context.Context, tx *gorm.DB, row *scores.CachedScore) error {
	return r.conn(tx).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "dept_id"}, {Name: "academic_year"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"section1", "section2", "section3", "section4", "section5",
				"total", "computed_at",
			}),
		}).
		Create(row).Error
}

func (r *cachedScoreRepo) Delete(ctx context.Context, tx *gorm.DB, deptID int, academicYear string) error {
	return r.conn(tx).WithContext(ctx).
		Where("dept_id = ? AND academic_year = ?", deptID, academicYear).
		Delete(&scores.CachedScore{}).Error
}
