package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/documents"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/logger"
)

// DocumentRepo fetches upload metadata. It returns the flat per-department
// list; grouping, serial-number filtering and keyword matching happen in the
// document service so the matching policy stays in one auditable place.
type DocumentRepo interface {
	ListByDeptYear(ctx context.Context, tx *gorm.DB, deptID int, academicYear string) ([]documents.SupportingDocument, error)
}

type documentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDocumentRepo(db *gorm.DB, baseLog *logger.Logger) DocumentRepo {
	return &documentRepo{db: db, log: baseLog.With("repo", "DocumentRepo")}
}

func (r *documentRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *documentRepo) ListByDeptYear(ctx context.Context, tx *gorm.DB, deptID int, academicYear string) ([]documents.SupportingDocument, error) {
	var rows []documents.SupportingDocument
	err := r.conn(tx).WithContext(ctx).
		Where("dept_id = ? AND academic_year = ?", deptID, academicYear).
		Order("section_name, serial_number, id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
