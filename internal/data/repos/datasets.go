package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/yearkey"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/assessment"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/logger"
)

// DatasetRepo is the point-query contract the record locator consumes for
// single-record-per-year tables. All legacy dataset tables share the
// dept_id/a_year column pair; what differs is the year encoding, which is
// fixed per repo at construction so arbitrary strings never reach the query
// builder.
type DatasetRepo[T any] interface {
	Encoding() yearkey.Encoding
	FindExact(ctx context.Context, tx *gorm.DB, deptID int, cand yearkey.Candidate) (*T, bool, error)
	FindLatest(ctx context.Context, tx *gorm.DB, deptID int) (*T, bool, error)
}

type datasetRepo[T any] struct {
	db  *gorm.DB
	log *logger.Logger
	enc yearkey.Encoding
}

func newDatasetRepo[T any](db *gorm.DB, baseLog *logger.Logger, repoName string, enc yearkey.Encoding) DatasetRepo[T] {
	return &datasetRepo[T]{db: db, log: baseLog.With("repo", repoName), enc: enc}
}

func (r *datasetRepo[T]) Encoding() yearkey.Encoding { return r.enc }

func (r *datasetRepo[T]) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *datasetRepo[T]) FindExact(ctx context.Context, tx *gorm.DB, deptID int, cand yearkey.Candidate) (*T, bool, error) {
	var rows []T
	err := r.conn(tx).WithContext(ctx).
		Where("dept_id = ? AND a_year = ?", deptID, cand.Value()).
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

func (r *datasetRepo[T]) FindLatest(ctx context.Context, tx *gorm.DB, deptID int) (*T, bool, error) {
	var rows []T
	err := r.conn(tx).WithContext(ctx).
		Where("dept_id = ?", deptID).
		Order("a_year DESC").
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

// Concrete dataset repos. The encoding fixed here is the only place outside
// the yearkey package that records which table stores which year form.

func NewFacultyOutputRepo(db *gorm.DB, baseLog *logger.Logger) DatasetRepo[assessment.FacultyOutputRecord] {
	return newDatasetRepo[assessment.FacultyOutputRecord](db, baseLog, "FacultyOutputRepo", yearkey.EndingYearInt)
}

func NewNEPRepo(db *gorm.DB, baseLog *logger.Logger) DatasetRepo[assessment.NEPRecord] {
	return newDatasetRepo[assessment.NEPRecord](db, baseLog, "NEPRepo", yearkey.StartingYearInt)
}

func NewGovernanceRepo(db *gorm.DB, baseLog *logger.Logger) DatasetRepo[assessment.GovernanceRecord] {
	return newDatasetRepo[assessment.GovernanceRecord](db, baseLog, "GovernanceRepo", yearkey.EndingYearInt)
}

func NewPhDStudentRepo(db *gorm.DB, baseLog *logger.Logger) DatasetRepo[assessment.PhDStudentRecord] {
	return newDatasetRepo[assessment.PhDStudentRecord](db, baseLog, "PhDStudentRepo", yearkey.EndingYearInt)
}

func NewSupportRepo(db *gorm.DB, baseLog *logger.Logger) DatasetRepo[assessment.SupportRecord] {
	return newDatasetRepo[assessment.SupportRecord](db, baseLog, "SupportRepo", yearkey.EndingYearInt)
}

func NewConferenceRepo(db *gorm.DB, baseLog *logger.Logger) DatasetRepo[assessment.ConferenceRecord] {
	return newDatasetRepo[assessment.ConferenceRecord](db, baseLog, "ConferenceRepo", yearkey.StartingYearString)
}

func NewCollaborationRepo(db *gorm.DB, baseLog *logger.Logger) DatasetRepo[assessment.CollaborationRecord] {
	return newDatasetRepo[assessment.CollaborationRecord](db, baseLog, "CollaborationRepo", yearkey.StartingYearString)
}
