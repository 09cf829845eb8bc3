package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/yearkey"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/assessment"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/logger"
)

// IntakeAggregate is the SUM across all program rows of student_intake for
// one department-year; it feeds scoring while the per-program breakdown
// feeds display and document matching.
type IntakeAggregate struct {
	Applications   int `gorm:"column:applications"`
	Sanctioned     int `gorm:"column:sanctioned"`
	Enrolled       int `gorm:"column:enrolled"`
	FemaleEnrolled int `gorm:"column:female_enrolled"`
	ESCSEnrolled   int `gorm:"column:escs_enrolled"`
	OutsideState   int `gorm:"column:outside_state"`
}

// PlacementAggregate mirrors IntakeAggregate for student_placement.
type PlacementAggregate struct {
	Graduated       int `gorm:"column:graduated"`
	Placed          int `gorm:"column:placed"`
	HigherStudies   int `gorm:"column:higher_studies"`
	CompetitiveExam int `gorm:"column:competitive_exam"`
	Internships     int `gorm:"column:internships"`
}

// ProgramIntakeRow is one program's intake joined to the program master for
// the canonical code.
type ProgramIntakeRow struct {
	assessment.StudentIntakeRecord
	ProgramCode string `gorm:"column:program_code"`
	ProgramName string `gorm:"column:program_name"`
}

// ProgramPlacementRow is one program's placement joined to the program master.
type ProgramPlacementRow struct {
	assessment.StudentPlacementRecord
	ProgramCode string `gorm:"column:program_code"`
	ProgramName string `gorm:"column:program_name"`
}

type StudentIntakeRepo interface {
	Encoding() yearkey.Encoding
	SumExact(ctx context.Context, tx *gorm.DB, deptID int, cand yearkey.Candidate) (*IntakeAggregate, bool, error)
	SumLatest(ctx context.Context, tx *gorm.DB, deptID int) (*IntakeAggregate, bool, error)
	ProgramBreakdown(ctx context.Context, tx *gorm.DB, deptID int, cand yearkey.Candidate) ([]ProgramIntakeRow, error)
}

type StudentPlacementRepo interface {
	Encoding() yearkey.Encoding
	SumExact(ctx context.Context, tx *gorm.DB, deptID int, cand yearkey.Candidate) (*PlacementAggregate, bool, error)
	SumLatest(ctx context.Context, tx *gorm.DB, deptID int) (*PlacementAggregate, bool, error)
	ProgramBreakdown(ctx context.Context, tx *gorm.DB, deptID int, cand yearkey.Candidate) ([]ProgramPlacementRow, error)
}

type studentIntakeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStudentIntakeRepo(db *gorm.DB, baseLog *logger.Logger) StudentIntakeRepo {
	return &studentIntakeRepo{db: db, log: baseLog.With("repo", "StudentIntakeRepo")}
}

func (r *studentIntakeRepo) Encoding() yearkey.Encoding { return yearkey.StartingYearInt }

func (r *studentIntakeRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *studentIntakeRepo) SumExact(ctx context.Context, tx *gorm.DB, deptID int, cand yearkey.Candidate) (*IntakeAggregate, bool, error) {
	var count int64
	q := r.conn(tx).WithContext(ctx).
		Model(&assessment.StudentIntakeRecord{}).
		Where("dept_id = ? AND a_year = ?", deptID, cand.Value())
	if err := q.Count(&count).Error; err != nil {
		return nil, false, err
	}
	if count == 0 {
		return nil, false, nil
	}
	var agg IntakeAggregate
	err := q.Select(
		"COALESCE(SUM(applications),0) AS applications, " +
			"COALESCE(SUM(sanctioned),0) AS sanctioned, " +
			"COALESCE(SUM(enrolled),0) AS enrolled, " +
			"COALESCE(SUM(female_enrolled),0) AS female_enrolled, " +
			"COALESCE(SUM(escs_enrolled),0) AS escs_enrolled, " +
			"COALESCE(SUM(outside_state),0) AS outside_state").
		Scan(&agg).Error
	if err != nil {
		return nil, false, err
	}
	return &agg, true, nil
}

func (r *studentIntakeRepo) SumLatest(ctx context.Context, tx *gorm.DB, deptID int) (*IntakeAggregate, bool, error) {
	year, ok, err := latestYear(ctx, r.conn(tx), &assessment.StudentIntakeRecord{}, deptID)
	if err != nil || !ok {
		return nil, false, err
	}
	return r.SumExact(ctx, tx, deptID, yearkey.Candidate{Encoding: yearkey.StartingYearInt, IntVal: year, Reason: "latest_fallback"})
}

func (r *studentIntakeRepo) ProgramBreakdown(ctx context.Context, tx *gorm.DB, deptID int, cand yearkey.Candidate) ([]ProgramIntakeRow, error) {
	var rows []ProgramIntakeRow
	err := r.conn(tx).WithContext(ctx).
		Model(&assessment.StudentIntakeRecord{}).
		Select("student_intake.*, programs.code AS program_code, programs.name AS program_name").
		Joins("LEFT JOIN programs ON programs.id = student_intake.program_id").
		Where("student_intake.dept_id = ? AND student_intake.a_year = ?", deptID, cand.Value()).
		Order("programs.code").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

type studentPlacementRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStudentPlacementRepo(db *gorm.DB, baseLog *logger.Logger) StudentPlacementRepo {
	return &studentPlacementRepo{db: db, log: baseLog.With("repo", "StudentPlacementRepo")}
}

func (r *studentPlacementRepo) Encoding() yearkey.Encoding { return yearkey.StartingYearInt }

func (r *studentPlacementRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *studentPlacementRepo) SumExact(ctx context.Context, tx *gorm.DB, deptID int, cand yearkey.Candidate) (*PlacementAggregate, bool, error) {
	var count int64
	q := r.conn(tx).WithContext(ctx).
		Model(&assessment.StudentPlacementRecord{}).
		Where("dept_id = ? AND a_year = ?", deptID, cand.Value())
	if err := q.Count(&count).Error; err != nil {
		return nil, false, err
	}
	if count == 0 {
		return nil, false, nil
	}
	var agg PlacementAggregate
	err := q.Select(
		"COALESCE(SUM(graduated),0) AS graduated, " +
			"COALESCE(SUM(placed),0) AS placed, " +
			"COALESCE(SUM(higher_studies),0) AS higher_studies, " +
			"COALESCE(SUM(competitive_exam),0) AS competitive_exam, " +
			"COALESCE(SUM(internships),0) AS internships").
		Scan(&agg).Error
	if err != nil {
		return nil, false, err
	}
	return &agg, true, nil
}

func (r *studentPlacementRepo) SumLatest(ctx context.Context, tx *gorm.DB, deptID int) (*PlacementAggregate, bool, error) {
	year, ok, err := latestYear(ctx, r.conn(tx), &assessment.StudentPlacementRecord{}, deptID)
	if err != nil || !ok {
		return nil, false, err
	}
	return r.SumExact(ctx, tx, deptID, yearkey.Candidate{Encoding: yearkey.StartingYearInt, IntVal: year, Reason: "latest_fallback"})
}

func (r *studentPlacementRepo) ProgramBreakdown(ctx context.Context, tx *gorm.DB, deptID int, cand yearkey.Candidate) ([]ProgramPlacementRow, error) {
	var rows []ProgramPlacementRow
	err := r.conn(tx).WithContext(ctx).
		Model(&assessment.StudentPlacementRecord{}).
		Select("student_placement.*, programs.code AS program_code, programs.name AS program_name").
		Joins("LEFT JOIN programs ON programs.id = student_placement.program_id").
		Where("student_placement.dept_id = ? AND student_placement.a_year = ?", deptID, cand.Value()).
		Order("programs.code").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// latestYear finds the most recent a_year any row of the model carries for
// the department. ok=false when the department has no rows at all.
func latestYear(ctx context.Context, conn *gorm.DB, model interface{}, deptID int) (int, bool, error) {
	var years []int
	err := conn.WithContext(ctx).
		Model(model).
		Where("dept_id = ?", deptID).
		Order("a_year DESC").
		Limit(1).
		Pluck("a_year", &years).Error
	if err != nil {
		return 0, false, err
	}
	if len(years) == 0 {
		return 0, false, nil
	}
	return years[0], true, nil
}
