package repos

import (
	"context"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/assessment"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/logger"
)

// DepartmentRepo resolves the department identity once at the boundary.
// Every downstream operation uses the canonical numeric ID only.
type DepartmentRepo interface {
	// ResolveID tries canonical numeric lookup first, then the legacy code.
	// Returns 0 when neither matches.
	ResolveID(ctx context.Context, tx *gorm.DB, rawIdentifier string) (int, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int) (*assessment.Department, bool, error)
}

type departmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDepartmentRepo(db *gorm.DB, baseLog *logger.Logger) DepartmentRepo {
	return &departmentRepo{db: db, log: baseLog.With("repo", "DepartmentRepo")}
}

func (r *departmentRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *departmentRepo) ResolveID(ctx context.Context, tx *gorm.DB, rawIdentifier string) (int, error) {
	raw := strings.TrimSpace(rawIdentifier)
	if raw == "" {
		return 0, nil
	}
	if id, err := strconv.Atoi(raw); err == nil {
		_, found, err := r.GetByID(ctx, tx, id)
		if err != nil {
			return 0, err
		}
		if found {
			return id, nil
		}
	}
	var rows []assessment.Department
	err := r.conn(tx).WithContext(ctx).
		Where("legacy_code = ?", raw).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		r.log.Debug("department identifier did not resolve", "identifier", raw)
		return 0, nil
	}
	r.log.Info("department resolved via legacy code", "dept_id", rows[0].ID)
	return rows[0].ID, nil
}

func (r *departmentRepo) GetByID(ctx context.Context, tx *gorm.DB, id int) (*assessment.Department, bool, error) {
	var rows []assessment.Department
	err := r.conn(tx).WithContext(ctx).
		Where("id = ?", id).
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
