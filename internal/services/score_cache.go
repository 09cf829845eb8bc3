package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	rdb "github.com/Swapnil27012000/uomdcs-sub000/internal/clients/redis"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/aggregates"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/repos"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/yearkey"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/scores"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/logger"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/scoring"
)

// ScoreCacheService owns the derived score rows. The cache is disposable:
// any row can be re-derived from source data at any time, so delete plus
// recompute is always safe.
type ScoreCacheService interface {
	// Get returns the cached summary or nil; it never computes.
	Get(ctx context.Context, deptID int, academicYear string) (*scores.ScoreSummary, error)
	// GetOrCompute returns the cached summary on a hit, otherwise runs the
	// full fetch-and-score pipeline and persists the result. The computed
	// variant carries the per-item breakdown; the cached variant is
	// totals-only.
	GetOrCompute(ctx context.Context, deptID int, academicYear string) (*scores.ScoreSummary, error)
	// Compute always runs the pipeline and upserts; used for live preview
	// where a full breakdown is required even on a cache hit.
	Compute(ctx context.Context, deptID int, academicYear string) (*scores.ScoreSummary, error)
	Invalidate(ctx context.Context, deptID int, academicYear string) error
	InvalidateAndRecompute(ctx context.Context, deptID int, academicYear string) (*scores.ScoreSummary, error)
}

type scoreCacheService struct {
	db      *gorm.DB
	log     *logger.Logger
	builder *aggregates.Builder
	marks   *scoring.MarksTable
	repo    repos.CachedScoreRepo
	hot     *rdb.ScoreHotCache
	now     func() time.Time
}

func NewScoreCacheService(
	db *gorm.DB,
	log *logger.Logger,
	builder *aggregates.Builder,
	marks *scoring.MarksTable,
	repo repos.CachedScoreRepo,
	hot *rdb.ScoreHotCache,
) ScoreCacheService {
	return &scoreCacheService{
		db:      db,
		log:     log.With("service", "ScoreCacheService"),
		builder: builder,
		marks:   marks,
		repo:    repo,
		hot:     hot,
		now:     time.Now,
	}
}

func (s *scoreCacheService) Get(ctx context.Context, deptID int, academicYear string) (*scores.ScoreSummary, error) {
	if hit := s.hot.Get(ctx, deptID, academicYear); hit != nil {
		return hit, nil
	}
	row, found, err := s.repo.Get(ctx, nil, deptID, academicYear)
	if err != nil {
		return nil, fmt.Errorf("read score cache: %w", err)
	}
	if !found {
		return nil, nil
	}
	summary := row.Summary(s.marks.TotalMax())
	return &summary, nil
}

func (s *scoreCacheService) GetOrCompute(ctx context.Context, deptID int, academicYear string) (*scores.ScoreSummary, error) {
	cached, err := s.Get(ctx, deptID, academicYear)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		return cached, nil
	}
	return s.Compute(ctx, deptID, academicYear)
}

func (s *scoreCacheService) Compute(ctx context.Context, deptID int, academicYear string) (*scores.ScoreSummary, error) {
	year, err := yearkey.Parse(academicYear)
	if err != nil {
		return nil, err
	}

	ds := s.builder.BuildAll(ctx, deptID, year)
	summary := scoring.Score(*ds, s.marks, s.now())

	// Full-row upsert: a concurrent reader sees either the old compute or
	// the new one, never a mix of section columns.
	row := &scores.CachedScore{
		DeptID:       deptID,
		AcademicYear: academicYear,
		Section1:     summary.SectionTotal[0],
		Section2:     summary.SectionTotal[1],
		Section3:     summary.SectionTotal[2],
		Section4:     summary.SectionTotal[3],
		Section5:     summary.SectionTotal[4],
		Total:        summary.TotalScore,
		ComputedAt:   summary.ComputedAt,
	}
	if err := s.repo.Upsert(ctx, nil, row); err != nil {
		return nil, fmt.Errorf("persist score cache: %w", err)
	}
	s.hot.Set(ctx, summary)

	s.log.Info("Recomputed department score",
		"dept_id", deptID,
		"academic_year", academicYear,
		"total", summary.TotalScore,
	)
	return &summary, nil
}

func (s *scoreCacheService) Invalidate(ctx context.Context, deptID int, academicYear string) error {
	s.hot.Delete(ctx, deptID, academicYear)
	if err := s.repo.Delete(ctx, nil, deptID, academicYear); err != nil {
		return fmt.Errorf("invalidate score cache: %w", err)
	}
	return nil
}

func (s *scoreCacheService) InvalidateAndRecompute(ctx context.Context, deptID int, academicYear string) (*scores.ScoreSummary, error) {
	if err := s.Invalidate(ctx, deptID, academicYear); err != nil {
		return nil, err
	}
	return s.Compute(ctx, deptID, academicYear)
}
