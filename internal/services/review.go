package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/repos"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/review"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/apperr"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/logger"
)

// ReviewInput is the mutable portion of a review an expert may submit in
// one save.
type ReviewInput struct {
	SectionScores      [5]*float64                      `json:"section_scores"`
	ItemOverrides      map[string]review.ItemOverride   `json:"item_overrides"`
	NarrativeOverrides map[string]string                `json:"narrative_overrides"`
	Notes              string                           `json:"notes"`
	Status             review.Status                    `json:"status"`
}

// ReviewService owns the expert overlay. Overrides never touch source
// department data; clearing a review recovers the pure auto score.
type ReviewService interface {
	GetReview(ctx context.Context, expertEmail string, deptID int, academicYear string) (*review.ExpertReview, error)
	SaveReview(ctx context.Context, expertEmail string, deptID int, academicYear string, in ReviewInput) (*review.ExpertReview, error)
	DeleteReview(ctx context.Context, expertEmail string, deptID int, academicYear string) error
	Lock(ctx context.Context, expertEmail string, deptID int, academicYear string) (*review.ExpertReview, error)
	Unlock(ctx context.Context, expertEmail string, deptID int, academicYear string) (*review.ExpertReview, error)
	ListReviews(ctx context.Context, deptID int, academicYear string) ([]review.ExpertReview, error)

	// ItemOverrideFor resolves one item's override, preferring the stable
	// key and falling back to the legacy label key on read.
	ItemOverrideFor(r *review.ExpertReview, section, item int, label string) (*review.ItemOverride, error)
}

type reviewService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo repos.ExpertReviewRepo
	now  func() time.Time
}

func NewReviewService(db *gorm.DB, log *logger.Logger, repo repos.ExpertReviewRepo) ReviewService {
	return &reviewService{
		db:   db,
		log:  log.With("service", "ReviewService"),
		repo: repo,
		now:  time.Now,
	}
}

func (s *reviewService) GetReview(ctx context.Context, expertEmail string, deptID int, academicYear string) (*review.ExpertReview, error) {
	if err := validateReviewKey(expertEmail, deptID, academicYear); err != nil {
		return nil, err
	}
	row, found, err := s.repo.Get(ctx, nil, expertEmail, deptID, academicYear)
	if err != nil {
		return nil, fmt.Errorf("read review: %w", err)
	}
	if !found {
		return nil, apperr.ErrNotFound
	}
	return row, nil
}

func (s *reviewService) SaveReview(ctx context.Context, expertEmail string, deptID int, academicYear string, in ReviewInput) (*review.ExpertReview, error) {
	if err := validateReviewKey(expertEmail, deptID, academicYear); err != nil {
		return nil, err
	}

	existing, found, err := s.repo.Get(ctx, nil, expertEmail, deptID, academicYear)
	if err != nil {
		return nil, fmt.Errorf("read review: %w", err)
	}
	if found && existing.IsLocked {
		return nil, apperr.ErrReviewLocked
	}

	now := s.now()
	row := &review.ExpertReview{
		ExpertEmail:  expertEmail,
		DeptID:       deptID,
		AcademicYear: academicYear,
		Notes:        in.Notes,
		Status:       in.Status,
	}
	if found {
		row.ID = existing.ID
		row.StartedAt = existing.StartedAt
		row.CreatedAt = existing.CreatedAt
	}
	if row.Status == "" {
		row.Status = review.StatusInProgress
	}
	if row.StartedAt == nil {
		row.StartedAt = &now
	}
	if row.Status == review.StatusCompleted {
		row.CompletedAt = &now
	}

	row.Section1Score = in.SectionScores[0]
	row.Section2Score = in.SectionScores[1]
	row.Section3Score = in.SectionScores[2]
	row.Section4Score = in.SectionScores[3]
	row.Section5Score = in.SectionScores[4]

	if row.ItemOverrides, err = marshalJSONColumn(in.ItemOverrides); err != nil {
		return nil, err
	}
	if row.NarrativeOverrides, err = marshalJSONColumn(in.NarrativeOverrides); err != nil {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, nil, row); err != nil {
		return nil, fmt.Errorf("save review: %w", err)
	}
	s.log.Info("Saved expert review",
		"dept_id", deptID,
		"academic_year", academicYear,
		"status", row.Status,
	)
	return row, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, expertEmail string, deptID int, academicYear string) error {
	if err := validateReviewKey(expertEmail, deptID, academicYear); err != nil {
		return err
	}
	existing, found, err := s.repo.Get(ctx, nil, expertEmail, deptID, academicYear)
	if err != nil {
		return fmt.Errorf("read review: %w", err)
	}
	if !found {
		return nil
	}
	if existing.IsLocked {
		return apperr.ErrReviewLocked
	}
	if err := s.repo.Delete(ctx, nil, expertEmail, deptID, academicYear); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	s.log.Info("Cleared expert review", "dept_id", deptID, "academic_year", academicYear)
	return nil
}

// Lock freezes the review. Locking requires a prior save; an unreviewed
// record cannot be locked.
func (s *reviewService) Lock(ctx context.Context, expertEmail string, deptID int, academicYear string) (*review.ExpertReview, error) {
	if err := validateReviewKey(expertEmail, deptID, academicYear); err != nil {
		return nil, err
	}
	existing, found, err := s.repo.Get(ctx, nil, expertEmail, deptID, academicYear)
	if err != nil {
		return nil, fmt.Errorf("read review: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: cannot lock a review that was never saved", apperr.ErrPrecondition)
	}
	if existing.IsLocked {
		return existing, nil
	}
	now := s.now()
	existing.IsLocked = true
	existing.LockedAt = &now
	if err := s.repo.Upsert(ctx, nil, existing); err != nil {
		return nil, fmt.Errorf("lock review: %w", err)
	}
	s.log.Info("Locked expert review", "dept_id", deptID, "academic_year", academicYear)
	return existing, nil
}

func (s *reviewService) Unlock(ctx context.Context, expertEmail string, deptID int, academicYear string) (*review.ExpertReview, error) {
	if err := validateReviewKey(expertEmail, deptID, academicYear); err != nil {
		return nil, err
	}
	existing, found, err := s.repo.Get(ctx, nil, expertEmail, deptID, academicYear)
	if err != nil {
		return nil, fmt.Errorf("read review: %w", err)
	}
	if !found {
		return nil, apperr.ErrNotFound
	}
	if !existing.IsLocked {
		return existing, nil
	}
	existing.IsLocked = false
	existing.LockedAt = nil
	if err := s.repo.Upsert(ctx, nil, existing); err != nil {
		return nil, fmt.Errorf("unlock review: %w", err)
	}
	s.log.Info("Unlocked expert review", "dept_id", deptID, "academic_year", academicYear)
	return existing, nil
}

func (s *reviewService) ListReviews(ctx context.Context, deptID int, academicYear string) ([]review.ExpertReview, error) {
	return s.repo.ListByDeptYear(ctx, nil, deptID, academicYear)
}

func (s *reviewService) ItemOverrideFor(r *review.ExpertReview, section, item int, label string) (*review.ItemOverride, error) {
	if r == nil || len(r.ItemOverrides) == 0 {
		return nil, nil
	}
	var overrides map[string]review.ItemOverride
	if err := json.Unmarshal(r.ItemOverrides, &overrides); err != nil {
		return nil, fmt.Errorf("%w: item overrides: %v", apperr.ErrMalformedData, err)
	}
	if o, ok := overrides[review.ItemKey(section, item)]; ok {
		return &o, nil
	}
	// Legacy rows keyed overrides by the display label.
	if o, ok := overrides[label]; ok && label != "" {
		return &o, nil
	}
	return nil, nil
}

func validateReviewKey(expertEmail string, deptID int, academicYear string) error {
	if strings.TrimSpace(expertEmail) == "" {
		return fmt.Errorf("%w: expert email required", apperr.ErrInvalidArgument)
	}
	if deptID <= 0 {
		return fmt.Errorf("%w: department id required", apperr.ErrInvalidArgument)
	}
	if strings.TrimSpace(academicYear) == "" {
		return fmt.Errorf("%w: academic year required", apperr.ErrInvalidArgument)
	}
	return nil
}

func marshalJSONColumn(v interface{}) (datatypes.JSON, error) {
	if v == nil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode review column: %w", err)
	}
	return datatypes.JSON(raw), nil
}
