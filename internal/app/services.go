package app

import (
	"fmt"

	"gorm.io/gorm"

	rdb "github.com/Swapnil27012000/uomdcs-sub000/internal/clients/redis"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/aggregates"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/normalize"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/observability"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/logger"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/scoring"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/services"
)

type Services struct {
	ScoreCache services.ScoreCacheService
	Review     services.ReviewService
	Document   services.DocumentService

	HotCache *rdb.ScoreHotCache
}

func wireServices(db *gorm.DB, log *logger.Logger, metrics *observability.Metrics, cfg Config, r Repos) (Services, error) {
	marks, err := scoring.LoadMarksTable(cfg.MarksTablePath)
	if err != nil {
		return Services{}, fmt.Errorf("load marks table: %w", err)
	}

	norm := normalize.New(log)
	builder := aggregates.NewBuilder(log, metrics, norm,
		r.FacultyOutput, r.NEP, r.Governance, r.PhDStudent, r.Support,
		r.Conference, r.Collaboration, r.Intake, r.Placement,
	)

	hot, err := rdb.NewScoreHotCache(log)
	if err != nil {
		// The table row is the source of truth; running without the hot
		// cache is a degradation, not a startup failure.
		log.Warn("Redis hot cache unavailable, continuing without it", "error", err)
		hot = nil
	}

	return Services{
		ScoreCache: services.NewScoreCacheService(db, log, builder, marks, r.CachedScore, hot),
		Review:     services.NewReviewService(db, log, r.ExpertReview),
		Document:   services.NewDocumentService(db, log, r.Document),
		HotCache:   hot,
	}, nil
}
