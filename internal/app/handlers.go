package app

import (
	"gorm.io/gorm"

	httpH "github.com/Swapnil27012000/uomdcs-sub000/internal/http/handlers"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/observability"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/logger"
)

type Handlers struct {
	Score    *httpH.ScoreHandler
	Review   *httpH.ReviewHandler
	Document *httpH.DocumentHandler
	Health   *httpH.HealthHandler
}

func wireHandlers(db *gorm.DB, log *logger.Logger, r Repos, s Services, m *observability.Metrics) Handlers {
	return Handlers{
		Score:    httpH.NewScoreHandler(log, r.Department, s.ScoreCache, s.Review, m),
		Review:   httpH.NewReviewHandler(log, r.Department, s.Review, m),
		Document: httpH.NewDocumentHandler(log, r.Department, s.Document),
		Health:   httpH.NewHealthHandler(db),
	}
}
