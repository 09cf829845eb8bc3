package scoring

import (
	"time"

	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/aggregates"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/scores"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/utils"
)

// Score runs all five section scorers over one department-year dataset and
// consolidates the result. This is the only compute path: the cache writer
// and the live preview both call it.
func Score(ds aggregates.DepartmentDataset, mt *MarksTable, now time.Time) scores.ScoreSummary {
	sections := []scores.SectionScore{
		ScoreSection1(ds.FacultyOutput, mt),
		ScoreSection2(ds.NEP, mt),
		ScoreSection3(ds.Governance, mt),
		ScoreSection4(ds.StudentSupport, mt),
		ScoreSection5(ds.ConfCollab, mt),
	}

	var totals [SectionCount]float64
	var total float64
	for i, s := range sections {
		totals[i] = s.Total
		total += s.Total
	}

	return scores.ScoreSummary{
		DeptID:       ds.DeptID,
		AcademicYear: ds.AcademicYear,
		SectionTotal: totals,
		TotalScore:   utils.Clamp(total, mt.TotalMax()),
		MaxScore:     mt.TotalMax(),
		Sections:     sections,
		ComputedAt:   now.UTC(),
	}
}
