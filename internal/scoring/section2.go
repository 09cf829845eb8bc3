package scoring

import (
	"fmt"

	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/aggregates"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/assessment"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/scores"
)

// ScoreSection2 scores NEP Initiatives.
func ScoreSection2(d aggregates.NEPData, mt *MarksTable) scores.SectionScore {
	var rec assessment.NEPRecord
	if d.Record != nil {
		rec = *d.Record
	}

	initiatives := counterOrList(rec.InitiativeCount, len(d.Initiatives))
	pedagogy := counterOrList(rec.PedagogyCount, len(d.Pedagogy))
	reforms := counterOrList(rec.AssessmentCount, len(d.AssessmentReforms))
	moocs := count(rec.MoocCount)

	econtent := rec.EContentCredits
	if econtent < 0 {
		econtent = 0
	}

	items := []scores.ScoredItem{
		scored(1, "NEP initiatives implemented", intValue(initiatives), initiatives*2, 30),
		scored(2, "Innovative pedagogy practices", intValue(pedagogy), pedagogy*2, 20),
		scored(3, "Assessment reforms", intValue(reforms), reforms*2, 20),
		scored(4, "MOOC courses offered", intValue(moocs), moocs*2, 10),
		scored(5, "E-content credits developed", fmt.Sprintf("%.2f", econtent), econtent, 15),
		scored(6, "Result declaration turnaround (days)", resultDaysValue(rec.ResultDays), resultDaysMarks(rec.ResultDays), 5),
	}

	return sectionTotal(2, "NEP Initiatives", mt.SectionMax[1], items)
}

// counterOrList prefers the explicit counter column; a zero or negative
// counter falls back to the decoded list length.
func counterOrList(counter, listLen int) float64 {
	if counter > 0 {
		return float64(counter)
	}
	return count(listLen)
}

// resultDaysMarks brackets the turnaround. Zero means the question was
// never answered, not a same-day declaration, so it scores nothing.
func resultDaysMarks(days int) float64 {
	switch {
	case days <= 0:
		return 0
	case days <= 30:
		return 5
	case days <= 45:
		return 2.5
	default:
		return 0
	}
}

func resultDaysValue(days int) string {
	if days <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d", days)
}
