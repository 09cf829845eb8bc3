package scoring

import (
	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/normalize"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/scores"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/utils"
)

// bracketMarks resolves an ascending bracket table: the last bracket whose
// Min the amount reaches wins. Zero or negative amounts never score; absent
// data must not land in the bottom bracket.
func bracketMarks(amount float64, brackets []AmountBracket) float64 {
	if amount <= 0 {
		return 0
	}
	var marks float64
	for _, b := range brackets {
		if amount >= b.Min {
			marks = b.Marks
		}
	}
	return marks
}

// narrativeMarks applies the length-tier heuristic to a free-text answer.
func narrativeMarks(text string, max float64, tiers []NarrativeTier) float64 {
	t := normalize.Narrative(text)
	if t == "" {
		return 0
	}
	var fraction float64
	for _, tier := range tiers {
		if len(t) >= tier.MinLen {
			fraction = tier.Fraction
		}
	}
	return utils.Clamp(max*fraction, max)
}

// percentBand is one tier of a percentage bracket: marks for pct >= Min.
type percentBand struct {
	Min   float64
	Marks float64
}

func bandMarks(pct float64, bands []percentBand) float64 {
	var marks float64
	for _, b := range bands {
		if pct >= b.Min {
			marks = b.Marks
		}
	}
	return marks
}

// scored builds one capped, non-negative ScoredItem.
func scored(number int, label, deptValue string, raw, max float64) scores.ScoredItem {
	return scores.ScoredItem{
		ItemNumber: number,
		Label:      label,
		DeptValue:  deptValue,
		AutoScore:  utils.Clamp(raw, max),
		MaxScore:   max,
	}
}

// sectionTotal caps the summed item scores at the section max.
func sectionTotal(number int, name string, max float64, items []scores.ScoredItem) scores.SectionScore {
	var sum float64
	for _, it := range items {
		sum += it.AutoScore
	}
	return scores.SectionScore{
		SectionNumber: number,
		SectionName:   name,
		Total:         utils.Clamp(sum, max),
		Max:           max,
		Items:         items,
	}
}

// count floors a stored counter at zero before it multiplies into a score.
func count(n int) float64 {
	if n < 0 {
		return 0
	}
	return float64(n)
}
