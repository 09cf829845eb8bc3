package services

import (
	"encoding/json"

	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/review"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/scores"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/utils"
)

// MergeReview overlays an expert review onto an auto-computed summary: item
// overrides replace item auto scores, and an explicit per-section expert
// score replaces that section's total outright. The auto summary is not
// mutated; callers keep both variants.
func MergeReview(auto scores.ScoreSummary, r *review.ExpertReview) scores.ScoreSummary {
	if r == nil {
		return auto
	}

	merged := auto
	merged.Sections = make([]scores.SectionScore, len(auto.Sections))
	copy(merged.Sections, auto.Sections)

	var overrides map[string]review.ItemOverride
	if len(r.ItemOverrides) > 0 {
		// A corrupt override column degrades to the auto scores.
		if err := json.Unmarshal(r.ItemOverrides, &overrides); err != nil {
			overrides = nil
		}
	}

	sectionScores := [5]*float64{
		r.Section1Score, r.Section2Score, r.Section3Score, r.Section4Score, r.Section5Score,
	}

	var total float64
	for i := range merged.Sections {
		sec := merged.Sections[i]
		sec.Items = mergeItems(sec, overrides)

		var sum float64
		for _, it := range sec.Items {
			sum += it.AutoScore
		}
		sec.Total = utils.Clamp(sum, sec.Max)

		if i < len(sectionScores) && sectionScores[i] != nil {
			sec.Total = utils.Clamp(*sectionScores[i], sec.Max)
		}

		merged.Sections[i] = sec
		merged.SectionTotal[i] = sec.Total
		total += sec.Total
	}

	merged.TotalScore = utils.Clamp(total, merged.MaxScore)
	return merged
}

func mergeItems(sec scores.SectionScore, overrides map[string]review.ItemOverride) []scores.ScoredItem {
	items := make([]scores.ScoredItem, len(sec.Items))
	copy(items, sec.Items)
	if len(overrides) == 0 {
		return items
	}
	for i, it := range items {
		o, ok := overrides[review.ItemKey(sec.SectionNumber, it.ItemNumber)]
		if !ok {
			// Legacy rows keyed overrides by display label.
			o, ok = overrides[it.Label]
		}
		if !ok || o.Score == nil {
			continue
		}
		items[i].AutoScore = utils.Clamp(*o.Score, it.MaxScore)
	}
	return items
}
