package services

import (
	"encoding/json"
	"testing"

	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/review"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/scores"
)

func autoSummary() scores.ScoreSummary {
	return scores.ScoreSummary{
		DeptID:       42,
		AcademicYear: "2024-2025",
		SectionTotal: [5]float64{100, 40, 30, 50, 20},
		TotalScore:   240,
		MaxScore:     725,
		Sections: []scores.SectionScore{
			{SectionNumber: 1, Max: 300, Total: 100, Items: []scores.ScoredItem{
				{ItemNumber: 3, Label: "State-level faculty awards", AutoScore: 2, MaxScore: 10},
				{ItemNumber: 4, Label: "National-level faculty awards", AutoScore: 98, MaxScore: 100},
			}},
			{SectionNumber: 2, Max: 100, Total: 40, Items: []scores.ScoredItem{
				{ItemNumber: 1, Label: "NEP initiatives implemented", AutoScore: 40, MaxScore: 40},
			}},
			{SectionNumber: 3, Max: 110, Total: 30},
			{SectionNumber: 4, Max: 140, Total: 50},
			{SectionNumber: 5, Max: 75, Total: 20},
		},
	}
}

func overridesJSON(t *testing.T, m map[string]review.ItemOverride) []byte {
	t.Helper()
	raw, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal overrides: %v", err)
	}
	return raw
}

func TestMergeNilReviewReturnsAuto(t *testing.T) {
	auto := autoSummary()
	merged := MergeReview(auto, nil)
	if merged.TotalScore != auto.TotalScore {
		t.Fatalf("nil review changed total: %v", merged.TotalScore)
	}
}

func TestMergeItemOverrideRecomputesSection(t *testing.T) {
	auto := autoSummary()
	r := &review.ExpertReview{
		ItemOverrides: overridesJSON(t, map[string]review.ItemOverride{
			review.ItemKey(1, 3): {Score: ptr(8), Remarks: "certificates verified"},
		}),
	}
	merged := MergeReview(auto, r)

	if merged.Sections[0].Items[0].AutoScore != 8 {
		t.Fatalf("item override not applied: %v", merged.Sections[0].Items[0].AutoScore)
	}
	// 8 + 98 = 106.
	if merged.SectionTotal[0] != 106 {
		t.Fatalf("section total = %v, want 106", merged.SectionTotal[0])
	}
	if merged.TotalScore != 106+40+30+50+20 {
		t.Fatalf("total = %v", merged.TotalScore)
	}

	// The auto variant must be untouched.
	if auto.Sections[0].Items[0].AutoScore != 2 || auto.SectionTotal[0] != 100 {
		t.Fatalf("auto summary mutated: %+v", auto.Sections[0])
	}
}

func TestMergeSectionScoreWinsOverItems(t *testing.T) {
	auto := autoSummary()
	r := &review.ExpertReview{
		Section1Score: ptr(250),
		ItemOverrides: overridesJSON(t, map[string]review.ItemOverride{
			review.ItemKey(1, 3): {Score: ptr(8)},
		}),
	}
	merged := MergeReview(auto, r)
	if merged.SectionTotal[0] != 250 {
		t.Fatalf("explicit section score must win: %v", merged.SectionTotal[0])
	}
}

func TestMergeClampsToMaxima(t *testing.T) {
	auto := autoSummary()
	r := &review.ExpertReview{
		Section1Score: ptr(5000),
		ItemOverrides: overridesJSON(t, map[string]review.ItemOverride{
			review.ItemKey(2, 1): {Score: ptr(9999)},
		}),
	}
	merged := MergeReview(auto, r)
	if merged.SectionTotal[0] != 300 {
		t.Fatalf("section override not clamped: %v", merged.SectionTotal[0])
	}
	if merged.Sections[1].Items[0].AutoScore != 40 {
		t.Fatalf("item override not clamped: %v", merged.Sections[1].Items[0].AutoScore)
	}
}

func TestMergeLegacyLabelKey(t *testing.T) {
	auto := autoSummary()
	r := &review.ExpertReview{
		ItemOverrides: overridesJSON(t, map[string]review.ItemOverride{
			"State-level faculty awards": {Score: ptr(6)},
		}),
	}
	merged := MergeReview(auto, r)
	if merged.Sections[0].Items[0].AutoScore != 6 {
		t.Fatalf("legacy label override not applied: %v", merged.Sections[0].Items[0].AutoScore)
	}
}

func TestMergeCorruptOverridesDegradeToAuto(t *testing.T) {
	auto := autoSummary()
	r := &review.ExpertReview{ItemOverrides: []byte("not json")}
	merged := MergeReview(auto, r)
	if merged.Sections[0].Items[0].AutoScore != 2 {
		t.Fatalf("corrupt overrides should leave auto scores: %v", merged.Sections[0].Items[0].AutoScore)
	}
}
