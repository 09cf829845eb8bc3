package scoring

import (
	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/aggregates"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/scores"
)

// countItem is one fixed multiplier-and-cap rule over the counts bag. Keys
// lists every storage variant of the item's key; schema migrations left
// some items stored under more than one casing.
type countItem struct {
	number     int
	label      string
	keys       []string
	multiplier float64
	max        float64
}

var conferenceItems = []countItem{
	{1, "Workshops organized", []string{"Workshops"}, 1, 5},
	{2, "Seminars organized", []string{"Seminars"}, 1, 5},
	{3, "National conferences organized", []string{"National_Conferences", "national_conferences", "NATIONAL_CONFERENCES"}, 2, 5},
	{4, "International conferences organized", []string{"International_Conferences"}, 5, 10},
	{5, "Faculty development programs", []string{"FDPs"}, 2, 10},
	{6, "Invited expert talks", []string{"Invited_Talks"}, 1, 5},
}

var collaborationItems = []countItem{
	{7, "MoUs signed", []string{"MoUs_Signed"}, 2, 10},
	{8, "Industry collaborations", []string{"Industry_Collaborations"}, 1, 5},
	{9, "Academic collaborations", []string{"Academic_Collaborations"}, 1, 5},
	{10, "International collaborations", []string{"International_Collaborations"}, 5, 10},
	{11, "Joint publications with collaborators", []string{"Joint_Publications"}, 1, 5},
}

// ScoreSection5 scores Conferences and Collaborations.
func ScoreSection5(d aggregates.ConfCollabData, mt *MarksTable) scores.SectionScore {
	items := make([]scores.ScoredItem, 0, len(conferenceItems)+len(collaborationItems))
	for _, it := range conferenceItems {
		items = append(items, it.score(d.ConferenceCounts))
	}
	for _, it := range collaborationItems {
		items = append(items, it.score(d.CollaborationCounts))
	}
	return sectionTotal(5, "Conferences and Collaborations", mt.SectionMax[4], items)
}

func (it countItem) score(counts map[string]float64) scores.ScoredItem {
	var n float64
	for _, k := range it.keys {
		if v, ok := counts[k]; ok {
			n = v
			break
		}
	}
	if n < 0 {
		n = 0
	}
	return scored(it.number, it.label, intValue(n), n*it.multiplier, it.max)
}
