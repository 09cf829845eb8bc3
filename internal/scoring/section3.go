package scoring

import (
	"fmt"

	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/aggregates"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/assessment"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/scores"
)

// ScoreSection3 scores Governance, Institutional Values and Best Practices.
func ScoreSection3(d aggregates.GovernanceData, mt *MarksTable) scores.SectionScore {
	var rec assessment.GovernanceRecord
	if d.Record != nil {
		rec = *d.Record
	}

	inclusive := count(len(d.InclusivePractices))
	green := count(len(d.GreenPractices))

	// One mark per 10 percentage points of teachers holding admin roles.
	// A zero or absent denominator scores 0; it must not divide.
	var adminMarks float64
	adminValue := "-"
	if rec.TotalTeachers > 0 {
		pct := float64(rec.AdminRoleTeachers) / float64(rec.TotalTeachers) * 100
		adminMarks = pct / 10
		adminValue = fmt.Sprintf("%d/%d (%.1f%%)", rec.AdminRoleTeachers, rec.TotalTeachers, pct)
	}

	extension := count(rec.ExtensionAwards)

	var budgetMarks float64
	budgetValue := "-"
	if rec.AllocatedBudget > 0 {
		pct := rec.UtilizedBudget / rec.AllocatedBudget * 100
		budgetMarks = pct / 50 * 2.5
		budgetValue = fmt.Sprintf("%.1f%% utilized", pct)
	}

	alumniMarks := bracketMarks(rec.AlumniContributionLakhs, mt.AlumniBrackets)
	csrMarks := bracketMarks(rec.CSRFundingLakhs, mt.CSRBrackets)

	// Infrastructure is one item with four sub-areas, each worth 2.5.
	infraAreas := []struct {
		label string
		text  string
	}{
		{"Classrooms", rec.InfraClassrooms},
		{"Laboratories", rec.InfraLabs},
		{"Library", rec.InfraLibrary},
		{"ICT facilities", rec.InfraICT},
	}
	var infraMarks float64
	infraSubs := make([]scores.SubEntry, 0, len(infraAreas))
	for _, a := range infraAreas {
		m := narrativeMarks(a.text, 2.5, mt.NarrativeTiers)
		infraMarks += m
		infraSubs = append(infraSubs, scores.SubEntry{
			Label:  a.label,
			Fields: map[string]string{"marks": fmt.Sprintf("%.2f", m)},
		})
	}

	infraItem := scored(8, "Infrastructure adequacy", fmt.Sprintf("%d areas described", len(infraAreas)), infraMarks, 10)
	infraItem.SubEntries = infraSubs

	items := []scores.ScoredItem{
		scored(1, "Inclusive practices", intValue(inclusive), inclusive*2, 10),
		scored(2, "Green campus practices", intValue(green), green*1, 10),
		scored(3, "Teachers in administrative roles", adminValue, adminMarks, 10),
		scored(4, "Extension activity awards", intValue(extension), extension*2, 10),
		scored(5, "Budget utilization", budgetValue, budgetMarks, 5),
		scored(6, "Alumni contribution (lakhs)", fmt.Sprintf("%.2f", rec.AlumniContributionLakhs), alumniMarks, 10),
		scored(7, "CSR funding (lakhs)", fmt.Sprintf("%.2f", rec.CSRFundingLakhs), csrMarks, 10),
		infraItem,
		narrativeItem(9, "Peer perception", rec.PeerPerception, 10, mt),
		narrativeItem(10, "Student feedback mechanism", rec.StudentFeedback, 10, mt),
		narrativeItem(11, "Institutional best practice", rec.BestPractice, 10, mt),
		narrativeItem(12, "Leadership alignment with institutional goals", rec.LeadershipSync, 5, mt),
	}

	return sectionTotal(3, "Governance and Best Practices", mt.SectionMax[2], items)
}

func narrativeItem(number int, label, text string, max float64, mt *MarksTable) scores.ScoredItem {
	value := "-"
	if len(text) > 0 {
		value = fmt.Sprintf("%d chars", len(text))
	}
	return scored(number, label, value, narrativeMarks(text, max, mt.NarrativeTiers), max)
}
