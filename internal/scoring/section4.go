package scoring

import (
	"fmt"

	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/aggregates"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/repos"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/assessment"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/scores"
)

// Demand-ratio tiers: applications per sanctioned seat.
var enrolmentRatioBands = []percentBand{
	{Min: 1, Marks: 1},
	{Min: 2, Marks: 3},
	{Min: 3, Marks: 4},
	{Min: 5, Marks: 6},
	{Min: 7, Marks: 8},
	{Min: 10, Marks: 10},
}

// Graduation-outcome tiers keyed on graduated headcount.
var graduationBands = []percentBand{
	{Min: 1, Marks: 1},
	{Min: 20, Marks: 2},
	{Min: 50, Marks: 3},
	{Min: 100, Marks: 4},
	{Min: 200, Marks: 5},
}

// ScoreSection4 scores Student Support and Progression. The guards below
// are policy, not defensiveness: a missing submission and a submission
// reporting zero must score differently.
func ScoreSection4(d aggregates.StudentSupportData, mt *MarksTable) scores.SectionScore {
	var in repos.IntakeAggregate
	if d.Intake != nil {
		in = *d.Intake
	}
	var pl repos.PlacementAggregate
	if d.Placement != nil {
		pl = *d.Placement
	}

	var ratioMarks float64
	ratioValue := "-"
	if in.Sanctioned > 0 {
		ratio := float64(in.Applications) / float64(in.Sanctioned)
		ratioMarks = bandMarks(ratio, enrolmentRatioBands)
		ratioValue = fmt.Sprintf("%.2f", ratio)
	}

	var admissionMarks float64
	admissionValue := "-"
	if in.Sanctioned > 0 {
		pct := float64(in.Enrolled) / float64(in.Sanctioned) * 100
		admissionMarks = float64(int(pct / 10))
		if admissionMarks > 10 {
			admissionMarks = 10
		}
		admissionValue = fmt.Sprintf("%.1f%%", pct)
	}

	var fellowshipMarks float64
	fellowshipValue := "-"
	if d.PhD != nil && d.PhD.TotalPhDStudents > 0 {
		pct := float64(d.Support.FellowshipJRFSRF) / float64(d.PhD.TotalPhDStudents) * 100
		fellowshipMarks = pct / 20
		fellowshipValue = fmt.Sprintf("%d of %d PhD students", d.Support.FellowshipJRFSRF, d.PhD.TotalPhDStudents)
	}

	escs := count(in.ESCSEnrolled)
	outside := count(in.OutsideState)

	var womenMarks float64
	womenValue := "-"
	if in.Enrolled > 0 {
		pct := float64(in.FemaleEnrolled) / float64(in.Enrolled) * 100
		womenMarks = pct / 50 * 5
		womenValue = fmt.Sprintf("%.1f%%", pct)
	}

	supportInits := count(len(d.Support.SupportInitiatives))

	var internMarks float64
	internValue := "-"
	if pl.Graduated > 0 {
		pct := float64(pl.Internships) / float64(pl.Graduated) * 100
		internMarks = pct / 10
		internValue = fmt.Sprintf("%.1f%%", pct)
	}

	graduationMarks := bandMarks(count(pl.Graduated), graduationBands)

	placementMarks, placementValue := graduatePct(pl.Placed, pl.Graduated)
	examMarks, examValue := graduatePct(pl.CompetitiveExam, pl.Graduated)
	higherMarks, higherValue := graduatePct(pl.HigherStudies, pl.Graduated)

	research := count(len(d.Support.ResearchActivities))

	var sportsMarks float64
	for _, lvl := range d.Support.SportsAwards {
		switch lvl {
		case assessment.SportsState:
			sportsMarks += 1
		case assessment.SportsNational:
			sportsMarks += 2
		case assessment.SportsInternational:
			sportsMarks += 3
		}
	}

	cultural := count(len(d.Support.CulturalAwards))

	items := []scores.ScoredItem{
		scored(1, "Enrolment demand ratio", ratioValue, ratioMarks, 10),
		scored(2, "Admission percentage", admissionValue, admissionMarks, 10),
		scored(3, "PhD fellowship coverage (JRF/SRF)", fellowshipValue, fellowshipMarks, 10),
		scored(4, "ESCS student diversity", intValue(escs), escs*0.5, 10),
		scored(5, "Students from outside the state", intValue(outside), outside*0.25, 5),
		scored(6, "Women student diversity", womenValue, womenMarks, 5),
		scored(7, "Student support initiatives", intValue(supportInits), supportInits*2, 10),
		scored(8, "Internship coverage", internValue, internMarks, 10),
		scored(9, "Graduation outcome", intValue(count(pl.Graduated)), graduationMarks, 5),
		scored(10, "Placement percentage", placementValue, placementMarks, 10),
		scored(11, "Competitive examination qualifiers", examValue, examMarks, 10),
		scored(12, "Progression to higher studies", higherValue, higherMarks, 10),
		scored(13, "Student research activities", intValue(research), research, 15),
		scored(14, "Student sports awards", intValue(float64(len(d.Support.SportsAwards))), sportsMarks, 10),
		scored(15, "Student cultural awards", intValue(cultural), cultural, 10),
	}

	return sectionTotal(4, "Student Support and Progression", mt.SectionMax[3], items)
}

// graduatePct scores a headcount as a percentage of the graduated
// population, one mark per 10 points. No graduates means no data.
func graduatePct(n, graduated int) (float64, string) {
	if graduated <= 0 {
		return 0, "-"
	}
	pct := float64(n) / float64(graduated) * 100
	return pct / 10, fmt.Sprintf("%.1f%%", pct)
}
