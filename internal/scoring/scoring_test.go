package scoring

import (
	"strings"
	"testing"
	"time"

	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/aggregates"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/repos"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/assessment"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/scores"
)

func marksTable(t *testing.T) *MarksTable {
	t.Helper()
	mt, err := DefaultMarksTable()
	if err != nil {
		t.Fatalf("load default marks table: %v", err)
	}
	return mt
}

func itemScore(t *testing.T, s scores.SectionScore, number int) float64 {
	t.Helper()
	for _, it := range s.Items {
		if it.ItemNumber == number {
			return it.AutoScore
		}
	}
	t.Fatalf("section %d has no item %d", s.SectionNumber, number)
	return 0
}

func TestMarksTableSectionMaxima(t *testing.T) {
	mt := marksTable(t)
	want := [SectionCount]float64{300, 100, 110, 140, 75}
	if mt.SectionMax != want {
		t.Fatalf("section maxima = %v, want %v", mt.SectionMax, want)
	}
	if got := mt.TotalMax(); got != 725 {
		t.Fatalf("total max = %v, want 725", got)
	}
}

func TestSection1AwardDiscrimination(t *testing.T) {
	mt := marksTable(t)
	d := aggregates.FacultyOutputData{
		Awards: []assessment.AwardEntry{
			{Name: "a", Level: assessment.AwardState},
			{Name: "b", Level: assessment.AwardNational},
			{Name: "c", Level: assessment.AwardInternationalFellowship},
		},
	}
	s := ScoreSection1(d, mt)
	got := map[int]float64{}
	for _, it := range s.Items {
		got[it.ItemNumber] = it.AutoScore
	}
	// The international entry is tagged fellowship: excluded from the
	// international-award item, counted in the fellowship item.
	if got[3] != 2 || got[4] != 3 || got[5] != 0 || got[6] != 3 {
		t.Fatalf("award items 3/4/5/6 = %v/%v/%v/%v, want 2/3/0/3", got[3], got[4], got[5], got[6])
	}
}

func TestSection1PublicationExactDiscriminator(t *testing.T) {
	mt := marksTable(t)
	d := aggregates.FacultyOutputData{
		Publications: []assessment.PublicationEntry{
			{Title: "p1", Kind: assessment.ParsePublicationKind("Journal")},
			{Title: "p2", Kind: assessment.ParsePublicationKind("Conference")},
			{Title: "p3", Kind: assessment.ParsePublicationKind("ISSN_Journals")},
		},
	}
	s := ScoreSection1(d, mt)
	got := map[int]float64{}
	for _, it := range s.Items {
		got[it.ItemNumber] = it.AutoScore
	}
	if got[12] != 2 || got[13] != 1 || got[14] != 1 {
		t.Fatalf("publication items 12/13/14 = %v/%v/%v, want 2/1/1", got[12], got[13], got[14])
	}
}

func TestSection1StartupCounterDrift(t *testing.T) {
	mt := marksTable(t)

	// Counter larger than the parsed list.
	d := aggregates.FacultyOutputData{
		Record:    &assessment.FacultyOutputRecord{StartupCount: 4},
		Ecosystem: []assessment.EcosystemEntry{{Type: "Startup"}},
	}
	if got := itemScore(t, ScoreSection1(d, mt), 19); got != 8 {
		t.Fatalf("startup score with counter=4 list=1: got %v, want 8", got)
	}

	// Parsed list larger than the counter.
	d = aggregates.FacultyOutputData{
		Record: &assessment.FacultyOutputRecord{StartupCount: 1},
		Ecosystem: []assessment.EcosystemEntry{
			{Type: "Startup"}, {Type: "Startup"}, {Type: "VC Investment"},
		},
	}
	if got := itemScore(t, ScoreSection1(d, mt), 19); got != 6 {
		t.Fatalf("startup score with counter=1 list=3: got %v, want 6", got)
	}
}

func TestSection1CapInvariant(t *testing.T) {
	mt := marksTable(t)
	// Absurdly large inputs must never push an item past its max or the
	// section past 300.
	awards := make([]assessment.AwardEntry, 500)
	for i := range awards {
		awards[i] = assessment.AwardEntry{Level: assessment.AwardInternational}
	}
	pubs := make([]assessment.PublicationEntry, 500)
	for i := range pubs {
		pubs[i] = assessment.PublicationEntry{Kind: assessment.PublicationJournal}
	}
	d := aggregates.FacultyOutputData{
		Record: &assessment.FacultyOutputRecord{
			PermanentPhDFaculty: 1000,
			AdhocPhDFaculty:     1000,
			PhDAwarded:          1000,
			StartupCount:        1000,
		},
		Awards:       awards,
		Publications: pubs,
		Metrics: []assessment.MetricEntry{
			{ImpactFactor: 100, Citations: 10000000, HIndex: 10000},
		},
	}
	s := ScoreSection1(d, mt)
	for _, it := range s.Items {
		if it.AutoScore > it.MaxScore {
			t.Fatalf("item %d score %v exceeds max %v", it.ItemNumber, it.AutoScore, it.MaxScore)
		}
	}
	if s.Total > s.Max {
		t.Fatalf("section total %v exceeds max %v", s.Total, s.Max)
	}
	if s.Total != 300 {
		t.Fatalf("saturated section total = %v, want 300", s.Total)
	}
}

func TestSection2CounterFallsBackToList(t *testing.T) {
	mt := marksTable(t)
	d := aggregates.NEPData{
		Record: &assessment.NEPRecord{
			InitiativeCount: 0,
			PedagogyCount:   7,
		},
		Initiatives: []map[string]interface{}{{"name": "x"}, {"name": "y"}},
		Pedagogy:    []map[string]interface{}{{"name": "z"}},
	}
	s := ScoreSection2(d, mt)
	if got := itemScore(t, s, 1); got != 4 {
		t.Fatalf("initiatives from list fallback: got %v, want 4", got)
	}
	// An explicit counter wins over the list length.
	if got := itemScore(t, s, 2); got != 14 {
		t.Fatalf("pedagogy from counter: got %v, want 14", got)
	}
}

func TestSection2ResultDaysBracket(t *testing.T) {
	mt := marksTable(t)
	cases := []struct {
		days int
		want float64
	}{
		{0, 0}, // unanswered, not same-day
		{1, 5},
		{30, 5},
		{31, 2.5},
		{45, 2.5},
		{46, 0},
		{400, 0},
	}
	for _, c := range cases {
		d := aggregates.NEPData{Record: &assessment.NEPRecord{ResultDays: c.days}}
		if got := itemScore(t, ScoreSection2(d, mt), 6); got != c.want {
			t.Fatalf("result days %d: got %v, want %v", c.days, got, c.want)
		}
	}
}

func TestSection3AlumniBracketBoundaries(t *testing.T) {
	mt := marksTable(t)
	cases := []struct {
		lakhs float64
		want  float64
	}{
		{0, 0},
		{0.05, 0},
		{0.5, 1},
		{1.0, 2},
		{2.0, 3},
		{6.5, 7},
		{10.0, 10},
		{50.0, 10},
	}
	for _, c := range cases {
		d := aggregates.GovernanceData{
			Record: &assessment.GovernanceRecord{AlumniContributionLakhs: c.lakhs},
		}
		if got := itemScore(t, ScoreSection3(d, mt), 6); got != c.want {
			t.Fatalf("alumni %.2f lakhs: got %v, want %v", c.lakhs, got, c.want)
		}
	}
}

func TestSection3ZeroDenominatorsScoreZero(t *testing.T) {
	mt := marksTable(t)
	d := aggregates.GovernanceData{
		Record: &assessment.GovernanceRecord{
			AdminRoleTeachers: 5,
			TotalTeachers:     0,
			UtilizedBudget:    90,
			AllocatedBudget:   0,
		},
	}
	s := ScoreSection3(d, mt)
	if got := itemScore(t, s, 3); got != 0 {
		t.Fatalf("admin role with zero teachers: got %v, want 0", got)
	}
	if got := itemScore(t, s, 5); got != 0 {
		t.Fatalf("budget with zero allocation: got %v, want 0", got)
	}
}

func TestSection3NarrativeTiers(t *testing.T) {
	mt := marksTable(t)
	cases := []struct {
		text string
		want float64
	}{
		{"", 0},
		{"-", 0},
		{"Not provided", 0},
		{"short", 0},                   // <10 chars
		{strings.Repeat("a", 10), 3},   // 30% of 10
		{strings.Repeat("a", 50), 5},   // 50%
		{strings.Repeat("a", 100), 6},  // 60%
		{strings.Repeat("a", 200), 7},  // 70%
		{strings.Repeat("a", 5000), 7}, // still 70%
	}
	for _, c := range cases {
		d := aggregates.GovernanceData{
			Record: &assessment.GovernanceRecord{PeerPerception: c.text},
		}
		if got := itemScore(t, ScoreSection3(d, mt), 9); got != c.want {
			t.Fatalf("narrative len %d: got %v, want %v", len(c.text), got, c.want)
		}
	}
}

func TestSection4Guards(t *testing.T) {
	mt := marksTable(t)

	// A missing intake row must not score percentage items.
	s := ScoreSection4(aggregates.StudentSupportData{}, mt)
	for _, n := range []int{1, 2, 3, 6, 8, 10, 11, 12} {
		if got := itemScore(t, s, n); got != 0 {
			t.Fatalf("item %d with empty dataset: got %v, want 0", n, got)
		}
	}

	// Fellowship coverage needs a positive PhD population.
	d := aggregates.StudentSupportData{
		Support: aggregates.SupportData{FellowshipJRFSRF: 8},
		PhD:     &assessment.PhDStudentRecord{TotalPhDStudents: 0},
	}
	if got := itemScore(t, ScoreSection4(d, mt), 3); got != 0 {
		t.Fatalf("fellowship with zero PhD students: got %v, want 0", got)
	}

	d.PhD.TotalPhDStudents = 40
	// 8/40 = 20%, /20 = 1 mark.
	if got := itemScore(t, ScoreSection4(d, mt), 3); got != 1 {
		t.Fatalf("fellowship 20%% coverage: got %v, want 1", got)
	}
}

func TestSection4PlacementPercentages(t *testing.T) {
	mt := marksTable(t)
	d := aggregates.StudentSupportData{
		Placement: &repos.PlacementAggregate{
			Graduated:       100,
			Placed:          60,
			HigherStudies:   25,
			CompetitiveExam: 10,
			Internships:     80,
		},
	}
	s := ScoreSection4(d, mt)
	if got := itemScore(t, s, 10); got != 6 {
		t.Fatalf("placement 60%%: got %v, want 6", got)
	}
	if got := itemScore(t, s, 12); got != 2.5 {
		t.Fatalf("higher studies 25%%: got %v, want 2.5", got)
	}
	if got := itemScore(t, s, 11); got != 1 {
		t.Fatalf("competitive exam 10%%: got %v, want 1", got)
	}
	if got := itemScore(t, s, 8); got != 8 {
		t.Fatalf("internships 80%%: got %v, want 8", got)
	}
}

func TestSection4SportsWeights(t *testing.T) {
	mt := marksTable(t)
	d := aggregates.StudentSupportData{
		Support: aggregates.SupportData{
			SportsAwards: []assessment.SportsAwardLevel{
				assessment.SportsState,
				assessment.SportsNational,
				assessment.SportsInternational,
				assessment.SportsUnknown,
			},
		},
	}
	// 1 + 2 + 3; unknown levels contribute nothing.
	if got := itemScore(t, ScoreSection4(d, mt), 14); got != 6 {
		t.Fatalf("sports weighted sum: got %v, want 6", got)
	}
}

func TestSection5KeyVariants(t *testing.T) {
	mt := marksTable(t)
	variants := []string{"National_Conferences", "national_conferences", "NATIONAL_CONFERENCES"}
	for _, key := range variants {
		d := aggregates.ConfCollabData{
			ConferenceCounts: map[string]float64{key: 2},
		}
		if got := itemScore(t, ScoreSection5(d, mt), 3); got != 4 {
			t.Fatalf("key variant %q: got %v, want 4", key, got)
		}
	}
	// Canonical variant wins when more than one is present.
	d := aggregates.ConfCollabData{
		ConferenceCounts: map[string]float64{
			"National_Conferences": 1,
			"national_conferences": 2,
		},
	}
	if got := itemScore(t, ScoreSection5(d, mt), 3); got != 2 {
		t.Fatalf("variant precedence: got %v, want 2", got)
	}
}

func TestSection5Caps(t *testing.T) {
	mt := marksTable(t)
	counts := map[string]float64{}
	for _, it := range conferenceItems {
		counts[it.keys[0]] = 1000
	}
	collab := map[string]float64{}
	for _, it := range collaborationItems {
		collab[it.keys[0]] = 1000
	}
	s := ScoreSection5(aggregates.ConfCollabData{ConferenceCounts: counts, CollaborationCounts: collab}, mt)
	for _, it := range s.Items {
		if it.AutoScore != it.MaxScore {
			t.Fatalf("item %d saturated score %v, want max %v", it.ItemNumber, it.AutoScore, it.MaxScore)
		}
	}
	if s.Total != 75 {
		t.Fatalf("saturated section total = %v, want 75", s.Total)
	}
}

func TestScoreIdempotent(t *testing.T) {
	mt := marksTable(t)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ds := aggregates.DepartmentDataset{
		DeptID:       42,
		AcademicYear: "2024-2025",
		FacultyOutput: aggregates.FacultyOutputData{
			Record: &assessment.FacultyOutputRecord{PermanentPhDFaculty: 6, PhDAwarded: 3},
			Awards: []assessment.AwardEntry{{Level: assessment.AwardNational}},
		},
		NEP: aggregates.NEPData{
			Record: &assessment.NEPRecord{InitiativeCount: 5, ResultDays: 28},
		},
		Governance: aggregates.GovernanceData{
			Record: &assessment.GovernanceRecord{AlumniContributionLakhs: 6.5},
		},
		StudentSupport: aggregates.StudentSupportData{
			Intake: &repos.IntakeAggregate{Applications: 500, Sanctioned: 100, Enrolled: 95, FemaleEnrolled: 40},
		},
		ConfCollab: aggregates.ConfCollabData{
			ConferenceCounts: map[string]float64{"Workshops": 3},
		},
	}

	a := Score(ds, mt, now)
	b := Score(ds, mt, now)
	if a.TotalScore != b.TotalScore || a.SectionTotal != b.SectionTotal {
		t.Fatalf("repeat scoring diverged: %v vs %v", a, b)
	}
	for i := range a.Sections {
		if len(a.Sections[i].Items) != len(b.Sections[i].Items) {
			t.Fatalf("section %d item count diverged", i+1)
		}
		for j := range a.Sections[i].Items {
			if a.Sections[i].Items[j].AutoScore != b.Sections[i].Items[j].AutoScore {
				t.Fatalf("section %d item %d diverged", i+1, j)
			}
		}
	}
	if a.MaxScore != 725 {
		t.Fatalf("max score = %v, want 725", a.MaxScore)
	}
}
