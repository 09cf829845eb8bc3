package aggregates

import (
	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/locate"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/repos"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/assessment"
)

// The composite datasets below are read-only snapshots assembled per
// request. Rescoring never mutates them in place; it re-fetches.

// FacultyOutputData backs Section I.
type FacultyOutputData struct {
	Record *assessment.FacultyOutputRecord
	Path   locate.Path

	Awards       []assessment.AwardEntry
	Projects     []assessment.ProjectEntry
	Patents      []map[string]interface{}
	Publications []assessment.PublicationEntry
	Metrics      []assessment.MetricEntry
	Books        []assessment.BookEntry
	// Ecosystem is the combined, source-tagged startups/investments/grants/
	// alumni list.
	Ecosystem []assessment.EcosystemEntry
}

// NEPData backs Section II.
type NEPData struct {
	Record *assessment.NEPRecord
	Path   locate.Path

	Initiatives       []map[string]interface{}
	Pedagogy          []map[string]interface{}
	AssessmentReforms []map[string]interface{}
}

// GovernanceData backs Section III.
type GovernanceData struct {
	Record *assessment.GovernanceRecord
	Path   locate.Path

	InclusivePractices []map[string]interface{}
	GreenPractices     []map[string]interface{}
}

// StudentSupportData backs Section IV. The aggregate sums feed scoring; the
// program breakdowns feed display and document matching.
type StudentSupportData struct {
	Intake     *repos.IntakeAggregate
	IntakePath locate.Path

	Placement     *repos.PlacementAggregate
	PlacementPath locate.Path

	IntakePrograms    []repos.ProgramIntakeRow
	PlacementPrograms []repos.ProgramPlacementRow

	PhD     *assessment.PhDStudentRecord
	PhDPath locate.Path

	Support     SupportData
	SupportPath locate.Path

	// MoocCount is folded in from the NEP dataset, which lives under a
	// different year-key encoding.
	MoocCount int
}

// SupportData is the flattened view of the JSON-heavy dept_support record.
type SupportData struct {
	// FellowshipJRFSRF counts the JRF and SRF lists only; post-docs,
	// research associates and other fellows are excluded from this
	// sub-metric even though ResearchFellowsTotal counts all five.
	FellowshipJRFSRF     int
	ResearchFellowsTotal int

	SupportInitiatives []map[string]interface{}
	ResearchActivities []map[string]interface{}
	SportsAwards       []assessment.SportsAwardLevel
	CulturalAwards     []map[string]interface{}
	ExecPrograms       []map[string]interface{}
}

// ConfCollabData backs Section V; the two tables are located independently.
type ConfCollabData struct {
	ConferenceCounts map[string]float64
	ConferencePath   locate.Path

	CollaborationCounts map[string]float64
	CollaborationPath   locate.Path
}

// DepartmentDataset bundles all five composites for one department-year.
type DepartmentDataset struct {
	DeptID       int
	AcademicYear string

	FacultyOutput  FacultyOutputData
	NEP            NEPData
	Governance     GovernanceData
	StudentSupport StudentSupportData
	ConfCollab     ConfCollabData
}
