// Package aggregates joins the record locator's outputs into the composite
// per-section datasets the scoring engine and the review display consume.
package aggregates

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/locate"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/normalize"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/repos"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/yearkey"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/assessment"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/observability"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/logger"
)

type Builder struct {
	log     *logger.Logger
	metrics *observability.Metrics
	norm    *normalize.Normalizer

	faculty   repos.DatasetRepo[assessment.FacultyOutputRecord]
	nep       repos.DatasetRepo[assessment.NEPRecord]
	gov       repos.DatasetRepo[assessment.GovernanceRecord]
	phd       repos.DatasetRepo[assessment.PhDStudentRecord]
	support   repos.DatasetRepo[assessment.SupportRecord]
	conf      repos.DatasetRepo[assessment.ConferenceRecord]
	collab    repos.DatasetRepo[assessment.CollaborationRecord]
	intake    repos.StudentIntakeRepo
	placement repos.StudentPlacementRepo
}

func NewBuilder(
	baseLog *logger.Logger,
	metrics *observability.Metrics,
	norm *normalize.Normalizer,
	faculty repos.DatasetRepo[assessment.FacultyOutputRecord],
	nep repos.DatasetRepo[assessment.NEPRecord],
	gov repos.DatasetRepo[assessment.GovernanceRecord],
	phd repos.DatasetRepo[assessment.PhDStudentRecord],
	support repos.DatasetRepo[assessment.SupportRecord],
	conf repos.DatasetRepo[assessment.ConferenceRecord],
	collab repos.DatasetRepo[assessment.CollaborationRecord],
	intake repos.StudentIntakeRepo,
	placement repos.StudentPlacementRepo,
) *Builder {
	return &Builder{
		log:       baseLog.With("component", "AggregateBuilder"),
		metrics:   metrics,
		norm:      norm,
		faculty:   faculty,
		nep:       nep,
		gov:       gov,
		phd:       phd,
		support:   support,
		conf:      conf,
		collab:    collab,
		intake:    intake,
		placement: placement,
	}
}

// locateDataset adapts a DatasetRepo to the locate combinator. Every lookup
// outcome lands on the record_locate_total counter so fallback-path drift is
// visible on /metrics, not just in logs.
func locateDataset[T any](ctx context.Context, log *logger.Logger, m *observability.Metrics, table string, repo repos.DatasetRepo[T], deptID int, year yearkey.AcademicYear) (*T, locate.Path) {
	cands := yearkey.Candidates(year, repo.Encoding())
	rec, path, err := locate.Locate(ctx, log, table, cands,
		func(ctx context.Context, cand yearkey.Candidate) (*T, bool, error) {
			return repo.FindExact(ctx, nil, deptID, cand)
		},
		func(ctx context.Context) (*T, bool, error) {
			return repo.FindLatest(ctx, nil, deptID)
		},
	)
	if err != nil {
		// Partial data availability must not stop the other sections from
		// scoring; the miss is already visible in logs and span attributes.
		log.Warn("dataset lookup degraded to empty", "table", table, "dept_id", deptID, "error", err)
	}
	m.RecordLocate(path.Table, path.Step)
	return rec, path
}

// FacultyOutput builds the Section I composite.
func (b *Builder) FacultyOutput(ctx context.Context, deptID int, year yearkey.AcademicYear) FacultyOutputData {
	rec, path := locateDataset(ctx, b.log, b.metrics, "faculty_output", b.faculty, deptID, year)
	out := FacultyOutputData{Record: rec, Path: path}
	if rec == nil {
		return out
	}
	out.Awards = b.norm.Awards(rec.Awards)
	out.Projects = b.norm.Projects(rec.Projects)
	out.Patents = b.norm.CountedList(rec.Patents, "patents")
	out.Publications = b.norm.Publications(rec.Publications)
	out.Metrics = b.norm.Metrics(rec.FacultyMetrics)
	out.Books = b.norm.Books(rec.Books)
	out.Ecosystem = b.norm.Ecosystem([]normalize.EcosystemSource{
		{Tag: "DPIIT Recognition", Raw: rec.Startups},
		{Tag: "VC Investment", Raw: rec.VCInvestments},
		{Tag: "Seed Grant", Raw: rec.SeedGrants},
		{Tag: "Forbes Alumni", Raw: rec.ForbesAlumni},
	})
	return out
}

// NEP builds the Section II composite.
func (b *Builder) NEP(ctx context.Context, deptID int, year yearkey.AcademicYear) NEPData {
	rec, path := locateDataset(ctx, b.log, b.metrics, "nep_initiatives", b.nep, deptID, year)
	out := NEPData{Record: rec, Path: path}
	if rec == nil {
		return out
	}
	out.Initiatives = b.norm.CountedList(rec.Initiatives, "initiatives")
	out.Pedagogy = b.norm.CountedList(rec.Pedagogy, "pedagogy")
	out.AssessmentReforms = b.norm.CountedList(rec.AssessmentReforms, "assessment_reforms")
	return out
}

// Governance builds the Section III composite.
func (b *Builder) Governance(ctx context.Context, deptID int, year yearkey.AcademicYear) GovernanceData {
	rec, path := locateDataset(ctx, b.log, b.metrics, "governance_records", b.gov, deptID, year)
	out := GovernanceData{Record: rec, Path: path}
	if rec == nil {
		return out
	}
	out.InclusivePractices = b.norm.CountedPracticeList(rec.InclusivePractices, "inclusive_practices")
	out.GreenPractices = b.norm.CountedPracticeList(rec.GreenPractices, "green_practices")
	return out
}

// StudentSupport builds the Section IV composite: aggregated intake and
// placement sums, the program-wise breakdown, the PhD population, the
// JSON-heavy support record, and the MOOC count folded in from the NEP
// dataset.
func (b *Builder) StudentSupport(ctx context.Context, deptID int, year yearkey.AcademicYear) StudentSupportData {
	var out StudentSupportData

	intakeCands := yearkey.Candidates(year, b.intake.Encoding())
	agg, path, err := locate.Locate(ctx, b.log, "student_intake", intakeCands,
		func(ctx context.Context, cand yearkey.Candidate) (*repos.IntakeAggregate, bool, error) {
			return b.intake.SumExact(ctx, nil, deptID, cand)
		},
		func(ctx context.Context) (*repos.IntakeAggregate, bool, error) {
			return b.intake.SumLatest(ctx, nil, deptID)
		},
	)
	if err != nil {
		b.log.Warn("intake aggregate degraded to empty", "dept_id", deptID, "error", err)
	}
	b.metrics.RecordLocate(path.Table, path.Step)
	out.Intake, out.IntakePath = agg, path
	if path.Found && path.CandidateValue != nil {
		if rows, err := b.intake.ProgramBreakdown(ctx, nil, deptID, yearkey.Candidate{Encoding: b.intake.Encoding(), IntVal: asInt(path.CandidateValue), Reason: path.Step}); err != nil {
			b.log.Warn("intake program breakdown failed", "dept_id", deptID, "error", err)
		} else {
			out.IntakePrograms = rows
		}
	}

	placementCands := yearkey.Candidates(year, b.placement.Encoding())
	pagg, ppath, err := locate.Locate(ctx, b.log, "student_placement", placementCands,
		func(ctx context.Context, cand yearkey.Candidate) (*repos.PlacementAggregate, bool, error) {
			return b.placement.SumExact(ctx, nil, deptID, cand)
		},
		func(ctx context.Context) (*repos.PlacementAggregate, bool, error) {
			return b.placement.SumLatest(ctx, nil, deptID)
		},
	)
	if err != nil {
		b.log.Warn("placement aggregate degraded to empty", "dept_id", deptID, "error", err)
	}
	b.metrics.RecordLocate(ppath.Table, ppath.Step)
	out.Placement, out.PlacementPath = pagg, ppath
	if ppath.Found && ppath.CandidateValue != nil {
		if rows, err := b.placement.ProgramBreakdown(ctx, nil, deptID, yearkey.Candidate{Encoding: b.placement.Encoding(), IntVal: asInt(ppath.CandidateValue), Reason: ppath.Step}); err != nil {
			b.log.Warn("placement program breakdown failed", "dept_id", deptID, "error", err)
		} else {
			out.PlacementPrograms = rows
		}
	}

	out.PhD, out.PhDPath = locateDataset(ctx, b.log, b.metrics, "phd_students", b.phd, deptID, year)

	supportRec, supportPath := locateDataset(ctx, b.log, b.metrics, "dept_support", b.support, deptID, year)
	out.SupportPath = supportPath
	if supportRec != nil {
		out.Support = b.flattenSupport(supportRec)
	}

	if nepRec, _ := locateDataset(ctx, b.log, b.metrics, "nep_initiatives", b.nep, deptID, year); nepRec != nil {
		out.MoocCount = nepRec.MoocCount
	}

	return out
}

// flattenSupport decodes the five fellow lists independently and merges the
// derived counts into one flat support map.
func (b *Builder) flattenSupport(rec *assessment.SupportRecord) SupportData {
	jrf := b.norm.CountedList(rec.JRFFellows, "jrf_fellows")
	srf := b.norm.CountedList(rec.SRFFellows, "srf_fellows")
	postDoc := b.norm.CountedList(rec.PostDocFellows, "post_doc_fellows")
	ra := b.norm.CountedList(rec.ResearchAssociates, "research_associates")
	other := b.norm.CountedList(rec.OtherFellows, "other_fellows")

	return SupportData{
		FellowshipJRFSRF:     len(jrf) + len(srf),
		ResearchFellowsTotal: len(jrf) + len(srf) + len(postDoc) + len(ra) + len(other),
		SupportInitiatives:   b.norm.CountedList(rec.SupportInitiatives, "support_initiatives"),
		ResearchActivities:   b.norm.CountedList(rec.ResearchActivities, "research_activities"),
		SportsAwards:         b.norm.SportsAwards(rec.SportsAwards),
		CulturalAwards:       b.norm.CountedList(rec.CulturalAwards, "cultural_awards"),
		ExecPrograms:         b.norm.CountedList(rec.ExecPrograms, "exec_programs"),
	}
}

// ConfCollab builds the Section V composite. Both tables store a string year
// key and are probed full-string first, then the truncated starting-year
// string.
func (b *Builder) ConfCollab(ctx context.Context, deptID int, year yearkey.AcademicYear) ConfCollabData {
	var out ConfCollabData

	confRec, confPath := locateDataset(ctx, b.log, b.metrics, "dept_conferences", b.conf, deptID, year)
	out.ConferencePath = confPath
	if confRec != nil {
		out.ConferenceCounts = b.norm.DecodeCounts(confRec.Counts, "conference_counts")
	}

	collabRec, collabPath := locateDataset(ctx, b.log, b.metrics, "dept_collaborations", b.collab, deptID, year)
	out.CollaborationPath = collabPath
	if collabRec != nil {
		out.CollaborationCounts = b.norm.DecodeCounts(collabRec.Counts, "collaboration_counts")
	}

	return out
}

// BuildAll assembles all five composites concurrently. A failed branch
// leaves its composite empty; it never cancels the siblings.
func (b *Builder) BuildAll(ctx context.Context, deptID int, year yearkey.AcademicYear) *DepartmentDataset {
	ds := &DepartmentDataset{DeptID: deptID, AcademicYear: year.String()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { ds.FacultyOutput = b.FacultyOutput(gctx, deptID, year); return nil })
	g.Go(func() error { ds.NEP = b.NEP(gctx, deptID, year); return nil })
	g.Go(func() error { ds.Governance = b.Governance(gctx, deptID, year); return nil })
	g.Go(func() error { ds.StudentSupport = b.StudentSupport(gctx, deptID, year); return nil })
	g.Go(func() error { ds.ConfCollab = b.ConfCollab(gctx, deptID, year); return nil })
	_ = g.Wait()

	return ds
}

func asInt(v interface{}) int {
	if i, ok := v.(int); ok {
		return i
	}
	return 0
}
