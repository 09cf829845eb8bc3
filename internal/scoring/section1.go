package scoring

import (
	"fmt"

	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/aggregates"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/assessment"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/scores"
)

// ScoreSection1 scores Faculty Output. Pure function: same composite in,
// bit-identical SectionScore out.
func ScoreSection1(d aggregates.FacultyOutputData, mt *MarksTable) scores.SectionScore {
	items := make([]scores.ScoredItem, 0, 19)

	var rec assessment.FacultyOutputRecord
	if d.Record != nil {
		rec = *d.Record
	}

	permanentPhD := count(rec.PermanentPhDFaculty)
	adhocPhD := count(rec.AdhocPhDFaculty)
	items = append(items,
		scored(1, "Permanent faculty with PhD", intValue(permanentPhD), permanentPhD*1, 10),
		scored(2, "Adhoc faculty with PhD", intValue(adhocPhD), adhocPhD*0.5, 5),
	)

	var stateAwards, nationalAwards, intlAwards, intlFellowships float64
	for _, a := range d.Awards {
		switch a.Level {
		case assessment.AwardState:
			stateAwards++
		case assessment.AwardNational:
			nationalAwards++
		case assessment.AwardInternational:
			intlAwards++
		case assessment.AwardInternationalFellowship:
			intlFellowships++
		}
	}
	items = append(items,
		scored(3, "State-level faculty awards", intValue(stateAwards), stateAwards*2, 10),
		scored(4, "National-level faculty awards", intValue(nationalAwards), nationalAwards*3, 15),
		scored(5, "International faculty awards", intValue(intlAwards), intlAwards*5, 15),
		scored(6, "International fellowships", intValue(intlFellowships), intlFellowships*3, 15),
	)

	phdAwarded := count(rec.PhDAwarded)
	items = append(items, scored(7, "PhDs awarded", intValue(phdAwarded), phdAwarded*2, 10))

	var nonGovProjects, govProjects, consultancyLakhs float64
	for _, p := range d.Projects {
		switch p.Kind {
		case assessment.ProjectNonGovernment:
			nonGovProjects++
		case assessment.ProjectGovernment:
			govProjects++
		case assessment.ProjectConsultancy:
			if p.AmountLakhs > 0 {
				consultancyLakhs += p.AmountLakhs
			}
		}
	}
	items = append(items,
		scored(8, "Non-government funded projects", intValue(nonGovProjects), nonGovProjects*3, 15),
		scored(9, "Government funded projects", intValue(govProjects), govProjects*4, 20),
		scored(10, "Consultancy (lakhs)", fmt.Sprintf("%.2f", consultancyLakhs), consultancyLakhs*1, 30),
	)

	patents := float64(len(d.Patents))
	items = append(items, scored(11, "Patents / IPR", intValue(patents), patents*3, 15))

	// Publication buckets discriminate on the exact stored type string; an
	// "ISSN_Journals" entry must never leak into the Scopus bucket.
	var scopusPapers, confPapers, issnPapers float64
	for _, p := range d.Publications {
		switch p.Kind {
		case assessment.PublicationJournal:
			scopusPapers++
		case assessment.PublicationConference:
			confPapers++
		case assessment.PublicationISSNJournal:
			issnPapers++
		}
	}
	items = append(items,
		scored(12, "Scopus/WoS journal papers", intValue(scopusPapers), scopusPapers*2, 30),
		scored(13, "Conference papers", intValue(confPapers), confPapers*1, 15),
		scored(14, "UGC-listed ISSN journal papers", intValue(issnPapers), issnPapers*1, 15),
	)

	// Bibliometrics: per-entry clamps already applied at decode time.
	var impactFactor, citations, hIndex float64
	for _, m := range d.Metrics {
		impactFactor += m.ImpactFactor
		citations += m.Citations
		hIndex += m.HIndex
	}
	items = append(items,
		scored(15, "Cumulative impact factor", fmt.Sprintf("%.2f", impactFactor), impactFactor, 10),
		scored(16, "Citations", intValue(citations), citations, 20),
		scored(17, "h-index", intValue(hIndex), hIndex, 20),
	)

	var bookMarks float64
	for _, b := range d.Books {
		switch b.Kind {
		case assessment.BookMOOC:
			bookMarks += 3
		case assessment.BookAuthored:
			bookMarks += 2
		case assessment.BookEdited:
			bookMarks += 1
		}
	}
	items = append(items, scored(18, "Books, chapters and MOOCs", intValue(float64(len(d.Books))), bookMarks, 20))

	// The cached counter column drifts from the live lists; score whichever
	// is larger.
	startupCount := count(rec.StartupCount)
	if parsed := float64(len(d.Ecosystem)); parsed > startupCount {
		startupCount = parsed
	}
	startupItem := scored(19, "Startups incubated", intValue(startupCount), startupCount*2, 10)
	startupItem.SubEntries = ecosystemSubEntries(d.Ecosystem)
	items = append(items, startupItem)

	return sectionTotal(1, "Faculty Output", mt.SectionMax[0], items)
}

func ecosystemSubEntries(entries []assessment.EcosystemEntry) []scores.SubEntry {
	if len(entries) == 0 {
		return nil
	}
	out := make([]scores.SubEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, scores.SubEntry{Label: e.Type, Fields: e.Fields})
	}
	return out
}

func intValue(v float64) string {
	return fmt.Sprintf("%.0f", v)
}
