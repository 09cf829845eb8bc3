package normalize

import (
	"gorm.io/datatypes"

	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/assessment"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/utils"
)

// Awards decodes the faculty awards field into the closed AwardEntry set.
func (n *Normalizer) Awards(raw datatypes.JSON) []assessment.AwardEntry {
	entries := FilterValid(n.DecodeList(raw, "awards"))
	out := make([]assessment.AwardEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, assessment.AwardEntry{
			Name:  utils.ToString(e["name"]),
			Level: assessment.ParseAwardLevel(utils.ToString(e["level"]), utils.ToString(e["type"])),
		})
	}
	return out
}

// Publications decodes the publications field; discrimination is exact on
// the stored type string.
func (n *Normalizer) Publications(raw datatypes.JSON) []assessment.PublicationEntry {
	entries := FilterValid(n.DecodeList(raw, "publications"))
	out := make([]assessment.PublicationEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, assessment.PublicationEntry{
			Title: utils.ToString(e["title"]),
			Kind:  assessment.ParsePublicationKind(utils.ToString(e["type"])),
		})
	}
	return out
}

// Books decodes the books/MOOCs field; classification is by substring since
// the legacy type strings are free-form.
func (n *Normalizer) Books(raw datatypes.JSON) []assessment.BookEntry {
	entries := FilterValid(n.DecodeList(raw, "books"))
	out := make([]assessment.BookEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, assessment.BookEntry{
			Title: utils.ToString(e["title"]),
			Kind:  assessment.ParseBookKind(utils.ToString(e["type"])),
		})
	}
	return out
}

// Projects decodes the funded-projects field.
func (n *Normalizer) Projects(raw datatypes.JSON) []assessment.ProjectEntry {
	entries := FilterValid(n.DecodeList(raw, "projects"))
	out := make([]assessment.ProjectEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, assessment.ProjectEntry{
			Title:       utils.ToString(e["title"]),
			Kind:        assessment.ParseProjectKind(utils.ToString(e["type"])),
			AmountLakhs: utils.ToFloat(e["amount_lakhs"]),
		})
	}
	return out
}

// Metrics decodes the per-faculty bibliometrics rows, clamping each entry's
// values before they can contribute to a sum.
func (n *Normalizer) Metrics(raw datatypes.JSON) []assessment.MetricEntry {
	entries := FilterValid(n.DecodeList(raw, "faculty_metrics"))
	out := make([]assessment.MetricEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, assessment.MetricEntry{
			Name:         utils.ToString(e["name"]),
			ImpactFactor: utils.Clamp(utils.ToFloat(e["impact_factor"]), maxImpactFactor),
			Citations:    utils.Clamp(utils.ToFloat(e["citations"]), maxCitations),
			HIndex:       utils.Clamp(utils.ToFloat(e["h_index"]), maxHIndex),
		})
	}
	return out
}

// EcosystemSource binds one JSON list field to its semantic tag.
type EcosystemSource struct {
	Tag string
	Raw datatypes.JSON
}

// Ecosystem decodes each source list, tags every entry with its source and
// concatenates the results into the combined ecosystem-entity list used by
// the startups-incubated item and the review display.
func (n *Normalizer) Ecosystem(sources []EcosystemSource) []assessment.EcosystemEntry {
	var out []assessment.EcosystemEntry
	for _, src := range sources {
		entries := FilterValid(n.DecodeList(src.Raw, src.Tag))
		for _, e := range entries {
			out = append(out, assessment.EcosystemEntry{
				Type:   src.Tag,
				Fields: StringFields(e),
			})
		}
	}
	return out
}

// SportsAwards decodes the student sports-award list into levels for the
// weighted Section IV item.
func (n *Normalizer) SportsAwards(raw datatypes.JSON) []assessment.SportsAwardLevel {
	entries := FilterValid(n.DecodeList(raw, "sports_awards"))
	out := make([]assessment.SportsAwardLevel, 0, len(entries))
	for _, e := range entries {
		out = append(out, assessment.ParseSportsAwardLevel(utils.ToString(e["level"])))
	}
	return out
}
