package assessment

import "strings"

// The JSON list fields all share a "bag of fields with a discriminator"
// shape in storage. Decoding maps each bag onto one of the closed entry
// types below; unrecognized discriminators land in the explicit Other/
// Unknown variants instead of silently joining a scored bucket.

// AwardLevel discriminates faculty award entries.
type AwardLevel int

const (
	AwardUnknown AwardLevel = iota
	AwardState
	AwardNational
	AwardInternational
	// AwardInternationalFellowship is an international entry tagged as a
	// fellowship; it is scored in its own item, never in the international
	// award bucket.
	AwardInternationalFellowship
)

// ParseAwardLevel maps the raw level/type pair onto the closed set.
func ParseAwardLevel(level, kind string) AwardLevel {
	l := strings.ToLower(strings.TrimSpace(level))
	k := strings.ToLower(strings.TrimSpace(kind))
	switch l {
	case "state":
		return AwardState
	case "national":
		return AwardNational
	case "international":
		if strings.Contains(k, "fellowship") {
			return AwardInternationalFellowship
		}
		return AwardInternational
	default:
		return AwardUnknown
	}
}

type AwardEntry struct {
	Name  string
	Level AwardLevel
}

// PublicationKind discriminates publication entries. The match is
// exact-string on the stored type, never substring: "ISSN_Journals" must not
// be absorbed by the Scopus/WoS "Journal" bucket.
type PublicationKind int

const (
	PublicationOther PublicationKind = iota
	PublicationJournal
	PublicationConference
	PublicationISSNJournal
)

func ParsePublicationKind(kind string) PublicationKind {
	switch strings.TrimSpace(kind) {
	case "Journal":
		return PublicationJournal
	case "Conference":
		return PublicationConference
	case "ISSN_Journals":
		return PublicationISSNJournal
	default:
		return PublicationOther
	}
}

type PublicationEntry struct {
	Title string
	Kind  PublicationKind
}

// BookKind discriminates book/MOOC entries; here the legacy data is too
// free-form for exact matching, so classification is by substring.
type BookKind int

const (
	BookOther BookKind = iota
	BookMOOC
	BookAuthored
	BookEdited
)

func ParseBookKind(kind string) BookKind {
	k := strings.ToLower(strings.TrimSpace(kind))
	switch {
	case strings.Contains(k, "mooc"):
		return BookMOOC
	case strings.Contains(k, "authored"):
		return BookAuthored
	case strings.Contains(k, "edited"):
		return BookEdited
	default:
		return BookOther
	}
}

type BookEntry struct {
	Title string
	Kind  BookKind
}

// ProjectKind discriminates funded-project entries. Consultancy projects are
// scored by their summed lakh amount, the others by count.
type ProjectKind int

const (
	ProjectOther ProjectKind = iota
	ProjectGovernment
	ProjectNonGovernment
	ProjectConsultancy
)

func ParseProjectKind(kind string) ProjectKind {
	k := strings.ToLower(strings.TrimSpace(kind))
	switch {
	case strings.Contains(k, "consultancy"):
		return ProjectConsultancy
	case strings.Contains(k, "non-government"), strings.Contains(k, "non_government"), strings.Contains(k, "nongovernment"):
		return ProjectNonGovernment
	case strings.Contains(k, "government"):
		return ProjectGovernment
	default:
		return ProjectOther
	}
}

type ProjectEntry struct {
	Title       string
	Kind        ProjectKind
	AmountLakhs float64
}

// MetricEntry is one faculty member's bibliometrics row. Values are clamped
// at decode time; concatenation artifacts in the source data have produced
// impact factors in the millions.
type MetricEntry struct {
	Name         string
	ImpactFactor float64
	Citations    float64
	HIndex       float64
}

// EcosystemEntry is one entry of the combined startups/investments/grants/
// alumni list. Type carries the source-field tag, e.g. "DPIIT Recognition".
type EcosystemEntry struct {
	Type   string
	Fields map[string]string
}

// SportsAwardLevel discriminates student sports awards for the weighted
// Section IV item.
type SportsAwardLevel int

const (
	SportsUnknown SportsAwardLevel = iota
	SportsState
	SportsNational
	SportsInternational
)

func ParseSportsAwardLevel(level string) SportsAwardLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "state":
		return SportsState
	case "national":
		return SportsNational
	case "international":
		return SportsInternational
	default:
		return SportsUnknown
	}
}
