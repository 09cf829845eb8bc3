// Package yearkey owns the mapping between the canonical academic-year form
// ("YYYY-YYYY", July to June) and the encodings legacy tables actually store:
// the full string, the ending year as an integer, the starting year as an
// integer, or the starting year as a string. No other package is allowed to
// know which table uses which encoding.
package yearkey

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/apperr"
)

// AcademicYear is the canonical identity of one assessment cycle.
type AcademicYear struct {
	start int
}

// Parse validates a canonical "YYYY-YYYY" string where the second year must
// be the first plus one.
func Parse(s string) (AcademicYear, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 {
		return AcademicYear{}, fmt.Errorf("academic year %q: %w", s, apperr.ErrInvalidArgument)
	}
	first, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	second, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return AcademicYear{}, fmt.Errorf("academic year %q: %w", s, apperr.ErrInvalidArgument)
	}
	if second != first+1 {
		return AcademicYear{}, fmt.Errorf("academic year %q: second year must follow first: %w", s, apperr.ErrInvalidArgument)
	}
	if first < 1900 || first > 2200 {
		return AcademicYear{}, fmt.Errorf("academic year %q out of range: %w", s, apperr.ErrInvalidArgument)
	}
	return AcademicYear{start: first}, nil
}

// FromStartingYear builds the academic year that starts in July of y.
func FromStartingYear(y int) AcademicYear {
	return AcademicYear{start: y}
}

// Current returns the academic year in effect at the given instant. The cycle
// runs July through June, so January–June belongs to the previous start year.
func Current(now time.Time) AcademicYear {
	y := now.Year()
	if now.Month() < time.July {
		y--
	}
	return AcademicYear{start: y}
}

func (a AcademicYear) String() string {
	return fmt.Sprintf("%d-%d", a.start, a.start+1)
}

func (a AcademicYear) StartingYear() int { return a.start }
func (a AcademicYear) EndingYear() int   { return a.start + 1 }

func (a AcademicYear) IsZero() bool { return a.start == 0 }

// Encoding identifies how a target table persists its year key.
type Encoding int

const (
	FullString Encoding = iota
	EndingYearInt
	StartingYearInt
	// StartingYearString covers the conference/collaboration tables, which
	// historically stored a truncated year string instead of an integer.
	StartingYearString
)

func (e Encoding) String() string {
	switch e {
	case FullString:
		return "full_string"
	case EndingYearInt:
		return "ending_year_int"
	case StartingYearInt:
		return "starting_year_int"
	case StartingYearString:
		return "starting_year_string"
	default:
		return "unknown"
	}
}

// Candidate is one concrete value to probe a table with. Exactly one of
// IntVal/StrVal is meaningful, decided by the encoding.
type Candidate struct {
	Encoding Encoding
	IntVal   int
	StrVal   string
	// Reason labels the candidate for logs and span attributes, e.g.
	// "canonical" or "rollover_prev".
	Reason string
}

// Value returns the probe value in the shape the table expects.
func (c Candidate) Value() interface{} {
	switch c.Encoding {
	case FullString, StartingYearString:
		return c.StrVal
	default:
		return c.IntVal
	}
}

// Candidates produces the ordered probe list for one table encoding,
// canonical form first. For ending-year tables the list also carries the
// adjacent windows that recover records written under an incorrect
// "current academic year" computation around the July rollover.
func Candidates(year AcademicYear, enc Encoding) []Candidate {
	switch enc {
	case FullString:
		return []Candidate{{Encoding: FullString, StrVal: year.String(), Reason: "canonical"}}
	case StartingYearInt:
		return []Candidate{{Encoding: StartingYearInt, IntVal: year.StartingYear(), Reason: "canonical"}}
	case StartingYearString:
		return []Candidate{
			{Encoding: FullString, StrVal: year.String(), Reason: "canonical"},
			{Encoding: StartingYearString, StrVal: strconv.Itoa(year.StartingYear()), Reason: "starting_year_string"},
		}
	case EndingYearInt:
		end := year.EndingYear()
		return []Candidate{
			{Encoding: EndingYearInt, IntVal: end, Reason: "canonical"},
			{Encoding: EndingYearInt, IntVal: end - 1, Reason: "rollover_prev"},
			{Encoding: EndingYearInt, IntVal: end + 1, Reason: "rollover_next"},
			{Encoding: EndingYearInt, IntVal: end - 2, Reason: "rollover_prev2"},
		}
	default:
		return nil
	}
}
