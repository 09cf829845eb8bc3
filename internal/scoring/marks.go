// Package scoring holds the five section scorers. Each scorer is a pure
// function of a composite dataset and the marks table; every writer of the
// score cache and every preview endpoint must go through these functions,
// never a reimplementation.
package scoring

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed marks.yaml
var defaultMarksYAML []byte

// SectionCount is fixed by the assessment format.
const SectionCount = 5

// MarksTable is the configurable part of the scoring rules: section maxima,
// the narrative length tiers and the two non-linear funding bracket tables.
// Per-item multipliers and caps are code, not config, since changing them
// changes the meaning of historical scores.
type MarksTable struct {
	SectionMax [SectionCount]float64 `yaml:"section_max"`

	// Narrative tiers stand in for qualitative judgment until an expert
	// override replaces them; the breakpoints are config so product owners
	// can retune without a release.
	NarrativeTiers []NarrativeTier `yaml:"narrative_tiers"`

	AlumniBrackets []AmountBracket `yaml:"alumni_brackets"`
	CSRBrackets    []AmountBracket `yaml:"csr_brackets"`
}

// NarrativeTier awards Fraction of the item max when the trimmed text is at
// least MinLen characters. Tiers are ascending; the last satisfied wins.
type NarrativeTier struct {
	MinLen   int     `yaml:"min_len"`
	Fraction float64 `yaml:"fraction"`
}

// AmountBracket awards Marks when the amount (in lakhs) is at least Min.
// Brackets are ascending; the last satisfied wins. An amount of exactly 0
// never scores: zero means "no data entered", not the bottom bracket.
type AmountBracket struct {
	Min   float64 `yaml:"min"`
	Marks float64 `yaml:"marks"`
}

// TotalMax is the cap on the consolidated score.
func (m *MarksTable) TotalMax() float64 {
	var sum float64
	for _, v := range m.SectionMax {
		sum += v
	}
	return sum
}

// DefaultMarksTable decodes the embedded configuration.
func DefaultMarksTable() (*MarksTable, error) {
	var mt MarksTable
	if err := yaml.Unmarshal(defaultMarksYAML, &mt); err != nil {
		return nil, fmt.Errorf("decode embedded marks table: %w", err)
	}
	return &mt, nil
}

// LoadMarksTable reads a marks table from disk, falling back to the
// embedded default when path is empty.
func LoadMarksTable(path string) (*MarksTable, error) {
	if path == "" {
		return DefaultMarksTable()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read marks table %s: %w", path, err)
	}
	var mt MarksTable
	if err := yaml.Unmarshal(raw, &mt); err != nil {
		return nil, fmt.Errorf("decode marks table %s: %w", path, err)
	}
	return &mt, nil
}
