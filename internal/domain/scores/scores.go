package scores

import "time"

// ScoredItem is one scoring line of a section: the department's value, the
// auto-computed score, and the item maximum. SubEntries carries the decoded
// list backing the value when the item is list-based (for display and for
// document matching). Immutable once produced.
type ScoredItem struct {
	ItemNumber int          `json:"item_number"`
	Label      string       `json:"label"`
	DeptValue  string       `json:"dept_value"`
	AutoScore  float64      `json:"auto_score"`
	MaxScore   float64      `json:"max_score"`
	SubEntries []SubEntry   `json:"sub_entries,omitempty"`
}

// SubEntry is one row of a list-based item's backing data.
type SubEntry struct {
	Label  string            `json:"label"`
	Fields map[string]string `json:"fields,omitempty"`
}

// SectionScore is the output of one section scorer: the capped total plus
// the ordered per-item breakdown.
type SectionScore struct {
	SectionNumber int          `json:"section_number"`
	SectionName   string       `json:"section_name"`
	Total         float64      `json:"total"`
	Max           float64      `json:"max"`
	Items         []ScoredItem `json:"items"`
}

// ScoreSummary is the consolidated five-section result. Sections may be nil
// when the summary was served from the cache table, which persists totals
// only; TotalScore and the per-section totals are always populated.
type ScoreSummary struct {
	DeptID       int            `json:"dept_id"`
	AcademicYear string         `json:"academic_year"`
	SectionTotal [5]float64     `json:"section_totals"`
	TotalScore   float64        `json:"total_score"`
	MaxScore     float64        `json:"max_score"`
	Sections     []SectionScore `json:"sections,omitempty"`
	ComputedAt   time.Time      `json:"computed_at"`
	FromCache    bool           `json:"from_cache"`
}

// CachedScore is the persisted snapshot, one row per (department, year).
// Writes are always a full-row upsert so no reader can observe a mix of
// section totals from two different computes.
type CachedScore struct {
	ID           int       `gorm:"primaryKey;column:id" json:"id"`
	DeptID       int       `gorm:"column:dept_id;uniqueIndex:idx_score_cache_dept_year" json:"dept_id"`
	AcademicYear string    `gorm:"column:academic_year;uniqueIndex:idx_score_cache_dept_year" json:"academic_year"`
	Section1     float64   `gorm:"column:section1" json:"section1"`
	Section2     float64   `gorm:"column:section2" json:"section2"`
	Section3     float64   `gorm:"column:section3" json:"section3"`
	Section4     float64   `gorm:"column:section4" json:"section4"`
	Section5     float64   `gorm:"column:section5" json:"section5"`
	Total        float64   `gorm:"column:total" json:"total"`
	ComputedAt   time.Time `gorm:"column:computed_at" json:"computed_at"`
}

func (CachedScore) TableName() string { return "score_cache" }

// Summary converts a cache row back into the totals-only summary shape.
func (c CachedScore) Summary(maxScore float64) ScoreSummary {
	return ScoreSummary{
		DeptID:       c.DeptID,
		AcademicYear: c.AcademicYear,
		SectionTotal: [5]float64{c.Section1, c.Section2, c.Section3, c.Section4, c.Section5},
		TotalScore:   c.Total,
		MaxScore:     maxScore,
		ComputedAt:   c.ComputedAt,
		FromCache:    true,
	}
}
