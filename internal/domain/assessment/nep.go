package assessment

import "gorm.io/datatypes"

// NEPRecord is the Section II submission. Unlike faculty_output this table
// keys on the starting year of the cycle (AYear = 2024 for "2024-2025").
// Count columns are explicit counters entered by the department; when a
// counter is absent or zero the scorer falls back to counting the
// corresponding decoded list.
type NEPRecord struct {
	ID     int `gorm:"primaryKey;column:id" json:"id"`
	DeptID int `gorm:"column:dept_id;index" json:"dept_id"`
	AYear  int `gorm:"column:a_year;index" json:"a_year"`

	Initiatives       datatypes.JSON `gorm:"column:initiatives" json:"initiatives"`
	InitiativeCount   int            `gorm:"column:initiative_count" json:"initiative_count"`
	Pedagogy          datatypes.JSON `gorm:"column:pedagogy" json:"pedagogy"`
	PedagogyCount     int            `gorm:"column:pedagogy_count" json:"pedagogy_count"`
	AssessmentReforms datatypes.JSON `gorm:"column:assessment_reforms" json:"assessment_reforms"`
	AssessmentCount   int            `gorm:"column:assessment_count" json:"assessment_count"`

	MoocCount       int     `gorm:"column:mooc_count" json:"mooc_count"`
	EContentCredits float64 `gorm:"column:econtent_credits" json:"econtent_credits"`
	// ResultDays is the result-declaration turnaround in days; zero means the
	// department never answered, not a same-day declaration.
	ResultDays int `gorm:"column:result_days" json:"result_days"`
}

func (NEPRecord) TableName() string { return "nep_initiatives" }
