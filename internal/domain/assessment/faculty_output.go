package assessment

import "gorm.io/datatypes"

// FacultyOutputRecord is the Section I submission. The table predates this
// service and stores its year key as the ending year of the academic cycle
// (AYear = 2025 for "2024-2025"). List-shaped answers are JSON-encoded
// arrays of loosely-typed objects; the normalizer decodes them defensively.
type FacultyOutputRecord struct {
	ID     int `gorm:"primaryKey;column:id" json:"id"`
	DeptID int `gorm:"column:dept_id;index" json:"dept_id"`
	AYear  int `gorm:"column:a_year;index" json:"a_year"`

	PermanentPhDFaculty int `gorm:"column:permanent_phd_faculty" json:"permanent_phd_faculty"`
	AdhocPhDFaculty     int `gorm:"column:adhoc_phd_faculty" json:"adhoc_phd_faculty"`
	PhDAwarded          int `gorm:"column:phd_awarded" json:"phd_awarded"`

	Awards         datatypes.JSON `gorm:"column:awards" json:"awards"`
	Projects       datatypes.JSON `gorm:"column:projects" json:"projects"`
	Patents        datatypes.JSON `gorm:"column:patents" json:"patents"`
	Publications   datatypes.JSON `gorm:"column:publications" json:"publications"`
	FacultyMetrics datatypes.JSON `gorm:"column:faculty_metrics" json:"faculty_metrics"`
	Books          datatypes.JSON `gorm:"column:books" json:"books"`

	// Ecosystem entities. Each field is its own JSON list in the table; the
	// normalizer tags entries with their source and concatenates them for the
	// "startups incubated" item and for display.
	Startups      datatypes.JSON `gorm:"column:startups" json:"startups"`
	VCInvestments datatypes.JSON `gorm:"column:vc_investments" json:"vc_investments"`
	SeedGrants    datatypes.JSON `gorm:"column:seed_grants" json:"seed_grants"`
	ForbesAlumni  datatypes.JSON `gorm:"column:forbes_alumni" json:"forbes_alumni"`
	// StartupCount is a cached counter column that historically drifts from
	// the live lists; scoring takes the max of both.
	StartupCount int `gorm:"column:startup_count" json:"startup_count"`
}

func (FacultyOutputRecord) TableName() string { return "faculty_output" }
