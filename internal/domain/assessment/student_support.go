package assessment

import "gorm.io/datatypes"

// StudentIntakeRecord is one program row of the Section IV intake table
// (starting-year key). Scoring consumes the SUM across program rows; the
// per-program breakdown is kept for display and document matching.
type StudentIntakeRecord struct {
	ID        int `gorm:"primaryKey;column:id" json:"id"`
	DeptID    int `gorm:"column:dept_id;index" json:"dept_id"`
	AYear     int `gorm:"column:a_year;index" json:"a_year"`
	ProgramID int `gorm:"column:program_id;index" json:"program_id"`

	Applications   int `gorm:"column:applications" json:"applications"`
	Sanctioned     int `gorm:"column:sanctioned" json:"sanctioned"`
	Enrolled       int `gorm:"column:enrolled" json:"enrolled"`
	FemaleEnrolled int `gorm:"column:female_enrolled" json:"female_enrolled"`
	ESCSEnrolled   int `gorm:"column:escs_enrolled" json:"escs_enrolled"`
	OutsideState   int `gorm:"column:outside_state" json:"outside_state"`
}

func (StudentIntakeRecord) TableName() string { return "student_intake" }

// StudentPlacementRecord is one program row of the placement table
// (starting-year key).
type StudentPlacementRecord struct {
	ID        int `gorm:"primaryKey;column:id" json:"id"`
	DeptID    int `gorm:"column:dept_id;index" json:"dept_id"`
	AYear     int `gorm:"column:a_year;index" json:"a_year"`
	ProgramID int `gorm:"column:program_id;index" json:"program_id"`

	Graduated       int `gorm:"column:graduated" json:"graduated"`
	Placed          int `gorm:"column:placed" json:"placed"`
	HigherStudies   int `gorm:"column:higher_studies" json:"higher_studies"`
	CompetitiveExam int `gorm:"column:competitive_exam" json:"competitive_exam"`
	Internships     int `gorm:"column:internships" json:"internships"`
}

func (StudentPlacementRecord) TableName() string { return "student_placement" }

// PhDStudentRecord holds the PhD population for Section IV (ending-year key).
type PhDStudentRecord struct {
	ID     int `gorm:"primaryKey;column:id" json:"id"`
	DeptID int `gorm:"column:dept_id;index" json:"dept_id"`
	AYear  int `gorm:"column:a_year;index" json:"a_year"`

	TotalPhDStudents int `gorm:"column:total_phd_students" json:"total_phd_students"`
}

func (PhDStudentRecord) TableName() string { return "phd_students" }

// SupportRecord is the JSON-heavy Section IV submission (ending-year key).
// The five fellow lists are decoded and counted independently; the PhD
// fellowship sub-metric counts JRF+SRF only, while "research fellows" for
// display counts all five.
type SupportRecord struct {
	ID     int `gorm:"primaryKey;column:id" json:"id"`
	DeptID int `gorm:"column:dept_id;index" json:"dept_id"`
	AYear  int `gorm:"column:a_year;index" json:"a_year"`

	JRFFellows         datatypes.JSON `gorm:"column:jrf_fellows" json:"jrf_fellows"`
	SRFFellows         datatypes.JSON `gorm:"column:srf_fellows" json:"srf_fellows"`
	PostDocFellows     datatypes.JSON `gorm:"column:post_doc_fellows" json:"post_doc_fellows"`
	ResearchAssociates datatypes.JSON `gorm:"column:research_associates" json:"research_associates"`
	OtherFellows       datatypes.JSON `gorm:"column:other_fellows" json:"other_fellows"`

	SupportInitiatives datatypes.JSON `gorm:"column:support_initiatives" json:"support_initiatives"`
	ResearchActivities datatypes.JSON `gorm:"column:research_activities" json:"research_activities"`
	SportsAwards       datatypes.JSON `gorm:"column:sports_awards" json:"sports_awards"`
	CulturalAwards     datatypes.JSON `gorm:"column:cultural_awards" json:"cultural_awards"`
	ExecPrograms       datatypes.JSON `gorm:"column:exec_programs" json:"exec_programs"`
}

func (SupportRecord) TableName() string { return "dept_support" }
