package assessment

import "gorm.io/datatypes"

// GovernanceRecord is the Section III submission (ending-year key). The four
// Infra* columns and the narrative columns hold free text scored by the
// length-tier heuristic until an expert overrides them.
type GovernanceRecord struct {
	ID     int `gorm:"primaryKey;column:id" json:"id"`
	DeptID int `gorm:"column:dept_id;index" json:"dept_id"`
	AYear  int `gorm:"column:a_year;index" json:"a_year"`

	InclusivePractices datatypes.JSON `gorm:"column:inclusive_practices" json:"inclusive_practices"`
	GreenPractices     datatypes.JSON `gorm:"column:green_practices" json:"green_practices"`

	AdminRoleTeachers int `gorm:"column:admin_role_teachers" json:"admin_role_teachers"`
	TotalTeachers     int `gorm:"column:total_teachers" json:"total_teachers"`

	ExtensionAwards int `gorm:"column:extension_awards" json:"extension_awards"`

	AllocatedBudget float64 `gorm:"column:allocated_budget" json:"allocated_budget"`
	UtilizedBudget  float64 `gorm:"column:utilized_budget" json:"utilized_budget"`

	AlumniContributionLakhs float64 `gorm:"column:alumni_contribution_lakhs" json:"alumni_contribution_lakhs"`
	CSRFundingLakhs         float64 `gorm:"column:csr_funding_lakhs" json:"csr_funding_lakhs"`

	InfraClassrooms string `gorm:"column:infra_classrooms" json:"infra_classrooms"`
	InfraLabs       string `gorm:"column:infra_labs" json:"infra_labs"`
	InfraLibrary    string `gorm:"column:infra_library" json:"infra_library"`
	InfraICT        string `gorm:"column:infra_ict" json:"infra_ict"`

	PeerPerception  string `gorm:"column:peer_perception" json:"peer_perception"`
	StudentFeedback string `gorm:"column:student_feedback" json:"student_feedback"`
	BestPractice    string `gorm:"column:best_practice" json:"best_practice"`
	LeadershipSync  string `gorm:"column:leadership_sync" json:"leadership_sync"`
}

func (GovernanceRecord) TableName() string { return "governance_records" }
