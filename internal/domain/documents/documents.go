package documents

// SupportingDocument is the upload metadata for one scoring item. Storage
// and retrieval of the file itself live outside the core; matching is by
// section + serial number (and program code for program-scoped sections).
type SupportingDocument struct {
	ID           int    `gorm:"primaryKey;column:id" json:"id"`
	DeptID       int    `gorm:"column:dept_id;index" json:"dept_id"`
	AcademicYear string `gorm:"column:academic_year;index" json:"academic_year"`
	SectionName  string `gorm:"column:section_name" json:"section_name"`
	SerialNumber int    `gorm:"column:serial_number" json:"serial_number"`
	ProgramCode  string `gorm:"column:program_code" json:"program_code,omitempty"`
	Title        string `gorm:"column:title" json:"title"`
	FilePath     string `gorm:"column:file_path" json:"file_path"`
	Status       string `gorm:"column:status" json:"status"`
}

func (SupportingDocument) TableName() string { return "dept_documents" }
