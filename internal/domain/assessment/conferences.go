package assessment

import "gorm.io/datatypes"

// ConferenceRecord is the Section V-A submission. This pair of tables stores
// the year as a string: some rows carry the full "2024-2025", older rows only
// "2024". Counts sits behind a JSON bag keyed by item name; key casing is not
// consistent across schema generations, so readers probe known variants.
type ConferenceRecord struct {
	ID     int    `gorm:"primaryKey;column:id" json:"id"`
	DeptID int    `gorm:"column:dept_id;index" json:"dept_id"`
	AYear  string `gorm:"column:a_year;index" json:"a_year"`

	Counts datatypes.JSON `gorm:"column:counts" json:"counts"`
}

func (ConferenceRecord) TableName() string { return "dept_conferences" }

// CollaborationRecord is the Section V-B submission; same year scheme as
// ConferenceRecord.
type CollaborationRecord struct {
	ID     int    `gorm:"primaryKey;column:id" json:"id"`
	DeptID int    `gorm:"column:dept_id;index" json:"dept_id"`
	AYear  string `gorm:"column:a_year;index" json:"a_year"`

	Counts datatypes.JSON `gorm:"column:counts" json:"counts"`
}

func (CollaborationRecord) TableName() string { return "dept_collaborations" }
