package assessment

// Department is resolved once at the boundary; everything downstream keys on
// the canonical numeric ID only. LegacyCode survives from the pre-migration
// schema and is consulted only as a resolution fallback.
type Department struct {
	ID         int    `gorm:"primaryKey;column:id" json:"id"`
	Name       string `gorm:"column:name" json:"name"`
	LegacyCode string `gorm:"column:legacy_code;index" json:"legacy_code"`
}

func (Department) TableName() string { return "departments" }

// Program is the program master used to attach canonical codes to the
// program-wise intake/placement breakdown.
type Program struct {
	ID   int    `gorm:"primaryKey;column:id" json:"id"`
	Code string `gorm:"column:code" json:"code"`
	Name string `gorm:"column:name" json:"name"`
}

func (Program) TableName() string { return "programs" }
