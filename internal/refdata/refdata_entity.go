package refdata

// Read-only lookup tables. Nothing in this service mutates them; they are
// seeded out of band and joined for display names.

type Department struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(255);not null"`
}

func (Department) TableName() string { return "departments" }

type Position struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(255);not null"`
}

func (Position) TableName() string { return "positions" }

type EmploymentType struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(255);not null"`
}

func (EmploymentType) TableName() string { return "employment_types" }
