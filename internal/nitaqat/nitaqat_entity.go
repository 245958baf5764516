package nitaqat

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Snapshot is an append-only record of one classification run.
type Snapshot struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID             uuid.UUID `gorm:"type:uuid;index"`
	CalculationDate       time.Time `gorm:"type:date"`
	Sector                string
	TotalEmployees        int
	SaudiEmployees        int
	EffectiveSaudiCount   decimal.Decimal  `gorm:"type:numeric(10,2)"`
	SaudizationPercentage decimal.Decimal  `gorm:"type:numeric(5,2)"`
	Zone                  string           `gorm:"column:zone"`
	EntitySize            string           `gorm:"column:entity_size"`
	NextZone              *string          `gorm:"column:next_zone"`
	EmployeesNeeded       *decimal.Decimal `gorm:"type:numeric(10,2)"`
	CreatedBy             *uuid.UUID       `gorm:"type:uuid"`
	CreatedAt             time.Time
}

func (Snapshot) TableName() string {
	return "nitaqat_snapshots"
}
