package salary

import (
	"time"

	"github.com/google/uuid"
)

// SalaryRecord is one employee's payroll line for one month. Total and
// NetTotal are derived; ComputeTotals must run after any component change.
type SalaryRecord struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Sequence     int       `gorm:"not null;default:0"`
	EmployeeName string    `gorm:"type:varchar(120);not null;index"`
	Department   string    `gorm:"type:varchar(120);not null;index"`

	// Month is the canonical YYYY-MM key; year filtering is a prefix match
	// on this column.
	Month string `gorm:"type:varchar(32);not null;index"`

	PositionSalary             float64 `gorm:"not null;default:0"`
	BaseSalary                 float64 `gorm:"not null;default:0"`
	RetentionAllowance         float64 `gorm:"not null;default:0"`
	PerformanceSalary          float64 `gorm:"not null;default:0"`
	InternalAuditFee           float64 `gorm:"not null;default:0"`
	CertificateSubsidy         float64 `gorm:"not null;default:0"`
	AnnualLeavePay             float64 `gorm:"not null;default:0"`
	PublicityPerformance       float64 `gorm:"not null;default:0"`
	BranchAuditFee             float64 `gorm:"not null;default:0"`
	ResearchPerformance        float64 `gorm:"not null;default:0"`
	OtherPerformanceAccounting float64 `gorm:"not null;default:0"`
	Other                      float64 `gorm:"not null;default:0"`

	Total    float64 `gorm:"not null;default:0"`
	NetTotal float64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SalaryRecord) TableName() string {
	return "salary_records"
}
