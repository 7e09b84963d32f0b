package salary

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is the record-store capability handed to the importer, the report
// engine and the exporter. Implementations may be Postgres-backed or
// in-memory fakes; callers only rely on read-after-completed-write.
type Store interface {
	WithTx(tx *sql.Tx) Store
	GetAll(ctx context.Context) ([]SalaryRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*SalaryRecord, error)
	AddBatch(ctx context.Context, records []SalaryRecord) error
	Update(ctx context.Context, record *SalaryRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type store struct {
	db    *gorm.DB
	sqlDB *sql.DB
	tx    *sql.Tx
}

func NewStore(db *gorm.DB) Store {
	sqlDB, _ := db.DB()
	return &store{db: db, sqlDB: sqlDB}
}

func (s *store) WithTx(tx *sql.Tx) Store {
	return &store{db: s.db, sqlDB: s.sqlDB, tx: tx}
}

func (s *store) GetAll(ctx context.Context) ([]SalaryRecord, error) {
	var records []SalaryRecord
	err := s.db.WithContext(ctx).
		Order("month ASC, department ASC, sequence ASC").
		Find(&records).Error
	return records, err
}

func (s *store) GetByID(ctx context.Context, id uuid.UUID) (*SalaryRecord, error) {
	var record SalaryRecord
	err := s.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

const insertRecordQuery = `
INSERT INTO salary_records (
	id, sequence, employee_name, department, month,
	position_salary, base_salary, retention_allowance, performance_salary,
	internal_audit_fee, certificate_subsidy, annual_leave_pay,
	publicity_performance, branch_audit_fee, research_performance,
	other_performance_accounting, other, total, net_total,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, NOW(), NOW())
`

// AddBatch inserts through the raw execer so a batch can share a *sql.Tx
// with the outbox write; either the whole batch lands or none of it does.
func (s *store) AddBatch(ctx context.Context, records []SalaryRecord) error {
	exec := s.execer()
	for i := range records {
		r := &records[i]
		_, err := exec.ExecContext(
			ctx, insertRecordQuery,
			r.ID, r.Sequence, r.EmployeeName, r.Department, r.Month,
			r.PositionSalary, r.BaseSalary, r.RetentionAllowance, r.PerformanceSalary,
			r.InternalAuditFee, r.CertificateSubsidy, r.AnnualLeavePay,
			r.PublicityPerformance, r.BranchAuditFee, r.ResearchPerformance,
			r.OtherPerformanceAccounting, r.Other, r.Total, r.NetTotal,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *store) Update(ctx context.Context, record *SalaryRecord) error {
	res := s.db.WithContext(ctx).Save(record)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *store) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&SalaryRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *store) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&SalaryRecord{}).Count(&count).Error
	return count, err
}

func (s *store) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if s.tx != nil {
		return s.tx
	}
	return s.sqlDB
}
