package salary

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SeedSampleRecords inserts the three reference sample records when the
// store is empty. Dev convenience only; wired behind an env flag.
func SeedSampleRecords(ctx context.Context, store Store) error {
	count, err := store.Count(ctx)
	if err != nil {
		return mapReadError(err)
	}
	if count > 0 {
		return nil
	}

	samples := []SalaryRecord{
		{
			ID: uuid.New(), Sequence: 1,
			EmployeeName: "张三", Department: "基础地质所", Month: "2025-01",
			PositionSalary: 5200, BaseSalary: 3500, RetentionAllowance: 1200,
			PerformanceSalary: 4800, CertificateSubsidy: 500,
			PublicityPerformance: 200, ResearchPerformance: 1500,
		},
		{
			ID: uuid.New(), Sequence: 2,
			EmployeeName: "李四", Department: "规划所", Month: "2025-01",
			PositionSalary: 5500, BaseSalary: 3800, RetentionAllowance: 1200,
			PerformanceSalary: 5200, InternalAuditFee: 500, BranchAuditFee: 300,
			ResearchPerformance: 2000, OtherPerformanceAccounting: 5000,
		},
		{
			ID: uuid.New(), Sequence: 3,
			EmployeeName: "王五", Department: "储量所", Month: "2025-02",
			PositionSalary: 4800, BaseSalary: 3200, RetentionAllowance: 1000,
			PerformanceSalary: 4500, CertificateSubsidy: 500, AnnualLeavePay: 2000,
			PublicityPerformance: 100, ResearchPerformance: 1000, Other: 200,
		},
	}
	for i := range samples {
		ComputeTotals(&samples[i])
	}

	if err := store.AddBatch(ctx, samples); err != nil {
		return mapWriteError(err)
	}

	zap.L().Info("seeded sample salary records", zap.Int("count", len(samples)))
	return nil
}
