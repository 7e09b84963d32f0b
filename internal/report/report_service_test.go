package report

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ipshare911/Payroll-Management-System/internal/salary"
)

type fakeStore struct {
	getAllFn func(ctx context.Context) ([]salary.SalaryRecord, error)
}

func (f *fakeStore) WithTx(tx *sql.Tx) salary.Store { return f }
func (f *fakeStore) GetAll(ctx context.Context) ([]salary.SalaryRecord, error) {
	return f.getAllFn(ctx)
}
func (f *fakeStore) GetByID(ctx context.Context, id uuid.UUID) (*salary.SalaryRecord, error) {
	return nil, nil
}
func (f *fakeStore) AddBatch(ctx context.Context, records []salary.SalaryRecord) error { return nil }
func (f *fakeStore) Update(ctx context.Context, record *salary.SalaryRecord) error     { return nil }
func (f *fakeStore) Delete(ctx context.Context, id uuid.UUID) error                    { return nil }
func (f *fakeStore) Count(ctx context.Context) (int64, error)                          { return 0, nil }

func record(name, dept, month string, base, other float64) salary.SalaryRecord {
	r := salary.SalaryRecord{
		ID:                         uuid.New(),
		EmployeeName:               name,
		Department:                 dept,
		Month:                      month,
		BaseSalary:                 base,
		OtherPerformanceAccounting: other,
	}
	salary.ComputeTotals(&r)
	return r
}

func reportFixture() []salary.SalaryRecord {
	return []salary.SalaryRecord{
		record("张三", "基础地质所", "2025-01", 17000, 0),
		record("张三", "基础地质所", "2025-02", 17200, 0),
		record("李四", "规划所", "2025-01", 20000, 5000),
		record("王五", "储量所", "未知月份", 9000, 0),
	}
}

func newReportService(records []salary.SalaryRecord) Service {
	return NewService(&fakeStore{
		getAllFn: func(ctx context.Context) ([]salary.SalaryRecord, error) {
			return records, nil
		},
	})
}

func TestByPerson_GroupsAcrossMonths(t *testing.T) {
	svc := newReportService(reportFixture())

	groups, err := svc.ByPerson(context.Background(), ReportFilterRequest{})

	assert.NoError(t, err)
	assert.Len(t, groups, 3)

	var zhangSan *PersonSummaryResponse
	for i := range groups {
		if groups[i].EmployeeName == "张三" {
			zhangSan = &groups[i]
		}
	}
	assert.NotNil(t, zhangSan)
	assert.Equal(t, 2, zhangSan.Records)
	assert.InDelta(t, 34200, zhangSan.Sums[salary.FieldTotal], 0.001)
	assert.InDelta(t, 34200, zhangSan.Sums[salary.FieldNetTotal], 0.001)
}

func TestByDepartment_CountsRowsAndSums(t *testing.T) {
	svc := newReportService(reportFixture())

	groups, err := svc.ByDepartment(context.Background(), ReportFilterRequest{Year: "2025"})

	assert.NoError(t, err)
	assert.Len(t, groups, 2)

	// Sorted by department name.
	assert.Equal(t, "基础地质所", groups[0].Department)
	assert.Equal(t, 2, groups[0].Headcount)
	assert.Equal(t, "规划所", groups[1].Department)
	assert.InDelta(t, 20000, groups[1].Sums[salary.FieldNetTotal], 0.001)
}

func TestTrend_BucketsNetTotalByMonth(t *testing.T) {
	svc := newReportService(reportFixture())

	trend, err := svc.Trend(context.Background(), TrendRequest{Year: "2025"})

	assert.NoError(t, err)
	assert.Len(t, trend.Buckets, 12)
	assert.Equal(t, "1月", trend.Buckets[0].Label)
	assert.InDelta(t, 37000, trend.Buckets[0].NetTotal, 0.001)
	assert.InDelta(t, 17200, trend.Buckets[1].NetTotal, 0.001)
	assert.InDelta(t, 0, trend.Buckets[11].NetTotal, 0.001)
}

func TestTrend_SkipsUnparseableMonthKeys(t *testing.T) {
	svc := newReportService([]salary.SalaryRecord{
		record("王五", "储量所", "未知月份", 9000, 0),
	})

	trend, err := svc.Trend(context.Background(), TrendRequest{Year: "2025"})

	assert.NoError(t, err)
	for _, bucket := range trend.Buckets {
		assert.InDelta(t, 0, bucket.NetTotal, 0.001)
	}
}

func TestOverview_DistinctHeadcountAndCustomStat(t *testing.T) {
	svc := newReportService(reportFixture())

	resp, err := svc.Overview(context.Background(), OverviewRequest{
		StatKey: string(salary.FieldOtherPerformanceAccounting),
	})

	assert.NoError(t, err)
	assert.Equal(t, 4, resp.RecordCount)
	assert.Equal(t, 3, resp.Headcount)
	assert.InDelta(t, 68200, resp.GrossTotal, 0.001)
	assert.InDelta(t, 63200, resp.NetTotal, 0.001)
	assert.Equal(t, string(salary.FieldOtherPerformanceAccounting), resp.StatKey)
	assert.InDelta(t, 5000, resp.StatTotal, 0.001)
}

func TestOverview_RejectsUnknownStatKey(t *testing.T) {
	svc := newReportService(nil)

	_, err := svc.Overview(context.Background(), OverviewRequest{StatKey: "bonus"})

	assert.Error(t, err)
}

func TestDirectory_SortsByNetDescending(t *testing.T) {
	svc := newReportService(reportFixture())

	entries, err := svc.Directory(context.Background(), DirectoryRequest{Year: "2025"})

	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "张三", entries[0].EmployeeName)
	assert.InDelta(t, 34200, entries[0].NetTotal, 0.001)
	assert.Equal(t, "李四", entries[1].EmployeeName)
	assert.InDelta(t, 20000, entries[1].NetTotal, 0.001)
}
