package salary

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	salaryerrors "github.com/ipshare911/Payroll-Management-System/internal/salary/errors"
	"github.com/ipshare911/Payroll-Management-System/internal/shared/apperror"
)

type fakeStore struct {
	withTxFn   func(tx *sql.Tx) Store
	getAllFn   func(ctx context.Context) ([]SalaryRecord, error)
	getByIDFn  func(ctx context.Context, id uuid.UUID) (*SalaryRecord, error)
	addBatchFn func(ctx context.Context, records []SalaryRecord) error
	updateFn   func(ctx context.Context, record *SalaryRecord) error
	deleteFn   func(ctx context.Context, id uuid.UUID) error
	countFn    func(ctx context.Context) (int64, error)
}

func (f *fakeStore) WithTx(tx *sql.Tx) Store { return f.withTxFn(tx) }
func (f *fakeStore) GetAll(ctx context.Context) ([]SalaryRecord, error) {
	return f.getAllFn(ctx)
}
func (f *fakeStore) GetByID(ctx context.Context, id uuid.UUID) (*SalaryRecord, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeStore) AddBatch(ctx context.Context, records []SalaryRecord) error {
	return f.addBatchFn(ctx, records)
}
func (f *fakeStore) Update(ctx context.Context, record *SalaryRecord) error {
	return f.updateFn(ctx, record)
}
func (f *fakeStore) Delete(ctx context.Context, id uuid.UUID) error { return f.deleteFn(ctx, id) }
func (f *fakeStore) Count(ctx context.Context) (int64, error)       { return f.countFn(ctx) }

func validUpdateRequest() UpdateSalaryRecordRequest {
	return UpdateSalaryRecordRequest{
		EmployeeName:               "张三",
		Department:                 "基础地质所",
		Month:                      "2025-03",
		BaseSalary:                 8000,
		PerformanceSalary:          4000,
		OtherPerformanceAccounting: 1000,
	}
}

func TestService_List_AppliesFilter(t *testing.T) {
	store := &fakeStore{
		getAllFn: func(ctx context.Context) ([]SalaryRecord, error) {
			return []SalaryRecord{
				{ID: uuid.New(), EmployeeName: "张三", Department: "基础地质所", Month: "2025-01"},
				{ID: uuid.New(), EmployeeName: "李四", Department: "规划所", Month: "2025-02"},
			}, nil
		},
	}
	svc := NewService(store)

	resp, err := svc.List(context.Background(), ListSalariesFilterRequest{Department: "规划所"})

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "李四", resp[0].EmployeeName)
}

func TestService_List_BareMonthNumberCombinesWithYear(t *testing.T) {
	store := &fakeStore{
		getAllFn: func(ctx context.Context) ([]SalaryRecord, error) {
			return []SalaryRecord{
				{ID: uuid.New(), EmployeeName: "张三", Month: "2025-03"},
				{ID: uuid.New(), EmployeeName: "李四", Month: "2025-04"},
			}, nil
		},
	}
	svc := NewService(store)

	resp, err := svc.List(context.Background(), ListSalariesFilterRequest{Year: "2025", Month: "3"})

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "2025-03", resp[0].Month)
}

func TestService_Update_RecomputesTotalsAndKeepsSequence(t *testing.T) {
	id := uuid.New()
	stored := SalaryRecord{ID: id, Sequence: 7, EmployeeName: "旧名", Month: "2025-01", Total: 1, NetTotal: 1}

	var saved SalaryRecord
	store := &fakeStore{
		getByIDFn: func(ctx context.Context, got uuid.UUID) (*SalaryRecord, error) {
			assert.Equal(t, id, got)
			copied := stored
			return &copied, nil
		},
		updateFn: func(ctx context.Context, record *SalaryRecord) error {
			saved = *record
			return nil
		},
	}
	svc := NewService(store)

	resp, err := svc.Update(context.Background(), id.String(), validUpdateRequest())

	assert.NoError(t, err)
	assert.Equal(t, 7, saved.Sequence)
	assert.InDelta(t, 13000, saved.Total, 0.001)
	assert.InDelta(t, 12000, saved.NetTotal, 0.001)
	assert.InDelta(t, 12000, resp.NetTotal, 0.001)
}

func TestService_Update_RejectsMalformedID(t *testing.T) {
	svc := NewService(&fakeStore{})

	_, err := svc.Update(context.Background(), "not-a-uuid", validUpdateRequest())

	httpErr := apperror.ToHTTP(err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestService_Update_RejectsMalformedMonth(t *testing.T) {
	svc := NewService(&fakeStore{})

	req := validUpdateRequest()
	req.Month = "2025/3"
	_, err := svc.Update(context.Background(), uuid.New().String(), req)

	httpErr := apperror.ToHTTP(err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestService_Update_NotFound(t *testing.T) {
	store := &fakeStore{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*SalaryRecord, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewService(store)

	_, err := svc.Update(context.Background(), uuid.New().String(), validUpdateRequest())

	assert.ErrorIs(t, err, salaryerrors.ErrRecordNotFound)
}

func TestService_Delete_NotFound(t *testing.T) {
	store := &fakeStore{
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			return gorm.ErrRecordNotFound
		},
	}
	svc := NewService(store)

	err := svc.Delete(context.Background(), uuid.New().String())

	assert.ErrorIs(t, err, salaryerrors.ErrRecordNotFound)
}
