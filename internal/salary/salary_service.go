package salary

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"github.com/google/uuid"

	"github.com/ipshare911/Payroll-Management-System/internal/shared/apperror"
)

var monthKeyRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

type Service interface {
	List(ctx context.Context, req ListSalariesFilterRequest) ([]SalaryRecordResponse, error)
	Update(ctx context.Context, id string, req UpdateSalaryRecordRequest) (SalaryRecordResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	store Store
}

func NewService(store Store) Service {
	return &service{store: store}
}

func (s *service) List(
	ctx context.Context,
	req ListSalariesFilterRequest,
) ([]SalaryRecordResponse, error) {
	records, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, mapReadError(err)
	}

	filtered := buildFilter(req).Apply(records)
	return mapToListResponse(filtered), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateSalaryRecordRequest,
) (SalaryRecordResponse, error) {
	recordID, err := uuid.Parse(id)
	if err != nil {
		return SalaryRecordResponse{}, apperror.InvalidField("id")
	}
	if !monthKeyRe.MatchString(req.Month) {
		return SalaryRecordResponse{}, apperror.New(
			apperror.CodeInvalidInput,
			"month must use the YYYY-MM format",
			http.StatusBadRequest,
		)
	}
	if req.EmployeeName == "" {
		return SalaryRecordResponse{}, apperror.RequiredField("Employee Name")
	}

	record, err := s.store.GetByID(ctx, recordID)
	if err != nil {
		return SalaryRecordResponse{}, mapReadError(err)
	}

	// Full replacement by id; Sequence stays as imported.
	record.EmployeeName = req.EmployeeName
	record.Department = req.Department
	record.Month = req.Month
	record.PositionSalary = req.PositionSalary
	record.BaseSalary = req.BaseSalary
	record.RetentionAllowance = req.RetentionAllowance
	record.PerformanceSalary = req.PerformanceSalary
	record.InternalAuditFee = req.InternalAuditFee
	record.CertificateSubsidy = req.CertificateSubsidy
	record.AnnualLeavePay = req.AnnualLeavePay
	record.PublicityPerformance = req.PublicityPerformance
	record.BranchAuditFee = req.BranchAuditFee
	record.ResearchPerformance = req.ResearchPerformance
	record.OtherPerformanceAccounting = req.OtherPerformanceAccounting
	record.Other = req.Other
	ComputeTotals(record)

	if err := s.store.Update(ctx, record); err != nil {
		return SalaryRecordResponse{}, mapWriteError(err)
	}

	return MapToResponse(*record), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	recordID, err := uuid.Parse(id)
	if err != nil {
		return apperror.InvalidField("id")
	}

	if err := s.store.Delete(ctx, recordID); err != nil {
		return mapWriteError(err)
	}
	return nil
}

// buildFilter normalizes the query parameters into a Filter. A bare month
// number ("3") combines with the year into the canonical YYYY-MM key.
func buildFilter(req ListSalariesFilterRequest) Filter {
	f := Filter{
		Department: req.Department,
		Year:       req.Year,
		Search:     req.Search,
	}

	if req.Month != "" && req.Month != "all" {
		if monthKeyRe.MatchString(req.Month) {
			f.Month = req.Month
		} else if n, err := strconv.Atoi(req.Month); err == nil && n >= 1 && n <= 12 && req.Year != "" {
			f.Month = fmt.Sprintf("%s-%02d", req.Year, n)
		}
	}

	return f
}

func MapToResponse(r SalaryRecord) SalaryRecordResponse {
	return SalaryRecordResponse{
		ID:           r.ID.String(),
		Sequence:     r.Sequence,
		EmployeeName: r.EmployeeName,
		Department:   r.Department,
		Month:        r.Month,

		PositionSalary:             r.PositionSalary,
		BaseSalary:                 r.BaseSalary,
		RetentionAllowance:         r.RetentionAllowance,
		PerformanceSalary:          r.PerformanceSalary,
		InternalAuditFee:           r.InternalAuditFee,
		CertificateSubsidy:         r.CertificateSubsidy,
		AnnualLeavePay:             r.AnnualLeavePay,
		PublicityPerformance:       r.PublicityPerformance,
		BranchAuditFee:             r.BranchAuditFee,
		ResearchPerformance:        r.ResearchPerformance,
		OtherPerformanceAccounting: r.OtherPerformanceAccounting,
		Other:                      r.Other,

		Total:    r.Total,
		NetTotal: r.NetTotal,
	}
}

func mapToListResponse(records []SalaryRecord) []SalaryRecordResponse {
	resp := make([]SalaryRecordResponse, len(records))
	for i, r := range records {
		resp[i] = MapToResponse(r)
	}
	return resp
}
