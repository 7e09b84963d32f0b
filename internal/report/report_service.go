package report

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/ipshare911/Payroll-Management-System/internal/salary"
	"github.com/ipshare911/Payroll-Management-System/internal/shared/apperror"
)

type Service interface {
	Overview(ctx context.Context, req OverviewRequest) (*OverviewResponse, error)
	ByPerson(ctx context.Context, req ReportFilterRequest) ([]PersonSummaryResponse, error)
	ByDepartment(ctx context.Context, req ReportFilterRequest) ([]DepartmentSummaryResponse, error)
	Trend(ctx context.Context, req TrendRequest) (*TrendResponse, error)
	Directory(ctx context.Context, req DirectoryRequest) ([]DirectoryEntryResponse, error)
}

type service struct {
	store salary.Store
	sf    singleflight.Group
}

func NewService(store salary.Store) Service {
	return &service{store: store}
}

// load fetches the full record set once even when several report requests
// arrive at the same time.
func (s *service) load(ctx context.Context) ([]salary.SalaryRecord, error) {
	v, err, _ := s.sf.Do("salary.records", func() (any, error) {
		return s.store.GetAll(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]salary.SalaryRecord), nil
}

func (s *service) filtered(ctx context.Context, req ReportFilterRequest) ([]salary.SalaryRecord, error) {
	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	f := salary.Filter{
		Department: req.Department,
		Year:       req.Year,
		Month:      req.Month,
		Search:     req.Search,
	}
	return f.Apply(records), nil
}

func (s *service) Overview(ctx context.Context, req OverviewRequest) (*OverviewResponse, error) {
	var statField salary.FieldSpec
	hasStat := false
	if req.StatKey != "" {
		field, ok := salary.FieldByKey(salary.FieldKey(req.StatKey))
		if !ok {
			return nil, apperror.InvalidField("stat_key")
		}
		statField = field
		hasStat = true
	}

	records, err := s.filtered(ctx, req.ReportFilterRequest)
	if err != nil {
		return nil, err
	}

	resp := &OverviewResponse{RecordCount: len(records)}
	people := map[string]struct{}{}
	for i := range records {
		r := &records[i]
		people[personKey(r)] = struct{}{}
		resp.GrossTotal += r.Total
		resp.NetTotal += r.NetTotal
		if hasStat {
			resp.StatTotal += statField.Get(r)
		}
	}
	resp.Headcount = len(people)
	if hasStat {
		resp.StatKey = string(statField.Key)
	}
	return resp, nil
}

func (s *service) ByPerson(ctx context.Context, req ReportFilterRequest) ([]PersonSummaryResponse, error) {
	records, err := s.filtered(ctx, req)
	if err != nil {
		return nil, err
	}

	groups := map[string]*PersonSummaryResponse{}
	for i := range records {
		r := &records[i]
		key := personKey(r)
		g, ok := groups[key]
		if !ok {
			g = &PersonSummaryResponse{
				EmployeeName: r.EmployeeName,
				Department:   r.Department,
				Sums:         newSums(),
			}
			groups[key] = g
		}
		g.Records++
		addSums(g.Sums, r)
	}

	out := make([]PersonSummaryResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Department != out[j].Department {
			return out[i].Department < out[j].Department
		}
		return out[i].EmployeeName < out[j].EmployeeName
	})
	return out, nil
}

func (s *service) ByDepartment(ctx context.Context, req ReportFilterRequest) ([]DepartmentSummaryResponse, error) {
	records, err := s.filtered(ctx, req)
	if err != nil {
		return nil, err
	}

	groups := map[string]*DepartmentSummaryResponse{}
	for i := range records {
		r := &records[i]
		g, ok := groups[r.Department]
		if !ok {
			g = &DepartmentSummaryResponse{Department: r.Department, Sums: newSums()}
			groups[r.Department] = g
		}
		g.Headcount++
		addSums(g.Sums, r)
	}

	out := make([]DepartmentSummaryResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Department < out[j].Department })
	return out, nil
}

func (s *service) Trend(ctx context.Context, req TrendRequest) (*TrendResponse, error) {
	if req.Year == "" {
		req.Year = time.Now().Format("2006")
	}
	records, err := s.filtered(ctx, ReportFilterRequest{
		Department: req.Department,
		Year:       req.Year,
	})
	if err != nil {
		return nil, err
	}

	resp := &TrendResponse{
		Year:    req.Year,
		Buckets: make([]TrendBucketResponse, 12),
	}
	for m := 0; m < 12; m++ {
		resp.Buckets[m].Label = fmt.Sprintf("%d月", m+1)
	}

	for i := range records {
		r := &records[i]
		m, ok := monthOfYear(r.Month, req.Year)
		if !ok {
			continue
		}
		resp.Buckets[m-1].NetTotal += r.NetTotal
	}
	return resp, nil
}

func (s *service) Directory(ctx context.Context, req DirectoryRequest) ([]DirectoryEntryResponse, error) {
	records, err := s.filtered(ctx, ReportFilterRequest{
		Department: req.Department,
		Year:       req.Year,
		Search:     req.Search,
	})
	if err != nil {
		return nil, err
	}

	groups := map[string]*DirectoryEntryResponse{}
	for i := range records {
		r := &records[i]
		key := personKey(r)
		g, ok := groups[key]
		if !ok {
			g = &DirectoryEntryResponse{EmployeeName: r.EmployeeName, Department: r.Department}
			groups[key] = g
		}
		g.NetTotal += r.NetTotal
	}

	out := make([]DirectoryEntryResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].NetTotal != out[j].NetTotal {
			return out[i].NetTotal > out[j].NetTotal
		}
		return out[i].EmployeeName < out[j].EmployeeName
	})
	return out, nil
}

func personKey(r *salary.SalaryRecord) string {
	return r.EmployeeName + "|" + r.Department
}

func newSums() map[salary.FieldKey]float64 {
	sums := make(map[salary.FieldKey]float64, len(salary.ExportColumns()))
	for _, col := range salary.ExportColumns() {
		sums[col.Key] = 0
	}
	return sums
}

func addSums(sums map[salary.FieldKey]float64, r *salary.SalaryRecord) {
	for _, col := range salary.ExportColumns() {
		sums[col.Key] += col.Get(r)
	}
}

// monthOfYear extracts the 1-12 month number from a YYYY-MM key belonging to
// the given year. Keys that never normalized to that shape report false.
func monthOfYear(monthKey, year string) (int, bool) {
	if year != "" && !strings.HasPrefix(monthKey, year+"-") {
		return 0, false
	}
	idx := strings.LastIndex(monthKey, "-")
	if idx < 0 {
		return 0, false
	}
	m, err := strconv.Atoi(monthKey[idx+1:])
	if err != nil || m < 1 || m > 12 {
		return 0, false
	}
	return m, true
}
