package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	exporterrors "github.com/ipshare911/Payroll-Management-System/internal/export/errors"
	"github.com/ipshare911/Payroll-Management-System/internal/report"
	"github.com/ipshare911/Payroll-Management-System/internal/salary"
)

const (
	ModeDetail       = "detail"
	ModeByPerson     = "by_person"
	ModeByDepartment = "by_department"
)

const (
	sheetDetail       = "工资明细"
	sheetByPerson     = "人员汇总"
	sheetByDepartment = "部门汇总"

	headerSequence = "序号"
	headerRecords  = "记录数"
	headerPeople   = "人数"

	allScopeLabel = "全部"
)

type Service interface {
	Build(ctx context.Context, req ExportRequest) (*ExportFile, error)
}

type service struct {
	store   salary.Store
	reports report.Service
}

func NewService(store salary.Store, reports report.Service) Service {
	return &service{store: store, reports: reports}
}

func (s *service) Build(ctx context.Context, req ExportRequest) (*ExportFile, error) {
	cols, err := resolveColumns(req.Columns)
	if err != nil {
		return nil, err
	}

	var (
		sheet string
		rows  [][]any
	)
	switch req.Mode {
	case "", ModeDetail:
		req.Mode = ModeDetail
		sheet = sheetDetail
		rows, err = s.detailRows(ctx, req, cols)
	case ModeByPerson:
		sheet = sheetByPerson
		rows, err = s.byPersonRows(ctx, req, cols)
	case ModeByDepartment:
		sheet = sheetByDepartment
		rows, err = s.byDepartmentRows(ctx, req, cols)
	default:
		return nil, exporterrors.ErrUnknownMode
	}
	if err != nil {
		return nil, err
	}
	if len(rows) <= 1 {
		return nil, exporterrors.ErrNothingToExport
	}

	content, err := writeWorkbook(sheet, rows)
	if err != nil {
		return nil, err
	}
	return &ExportFile{FileName: buildFileName(req), Content: content}, nil
}

// resolveColumns maps the comma-separated key list onto the canonical field
// table, keeping the table's column order regardless of request order.
func resolveColumns(raw string) ([]salary.FieldSpec, error) {
	all := salary.ExportColumns()
	if strings.TrimSpace(raw) == "" {
		return all, nil
	}

	wanted := map[salary.FieldKey]bool{}
	for _, part := range strings.Split(raw, ",") {
		key := salary.FieldKey(strings.TrimSpace(part))
		if key == "" {
			continue
		}
		if _, ok := salary.FieldByKey(key); !ok {
			return nil, exporterrors.ErrUnknownColumn
		}
		wanted[key] = true
	}

	cols := make([]salary.FieldSpec, 0, len(wanted))
	for _, col := range all {
		if wanted[col.Key] {
			cols = append(cols, col)
		}
	}
	return cols, nil
}

func (s *service) detailRows(ctx context.Context, req ExportRequest, cols []salary.FieldSpec) ([][]any, error) {
	records, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	records = salary.Filter{
		Department: req.Department,
		Year:       req.Year,
		Month:      req.Month,
		Search:     req.Search,
	}.Apply(records)

	header := []any{headerSequence, salary.LabelName, salary.LabelDepartment, salary.LabelMonth}
	for _, col := range cols {
		header = append(header, col.Label)
	}

	rows := [][]any{header}
	for i := range records {
		r := &records[i]
		row := []any{r.Sequence, r.EmployeeName, r.Department, r.Month}
		for _, col := range cols {
			row = append(row, col.Get(r))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *service) byPersonRows(ctx context.Context, req ExportRequest, cols []salary.FieldSpec) ([][]any, error) {
	groups, err := s.reports.ByPerson(ctx, report.ReportFilterRequest{
		Department: req.Department,
		Year:       req.Year,
		Month:      req.Month,
		Search:     req.Search,
	})
	if err != nil {
		return nil, err
	}

	header := []any{salary.LabelName, salary.LabelDepartment, headerRecords}
	for _, col := range cols {
		header = append(header, col.Label)
	}

	rows := [][]any{header}
	for _, g := range groups {
		row := []any{g.EmployeeName, g.Department, g.Records}
		for _, col := range cols {
			row = append(row, g.Sums[col.Key])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *service) byDepartmentRows(ctx context.Context, req ExportRequest, cols []salary.FieldSpec) ([][]any, error) {
	groups, err := s.reports.ByDepartment(ctx, report.ReportFilterRequest{
		Department: req.Department,
		Year:       req.Year,
		Month:      req.Month,
		Search:     req.Search,
	})
	if err != nil {
		return nil, err
	}

	header := []any{salary.LabelDepartment, headerPeople}
	for _, col := range cols {
		header = append(header, col.Label)
	}

	rows := [][]any{header}
	for _, g := range groups {
		row := []any{g.Department, g.Headcount}
		for _, col := range cols {
			row = append(row, g.Sums[col.Key])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func writeWorkbook(sheet string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, exporterrors.ErrWorkbookBuildFailure
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, exporterrors.ErrWorkbookBuildFailure
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return nil, exporterrors.ErrWorkbookBuildFailure
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, exporterrors.ErrWorkbookBuildFailure
	}
	return buf.Bytes(), nil
}

func buildFileName(req ExportRequest) string {
	scope := req.Department
	if scope == "" || scope == "all" {
		scope = allScopeLabel
	}
	year := req.Year
	if year == "" {
		year = allScopeLabel
	}
	return fmt.Sprintf("工资导出_%s_%s_%s.xlsx", scope, year, req.Mode)
}
