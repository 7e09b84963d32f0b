package insight

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ipshare911/Payroll-Management-System/internal/report"
	"github.com/ipshare911/Payroll-Management-System/internal/salary"
)

type fakeReportService struct {
	byDepartmentFn func(ctx context.Context, req report.ReportFilterRequest) ([]report.DepartmentSummaryResponse, error)
}

func (f *fakeReportService) Overview(ctx context.Context, req report.OverviewRequest) (*report.OverviewResponse, error) {
	return nil, nil
}
func (f *fakeReportService) ByPerson(ctx context.Context, req report.ReportFilterRequest) ([]report.PersonSummaryResponse, error) {
	return nil, nil
}
func (f *fakeReportService) ByDepartment(ctx context.Context, req report.ReportFilterRequest) ([]report.DepartmentSummaryResponse, error) {
	return f.byDepartmentFn(ctx, req)
}
func (f *fakeReportService) Trend(ctx context.Context, req report.TrendRequest) (*report.TrendResponse, error) {
	return nil, nil
}
func (f *fakeReportService) Directory(ctx context.Context, req report.DirectoryRequest) ([]report.DirectoryEntryResponse, error) {
	return nil, nil
}

type fakeGenerator struct {
	generateFn func(ctx context.Context, prompt string) (string, error)
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return f.generateFn(ctx, prompt)
}

func departmentFixture() []report.DepartmentSummaryResponse {
	return []report.DepartmentSummaryResponse{
		{
			Department: "基础地质所",
			Headcount:  2,
			Sums:       map[salary.FieldKey]float64{salary.FieldNetTotal: 34200},
		},
	}
}

func TestAnalyze_NotConfigured(t *testing.T) {
	svc := NewService(&fakeReportService{}, nil)

	resp, err := svc.Analyze(context.Background(), report.ReportFilterRequest{})

	assert.NoError(t, err)
	assert.False(t, resp.Generated)
	assert.Equal(t, msgNotConfigured, resp.Insight)
}

func TestAnalyze_PromptCarriesDepartmentDigest(t *testing.T) {
	reports := &fakeReportService{
		byDepartmentFn: func(ctx context.Context, req report.ReportFilterRequest) ([]report.DepartmentSummaryResponse, error) {
			return departmentFixture(), nil
		},
	}

	var captured string
	gen := &fakeGenerator{
		generateFn: func(ctx context.Context, prompt string) (string, error) {
			captured = prompt
			return "各部门薪资支出整体平稳。", nil
		},
	}

	svc := NewService(reports, gen)
	resp, err := svc.Analyze(context.Background(), report.ReportFilterRequest{})

	assert.NoError(t, err)
	assert.True(t, resp.Generated)
	assert.Equal(t, "各部门薪资支出整体平稳。", resp.Insight)
	assert.Contains(t, captured, "数据概况")
	assert.Contains(t, captured, "基础地质所")
	assert.Contains(t, captured, `"total":34200`)
	assert.Contains(t, captured, `"count":2`)
}

func TestAnalyze_GeneratorFailureFallsBack(t *testing.T) {
	reports := &fakeReportService{
		byDepartmentFn: func(ctx context.Context, req report.ReportFilterRequest) ([]report.DepartmentSummaryResponse, error) {
			return departmentFixture(), nil
		},
	}
	gen := &fakeGenerator{
		generateFn: func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("quota exceeded")
		},
	}

	svc := NewService(reports, gen)
	resp, err := svc.Analyze(context.Background(), report.ReportFilterRequest{})

	assert.NoError(t, err)
	assert.False(t, resp.Generated)
	assert.Equal(t, msgUnavailable, resp.Insight)
}

func TestAnalyze_EmptyAnswer(t *testing.T) {
	reports := &fakeReportService{
		byDepartmentFn: func(ctx context.Context, req report.ReportFilterRequest) ([]report.DepartmentSummaryResponse, error) {
			return departmentFixture(), nil
		},
	}
	gen := &fakeGenerator{
		generateFn: func(ctx context.Context, prompt string) (string, error) {
			return "", nil
		},
	}

	svc := NewService(reports, gen)
	resp, err := svc.Analyze(context.Background(), report.ReportFilterRequest{})

	assert.NoError(t, err)
	assert.Equal(t, msgEmptyAnswer, resp.Insight)
}
