package insight

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/ipshare911/Payroll-Management-System/internal/report"
	"github.com/ipshare911/Payroll-Management-System/internal/salary"
	"github.com/ipshare911/Payroll-Management-System/internal/shared/contextutil"
)

const (
	msgNotConfigured = "API Key 未配置。请在环境配置中添加 Google Gemini API Key 以使用智能分析功能。"
	msgUnavailable   = "AI 分析服务暂时不可用，请稍后再试。"
	msgEmptyAnswer   = "无法生成分析报告。"
)

type Service interface {
	Analyze(ctx context.Context, req report.ReportFilterRequest) (*InsightResponse, error)
}

type service struct {
	reports   report.Service
	generator Generator
}

// NewService builds the analysis service. A nil generator is allowed and
// yields the not-configured message instead of calling out.
func NewService(reports report.Service, generator Generator) Service {
	return &service{reports: reports, generator: generator}
}

func (s *service) Analyze(ctx context.Context, req report.ReportFilterRequest) (*InsightResponse, error) {
	if s.generator == nil {
		return &InsightResponse{Insight: msgNotConfigured}, nil
	}

	groups, err := s.reports.ByDepartment(ctx, req)
	if err != nil {
		return nil, err
	}

	prompt, err := buildPrompt(groups)
	if err != nil {
		return nil, err
	}

	text, genErr := s.generator.Generate(ctx, prompt)
	if genErr != nil {
		// The dashboard keeps working without the narrative.
		contextutil.GetLogger(ctx, zap.L()).Warn("insight generation failed", zap.Error(genErr))
		return &InsightResponse{Insight: msgUnavailable}, nil
	}
	if text == "" {
		return &InsightResponse{Insight: msgEmptyAnswer}, nil
	}
	return &InsightResponse{Insight: text, Generated: true}, nil
}

type departmentDigest struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// buildPrompt condenses the record set into per-department net totals so the
// prompt stays small no matter how many rows are loaded.
func buildPrompt(groups []report.DepartmentSummaryResponse) (string, error) {
	digest := make(map[string]departmentDigest, len(groups))
	for _, g := range groups {
		digest[g.Department] = departmentDigest{
			Total: g.Sums[salary.FieldNetTotal],
			Count: g.Headcount,
		}
	}

	// json.Marshal writes map keys in sorted order, so the prompt is stable.
	encoded, err := json.Marshal(digest)
	if err != nil {
		return "", fmt.Errorf("encode department digest: %w", err)
	}

	return fmt.Sprintf(`作为一名人力资源数据分析专家，请根据以下矿产资源分院的工资概况数据生成一份简短的分析报告（中文）：

数据概况: %s

请包含以下内容：
1. 各部门薪资支出对比。
2. 如果有数据差异过大，请指出潜在原因（假设性）。
3. 对下个月的预算规划给出一条建议。

请保持语气专业、客观。`, encoded), nil
}
