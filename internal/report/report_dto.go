package report

import "github.com/ipshare911/Payroll-Management-System/internal/salary"

type ReportFilterRequest struct {
	Department string `form:"department"`
	Year       string `form:"year"`
	Month      string `form:"month"`
	Search     string `form:"search"`
}

type OverviewRequest struct {
	ReportFilterRequest
	StatKey string `form:"stat_key"`
}

type TrendRequest struct {
	Year       string `form:"year"`
	Department string `form:"department"`
}

type DirectoryRequest struct {
	Year       string `form:"year"`
	Department string `form:"department"`
	Search     string `form:"search"`
}

type OverviewResponse struct {
	RecordCount int     `json:"recordCount"`
	Headcount   int     `json:"headcount"`
	GrossTotal  float64 `json:"grossTotal"`
	NetTotal    float64 `json:"netTotal"`
	StatKey     string  `json:"statKey,omitempty"`
	StatTotal   float64 `json:"statTotal,omitempty"`
}

type PersonSummaryResponse struct {
	EmployeeName string                      `json:"employeeName"`
	Department   string                      `json:"department"`
	Records      int                         `json:"records"`
	Sums         map[salary.FieldKey]float64 `json:"sums"`
}

type DepartmentSummaryResponse struct {
	Department string                      `json:"department"`
	Headcount  int                         `json:"headcount"`
	Sums       map[salary.FieldKey]float64 `json:"sums"`
}

type TrendBucketResponse struct {
	Label    string  `json:"label"`
	NetTotal float64 `json:"netTotal"`
}

type TrendResponse struct {
	Year    string                `json:"year"`
	Buckets []TrendBucketResponse `json:"buckets"`
}

type DirectoryEntryResponse struct {
	EmployeeName string  `json:"employeeName"`
	Department   string  `json:"department"`
	NetTotal     float64 `json:"netTotal"`
}
