package salary

type UpdateSalaryRecordRequest struct {
	EmployeeName string `json:"employeeName" binding:"required"`
	Department   string `json:"department" binding:"required"`
	Month        string `json:"month" binding:"required"`

	PositionSalary             float64 `json:"positionSalary"`
	BaseSalary                 float64 `json:"baseSalary"`
	RetentionAllowance         float64 `json:"retentionAllowance"`
	PerformanceSalary          float64 `json:"performanceSalary"`
	InternalAuditFee           float64 `json:"internalAuditFee"`
	CertificateSubsidy         float64 `json:"certificateSubsidy"`
	AnnualLeavePay             float64 `json:"annualLeavePay"`
	PublicityPerformance       float64 `json:"publicityPerformance"`
	BranchAuditFee             float64 `json:"branchAuditFee"`
	ResearchPerformance        float64 `json:"researchPerformance"`
	OtherPerformanceAccounting float64 `json:"otherPerformanceAccounting"`
	Other                      float64 `json:"other"`
}

type ListSalariesFilterRequest struct {
	Department string `form:"department"`
	Year       string `form:"year"`
	Month      string `form:"month"`
	Search     string `form:"search"`
}

// SalaryRecordResponse mirrors the entity; totals are always the served
// derived values, never client-supplied.
type SalaryRecordResponse struct {
	ID           string `json:"id"`
	Sequence     int    `json:"sequence"`
	EmployeeName string `json:"employeeName"`
	Department   string `json:"department"`
	Month        string `json:"month"`

	PositionSalary             float64 `json:"positionSalary"`
	BaseSalary                 float64 `json:"baseSalary"`
	RetentionAllowance         float64 `json:"retentionAllowance"`
	PerformanceSalary          float64 `json:"performanceSalary"`
	InternalAuditFee           float64 `json:"internalAuditFee"`
	CertificateSubsidy         float64 `json:"certificateSubsidy"`
	AnnualLeavePay             float64 `json:"annualLeavePay"`
	PublicityPerformance       float64 `json:"publicityPerformance"`
	BranchAuditFee             float64 `json:"branchAuditFee"`
	ResearchPerformance        float64 `json:"researchPerformance"`
	OtherPerformanceAccounting float64 `json:"otherPerformanceAccounting"`
	Other                      float64 `json:"other"`

	Total    float64 `json:"total"`
	NetTotal float64 `json:"netTotal"`
}
