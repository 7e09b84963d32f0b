package salary

// FieldKey identifies a numeric field of SalaryRecord on the wire and in
// column-selection requests.
type FieldKey string

const (
	FieldPositionSalary             FieldKey = "positionSalary"
	FieldBaseSalary                 FieldKey = "baseSalary"
	FieldRetentionAllowance         FieldKey = "retentionAllowance"
	FieldPerformanceSalary          FieldKey = "performanceSalary"
	FieldInternalAuditFee           FieldKey = "internalAuditFee"
	FieldCertificateSubsidy         FieldKey = "certificateSubsidy"
	FieldAnnualLeavePay             FieldKey = "annualLeavePay"
	FieldPublicityPerformance       FieldKey = "publicityPerformance"
	FieldBranchAuditFee             FieldKey = "branchAuditFee"
	FieldResearchPerformance        FieldKey = "researchPerformance"
	FieldOtherPerformanceAccounting FieldKey = "otherPerformanceAccounting"
	FieldOther                      FieldKey = "other"
	FieldTotal                      FieldKey = "total"
	FieldNetTotal                   FieldKey = "netTotal"
)

// Spreadsheet header tokens shared by the importer and the exporter.
const (
	LabelName       = "姓名"
	LabelDepartment = "部门"
	LabelMonth      = "月份"

	LabelTotal    = "合计"
	LabelNetTotal = "实发合计"

	// DefaultDepartment is the sentinel for rows without a department cell.
	DefaultDepartment = "其他"
)

// FieldSpec binds a canonical numeric field to its display label, the
// ordered spreadsheet header labels that may carry it (canonical first),
// and typed accessors. Adding a synonym is a one-line table change.
type FieldSpec struct {
	Key      FieldKey
	Label    string
	Synonyms []string
	Get      func(r *SalaryRecord) float64
	Set      func(r *SalaryRecord, v float64)
}

// Components lists the twelve component fields in schema order. Total and
// NetTotal are derived and intentionally absent here.
var Components = []FieldSpec{
	{
		Key: FieldPositionSalary, Label: "岗位工资",
		Synonyms: []string{"岗位工资"},
		Get:      func(r *SalaryRecord) float64 { return r.PositionSalary },
		Set:      func(r *SalaryRecord, v float64) { r.PositionSalary = v },
	},
	{
		Key: FieldBaseSalary, Label: "基本工资",
		Synonyms: []string{"基本工资"},
		Get:      func(r *SalaryRecord) float64 { return r.BaseSalary },
		Set:      func(r *SalaryRecord, v float64) { r.BaseSalary = v },
	},
	{
		Key: FieldRetentionAllowance, Label: "保留津贴",
		Synonyms: []string{"保留津贴"},
		Get:      func(r *SalaryRecord) float64 { return r.RetentionAllowance },
		Set:      func(r *SalaryRecord, v float64) { r.RetentionAllowance = v },
	},
	{
		Key: FieldPerformanceSalary, Label: "绩效工资",
		Synonyms: []string{"绩效工资"},
		Get:      func(r *SalaryRecord) float64 { return r.PerformanceSalary },
		Set:      func(r *SalaryRecord, v float64) { r.PerformanceSalary = v },
	},
	{
		Key: FieldInternalAuditFee, Label: "内审费",
		Synonyms: []string{"内审费"},
		Get:      func(r *SalaryRecord) float64 { return r.InternalAuditFee },
		Set:      func(r *SalaryRecord, v float64) { r.InternalAuditFee = v },
	},
	{
		Key: FieldCertificateSubsidy, Label: "证书补贴",
		Synonyms: []string{"职业资格证书补贴", "证书补贴"},
		Get:      func(r *SalaryRecord) float64 { return r.CertificateSubsidy },
		Set:      func(r *SalaryRecord, v float64) { r.CertificateSubsidy = v },
	},
	{
		Key: FieldAnnualLeavePay, Label: "未休年假",
		Synonyms: []string{"未休年假工资", "年假工资", "未休年假"},
		Get:      func(r *SalaryRecord) float64 { return r.AnnualLeavePay },
		Set:      func(r *SalaryRecord, v float64) { r.AnnualLeavePay = v },
	},
	{
		Key: FieldPublicityPerformance, Label: "宣传绩效",
		Synonyms: []string{"宣传绩效"},
		Get:      func(r *SalaryRecord) float64 { return r.PublicityPerformance },
		Set:      func(r *SalaryRecord, v float64) { r.PublicityPerformance = v },
	},
	{
		Key: FieldBranchAuditFee, Label: "分院内审",
		Synonyms: []string{"分院内审费", "分院内审"},
		Get:      func(r *SalaryRecord) float64 { return r.BranchAuditFee },
		Set:      func(r *SalaryRecord, v float64) { r.BranchAuditFee = v },
	},
	{
		Key: FieldResearchPerformance, Label: "科研绩效",
		Synonyms: []string{"科研绩效"},
		Get:      func(r *SalaryRecord) float64 { return r.ResearchPerformance },
		Set:      func(r *SalaryRecord, v float64) { r.ResearchPerformance = v },
	},
	{
		Key: FieldOtherPerformanceAccounting, Label: "走账绩效",
		Synonyms: []string{"其他绩效（走账）", "走账绩效"},
		Get:      func(r *SalaryRecord) float64 { return r.OtherPerformanceAccounting },
		Set:      func(r *SalaryRecord, v float64) { r.OtherPerformanceAccounting = v },
	},
	{
		Key: FieldOther, Label: "其他",
		Synonyms: []string{"其他"},
		Get:      func(r *SalaryRecord) float64 { return r.Other },
		Set:      func(r *SalaryRecord, v float64) { r.Other = v },
	},
}

var fieldIndex = buildFieldIndex()

func buildFieldIndex() map[FieldKey]FieldSpec {
	idx := make(map[FieldKey]FieldSpec, len(Components)+2)
	for _, spec := range Components {
		idx[spec.Key] = spec
	}
	idx[FieldTotal] = FieldSpec{
		Key: FieldTotal, Label: LabelTotal,
		Get: func(r *SalaryRecord) float64 { return r.Total },
	}
	idx[FieldNetTotal] = FieldSpec{
		Key: FieldNetTotal, Label: LabelNetTotal,
		Get: func(r *SalaryRecord) float64 { return r.NetTotal },
	}
	return idx
}

// FieldByKey resolves a FieldKey to its spec; ok is false for unknown keys,
// so callers never fall through to an unchecked cast.
func FieldByKey(key FieldKey) (FieldSpec, bool) {
	spec, ok := fieldIndex[key]
	return spec, ok
}

// ExportColumns returns the full selectable column set in display order:
// the twelve components followed by the derived totals.
func ExportColumns() []FieldSpec {
	cols := make([]FieldSpec, 0, len(Components)+2)
	cols = append(cols, Components...)
	cols = append(cols, fieldIndex[FieldTotal], fieldIndex[FieldNetTotal])
	return cols
}

// ComputeTotals recomputes the derived fields from the twelve components.
// Total is the plain sum; NetTotal excludes the pass-through accounting
// component, i.e. the amount actually disbursed.
func ComputeTotals(r *SalaryRecord) {
	var sum float64
	for i := range Components {
		sum += Components[i].Get(r)
	}
	r.Total = sum
	r.NetTotal = sum - r.OtherPerformanceAccounting
}
