package salary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func filterFixture() []SalaryRecord {
	return []SalaryRecord{
		{EmployeeName: "张三", Department: "基础地质所", Month: "2025-01"},
		{EmployeeName: "李四", Department: "规划所", Month: "2025-02"},
		{EmployeeName: "王五", Department: "基础地质所", Month: "2024-12"},
	}
}

func TestFilter_EmptyKeepsEverything(t *testing.T) {
	records := filterFixture()

	out := Filter{}.Apply(records)

	assert.Len(t, out, len(records))
}

func TestFilter_AllSentinelKeepsEveryDepartment(t *testing.T) {
	out := Filter{Department: "all"}.Apply(filterFixture())

	assert.Len(t, out, 3)
}

func TestFilter_YearIsPrefixMatch(t *testing.T) {
	out := Filter{Year: "2025"}.Apply(filterFixture())

	assert.Len(t, out, 2)
	for _, r := range out {
		assert.Contains(t, r.Month, "2025")
	}
}

func TestFilter_ConstraintsAreConjunctive(t *testing.T) {
	out := Filter{Department: "基础地质所", Year: "2025"}.Apply(filterFixture())

	assert.Len(t, out, 1)
	assert.Equal(t, "张三", out[0].EmployeeName)
}

func TestFilter_SearchMatchesNameOrDepartment(t *testing.T) {
	byName := Filter{Search: "李"}.Apply(filterFixture())
	byDept := Filter{Search: "规划"}.Apply(filterFixture())

	assert.Len(t, byName, 1)
	assert.Equal(t, "李四", byName[0].EmployeeName)
	assert.Len(t, byDept, 1)
	assert.Equal(t, "李四", byDept[0].EmployeeName)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	records := filterFixture()

	_ = Filter{Department: "规划所"}.Apply(records)

	assert.Equal(t, filterFixture(), records)
}
