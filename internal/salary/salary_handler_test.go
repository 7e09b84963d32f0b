package salary_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ipshare911/Payroll-Management-System/internal/salary"
	salaryerrors "github.com/ipshare911/Payroll-Management-System/internal/salary/errors"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeSalaryService struct {
	listFn   func(ctx context.Context, req salary.ListSalariesFilterRequest) ([]salary.SalaryRecordResponse, error)
	updateFn func(ctx context.Context, id string, req salary.UpdateSalaryRecordRequest) (salary.SalaryRecordResponse, error)
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeSalaryService) List(ctx context.Context, req salary.ListSalariesFilterRequest) ([]salary.SalaryRecordResponse, error) {
	return f.listFn(ctx, req)
}

func (f *fakeSalaryService) Update(ctx context.Context, id string, req salary.UpdateSalaryRecordRequest) (salary.SalaryRecordResponse, error) {
	return f.updateFn(ctx, id, req)
}

func (f *fakeSalaryService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func TestSalaryHandler_List_Paginates(t *testing.T) {
	records := make([]salary.SalaryRecordResponse, 0, 3)
	for i := 0; i < 3; i++ {
		records = append(records, salary.SalaryRecordResponse{ID: uuid.New().String(), EmployeeName: "张三"})
	}

	svc := &fakeSalaryService{
		listFn: func(ctx context.Context, req salary.ListSalariesFilterRequest) ([]salary.SalaryRecordResponse, error) {
			assert.Equal(t, "2025", req.Year)
			return records, nil
		},
	}

	h := salary.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/salaries?year=2025&page=2&page_size=2", nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var data []salary.SalaryRecordResponse
	assert.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data, 1)
}

func TestSalaryHandler_Update_MissingRequiredField(t *testing.T) {
	h := salary.NewHandler(&fakeSalaryService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"department":"规划所","month":"2025-01"}`
	c.Request = httptest.NewRequest(http.MethodPut, "/salaries/abc", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = []gin.Param{{Key: "id", Value: "abc"}}

	h.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
}

func TestSalaryHandler_Update_NotFound(t *testing.T) {
	svc := &fakeSalaryService{
		updateFn: func(ctx context.Context, id string, req salary.UpdateSalaryRecordRequest) (salary.SalaryRecordResponse, error) {
			return salary.SalaryRecordResponse{}, salaryerrors.ErrRecordNotFound
		},
	}

	h := salary.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employeeName":"张三","department":"规划所","month":"2025-01"}`
	id := uuid.New().String()
	c.Request = httptest.NewRequest(http.MethodPut, "/salaries/"+id, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = []gin.Param{{Key: "id", Value: id}}

	h.Update(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestSalaryHandler_Delete(t *testing.T) {
	id := uuid.New().String()
	svc := &fakeSalaryService{
		deleteFn: func(ctx context.Context, got string) error {
			assert.Equal(t, id, got)
			return nil
		},
	}

	h := salary.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/salaries/"+id, nil)
	c.Params = []gin.Param{{Key: "id", Value: id}}

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}
