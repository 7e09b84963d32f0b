package importer_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ipshare911/Payroll-Management-System/internal/importer"
	importererrors "github.com/ipshare911/Payroll-Management-System/internal/importer/errors"
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

type fakeImportService struct {
	importFn func(ctx context.Context, fileName string, data []byte) (*importer.ImportResultResponse, error)
}

func (f *fakeImportService) Import(ctx context.Context, fileName string, data []byte) (*importer.ImportResultResponse, error) {
	return f.importFn(ctx, fileName, data)
}

func multipartUpload(t *testing.T, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", fileName)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestImportHandler_Success(t *testing.T) {
	svc := &fakeImportService{
		importFn: func(ctx context.Context, fileName string, data []byte) (*importer.ImportResultResponse, error) {
			assert.Equal(t, "工资表.xlsx", fileName)
			assert.Equal(t, []byte("workbook-bytes"), data)
			return &importer.ImportResultResponse{FileName: fileName, ImportedRecords: 12}, nil
		},
	}

	h := importer.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, contentType := multipartUpload(t, "工资表.xlsx", []byte("workbook-bytes"))
	c.Request = httptest.NewRequest(http.MethodPost, "/salaries/import", body)
	c.Request.Header.Set("Content-Type", contentType)

	h.Import(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Ok)

	var data importer.ImportResultResponse
	assert.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 12, data.ImportedRecords)
}

func TestImportHandler_MissingFile(t *testing.T) {
	h := importer.NewHandler(&fakeImportService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/salaries/import", nil)

	h.Import(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImportHandler_ServiceErrorIsMapped(t *testing.T) {
	svc := &fakeImportService{
		importFn: func(ctx context.Context, fileName string, data []byte) (*importer.ImportResultResponse, error) {
			return nil, importererrors.ErrImportInProgress
		},
	}

	h := importer.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, contentType := multipartUpload(t, "salary.xlsx", []byte("x"))
	c.Request = httptest.NewRequest(http.MethodPost, "/salaries/import", body)
	c.Request.Header.Set("Content-Type", contentType)

	h.Import(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Ok)
	assert.Equal(t, "CONFLICT", env.Error.Code)
}
