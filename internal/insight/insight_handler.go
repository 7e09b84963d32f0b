package insight

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ipshare911/Payroll-Management-System/internal/report"
	"github.com/ipshare911/Payroll-Management-System/internal/shared/apperror"
	"github.com/ipshare911/Payroll-Management-System/internal/shared/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Analyze(c *gin.Context) {
	var req report.ReportFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters", err.Error())
		return
	}

	resp, err := h.service.Analyze(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
