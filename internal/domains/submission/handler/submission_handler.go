package handler

import (
	"net/http"

	"blogform-backend/internal/domains/submission"
	"blogform-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type SubmissionHandler struct {
	service submission.Service
}

func NewSubmissionHandler(svc submission.Service) *SubmissionHandler {
	return &SubmissionHandler{
		service: svc,
	}
}

// ========== Submit: POST /v1/submissions ==========
// Đây là submission event của form - handler chạy synchronous,
// trả về là xong, không giữ state gì giữa các lần submit
func (h *SubmissionHandler) Submit(c *gin.Context) {
	// ========== Parse Request ==========
	var req submission.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	// ========== Structural Validation ==========
	// Mirror các native HTML constraints (required, email, option set)
	// Chạy TRƯỚC controller gates, giống browser enforce native
	// constraints trước khi submit handler chạy
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid submission", err)
		return
	}

	// ========== Call Service ==========
	resp, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		statusCode := submission.GetHTTPStatusCode(err)
		response.ErrorResponse(c, statusCode, submission.GetErrorCode(err), err.Error())
		return
	}

	// ========== Success Response ==========
	// 201 Created + fixed success notice
	response.SuccessWithMessage(c, http.StatusCreated, submission.MsgSubmissionAccepted, resp)
}

// ========== Stats: GET /v1/submissions/stats ==========
func (h *SubmissionHandler) Stats(c *gin.Context) {
	resp := h.service.Stats(c.Request.Context())
	response.Success(c, http.StatusOK, resp)
}
