package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"blogform-backend/internal/domains/submission"
	"blogform-backend/pkg/logger"

	"github.com/microcosm-cc/bluemonday"
)

type submissionServiceImpl struct {
	counter   *submission.Counter
	sanitizer *bluemonday.Policy
}

func NewSubmissionService(counter *submission.Counter) submission.Service {
	return &submissionServiceImpl{
		counter: counter,
		// UGC policy: blog content là user-generated, strip mọi markup nguy hiểm
		// trước khi content được echo lại trong display record
		sanitizer: bluemonday.UGCPolicy(),
	}
}

func (s *submissionServiceImpl) Submit(ctx context.Context, req *submission.SubmitRequest) (*submission.SubmitResponse, error) {
	// Safety check: req should be validated by handler
	// But defensive programming: check anyway
	if req == nil {
		return nil, fmt.Errorf("submit: invalid request")
	}

	// ========== STEP 1: Validation Gates (fixed order) ==========
	// Gate 1 chạy TRƯỚC gate 2, fail là dừng ngay (short-circuit)
	// Không có partial record nào được build khi gate fail
	if err := validateContentLength(req.BlogContent); err != nil {
		logger.Info("submission rejected", map[string]interface{}{
			"gate":   "content_length",
			"length": utf8.RuneCountInString(strings.TrimSpace(req.BlogContent)),
		})
		return nil, err
	}

	if err := validateTermsAccepted(req.TermsAccepted); err != nil {
		logger.Info("submission rejected", map[string]interface{}{
			"gate": "terms_accepted",
		})
		return nil, err
	}

	// ========== STEP 2: Build Record ==========
	// Chỉ chạy tới đây khi CẢ 2 gates đã pass
	record := s.buildRecord(req)

	// ========== STEP 3: Round Trip ==========
	// Serialize ra JSON rồi parse lại ngay - kết quả phải bằng input
	// field-for-field. Đây là idempotence contract của pipeline,
	// không phải behavioral transform.
	roundTripped, err := roundTrip(record)
	if err != nil {
		logger.Error("submission round trip failed", err)
		return nil, err
	}

	// ========== STEP 4: Derive Display Record ==========
	// Round-tripped record + submissionDate, record gốc không bị sửa
	display := roundTripped.WithSubmissionDate(time.Now())

	// ========== STEP 5: Increment Counter ==========
	// Chỉ successful submissions mới được đếm
	total := s.counter.Increment()

	logger.Info("submission accepted", map[string]interface{}{
		"category":          record.Category,
		"author":            record.AuthorName,
		"total_submissions": total,
	})

	return &submission.SubmitResponse{
		Submission:       display,
		TotalSubmissions: total,
	}, nil
}

func (s *submissionServiceImpl) Stats(ctx context.Context) *submission.StatsResponse {
	return &submission.StatsResponse{
		TotalSubmissions: s.counter.Value(),
	}
}

// ========================================
// VALIDATION GATES
// ========================================

// validateContentLength - gate 1
// Trimmed content phải dài hơn MinContentLength (25) ký tự
// Đếm theo rune, không phải byte (giống string length trên browser)
func validateContentLength(content string) error {
	trimmed := strings.TrimSpace(content)
	if utf8.RuneCountInString(trimmed) <= submission.MinContentLength {
		return submission.ErrContentTooShort
	}
	return nil
}

// validateTermsAccepted - gate 2
func validateTermsAccepted(accepted bool) error {
	if !accepted {
		return submission.ErrTermsNotAccepted
	}
	return nil
}

// ========================================
// RECORD PIPELINE
// ========================================

// buildRecord đọc field values từ request và construct record
// Content được sanitize SAU khi gate 1 đã đo độ dài trên raw input
// (browser cũng validate trên raw textarea value)
func (s *submissionServiceImpl) buildRecord(req *submission.SubmitRequest) submission.Record {
	return submission.NewRecord(
		req.BlogTitle,
		req.AuthorName,
		req.Email,
		s.sanitizer.Sanitize(req.BlogContent),
		req.Category,
		req.TermsAccepted,
	)
}

// roundTrip serialize record ra JSON và parse lại ngay
// Record chỉ chứa string + bool nên so sánh được bằng ==
func roundTrip(record submission.Record) (submission.Record, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return submission.Record{}, fmt.Errorf("serialize submission: %w", err)
	}

	var decoded submission.Record
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return submission.Record{}, fmt.Errorf("parse submission: %w", err)
	}

	if decoded != record {
		return submission.Record{}, submission.ErrRoundTripMismatch
	}

	// Tương đương console.log của page gốc: log payload đã round trip
	logger.Info("submission round trip verified", map[string]interface{}{
		"payload": string(payload),
	})

	return decoded, nil
}
