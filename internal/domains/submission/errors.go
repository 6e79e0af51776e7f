package submission

import (
	"errors"
	"net/http"
)

// ============================================================
// SENTINEL ERRORS
// ============================================================
// Mỗi validation gate có 1 sentinel error riêng với fixed message
// (message này chính là "notice" hiển thị cho user)
//
// Check bằng errors.Is():
//   if errors.Is(err, ErrContentTooShort) { ... }
var (
	// ErrContentTooShort: gate 1 - trimmed content length <= 25
	ErrContentTooShort = errors.New("blog content must be longer than 25 characters")

	// ErrTermsNotAccepted: gate 2 - terms checkbox chưa tick
	ErrTermsNotAccepted = errors.New("you must accept the terms and conditions before submitting")

	// ErrRoundTripMismatch: serialize/parse round trip cho ra record khác input
	// Đây là internal invariant violation, không phải user error
	ErrRoundTripMismatch = errors.New("submission record did not survive the serialization round trip")
)

// Fixed success notice.
const MsgSubmissionAccepted = "blog submitted successfully"

// GetHTTPStatusCode maps domain error sang HTTP status
// Validation gate failures => 422 (request hợp lệ về structure, fail business rule)
// Round trip mismatch => 500 (lỗi internal, user không sửa được)
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrContentTooShort), errors.Is(err, ErrTermsNotAccepted):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrRoundTripMismatch):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// GetErrorCode maps domain error sang machine-readable code trong response envelope.
func GetErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrContentTooShort):
		return "CONTENT_TOO_SHORT"
	case errors.Is(err, ErrTermsNotAccepted):
		return "TERMS_NOT_ACCEPTED"
	case errors.Is(err, ErrRoundTripMismatch):
		return "ROUND_TRIP_MISMATCH"
	default:
		return "BAD_REQUEST"
	}
}
