package submission

import (
	"strings"
	"time"
)

// ============================================================
// DOMAIN ENTITY: Record
// ============================================================
// Record là dữ liệu của 1 lần submit blog form
// Nó là transient entity: được tạo mới cho mỗi submission,
// không có ID, không lưu DB, bị discard sau khi handler trả về
//
// INVARIANTS (enforced trước khi construct):
// - BlogContent: trimmed length > MinContentLength
// - TermsAccepted: phải là true
type Record struct {
	BlogTitle     string `json:"blogTitle"`
	AuthorName    string `json:"authorName"`
	Email         string `json:"email"`
	BlogContent   string `json:"blogContent"`
	Category      string `json:"category"`
	TermsAccepted bool   `json:"termsAccepted"`
}

// DisplayRecord là Record sau round trip + submissionDate
// Đây là non-destructive augmentation: Record gốc không bị sửa
type DisplayRecord struct {
	Record
	SubmissionDate string `json:"submissionDate"` // RFC3339 / ISO-8601
}

// MinContentLength: trimmed blog content phải DÀI HƠN giá trị này
// (strictly greater, boundary 25 vẫn bị reject)
const MinContentLength = 25

// Categories là option set cố định của select box trên page
// Server validate submission.category phải nằm trong set này
var Categories = []string{
	"Travel",
	"Technology",
	"Food",
	"Lifestyle",
	"Other",
}

// IsValidCategory checks membership in the fixed option set.
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// ============================================================
// FACTORY METHOD: NewRecord
// ============================================================
// NewRecord build Record từ field values hiện tại của form
// CHỈ được gọi sau khi cả 2 validation gates đã pass
//
// FLOW (giống browser đọc .value):
// 1. Trim 4 text fields (title, author, email, content)
// 2. Category lấy nguyên từ select (option set đã fix sẵn)
// 3. TermsAccepted lấy từ checkbox state
func NewRecord(title, author, email, content, category string, termsAccepted bool) Record {
	return Record{
		BlogTitle:     strings.TrimSpace(title),
		AuthorName:    strings.TrimSpace(author),
		Email:         strings.TrimSpace(email),
		BlogContent:   strings.TrimSpace(content),
		Category:      category,
		TermsAccepted: termsAccepted,
	}
}

// WithSubmissionDate derives the display record: all round-tripped fields
// plus exactly one extra field. Receiver is a value, caller's Record stays untouched.
func (r Record) WithSubmissionDate(at time.Time) DisplayRecord {
	return DisplayRecord{
		Record:         r,
		SubmissionDate: at.UTC().Format(time.RFC3339),
	}
}
