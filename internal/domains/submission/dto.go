package submission

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ========================================
// REQUEST DTOs
// ========================================

// SubmitRequest - payload của POST /submissions
// Field names khớp với id của input trên page
//
// NOTE: BlogContent và TermsAccepted KHÔNG có binding/ozzo rules ở đây
// Hai field đó là validation gates của controller (chạy theo thứ tự,
// short-circuit, với fixed notice message riêng) - không phải structural
// validation. Validate() ở đây chỉ mirror các native HTML constraints
// của form (required, type=email, select option set).
type SubmitRequest struct {
	BlogTitle     string `json:"blogTitle"`
	AuthorName    string `json:"authorName"`
	Email         string `json:"email"`
	BlogContent   string `json:"blogContent"`
	Category      string `json:"category"`
	TermsAccepted bool   `json:"termsAccepted"`
}

func (r SubmitRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BlogTitle,
			validation.Required.Error("blog title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.AuthorName,
			validation.Required.Error("author name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.In(categoryOptions()...).Error("category must be one of the listed options"),
		),
	)
}

// categoryOptions converts the fixed set for ozzo's In rule.
func categoryOptions() []interface{} {
	opts := make([]interface{}, len(Categories))
	for i, c := range Categories {
		opts[i] = c
	}
	return opts
}

// ========================================
// RESPONSE DTOs
// ========================================

// SubmitResponse trả về sau 1 submission thành công
type SubmitResponse struct {
	Submission DisplayRecord `json:"submission"`
	// TotalSubmissions: giá trị counter SAU khi increment
	TotalSubmissions int64 `json:"totalSubmissions"`
}

// StatsResponse - GET /submissions/stats
type StatsResponse struct {
	TotalSubmissions int64 `json:"totalSubmissions"`
}
