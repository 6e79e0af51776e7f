package submission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSubmitRequest() SubmitRequest {
	return SubmitRequest{
		BlogTitle:     "My Trip",
		AuthorName:    "Jane",
		Email:         "jane@x.com",
		BlogContent:   "This is a sufficiently long blog body.",
		Category:      "Travel",
		TermsAccepted: true,
	}
}

func TestSubmitRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *SubmitRequest)
		wantErr bool
	}{
		{
			name:    "valid request",
			mutate:  func(r *SubmitRequest) {},
			wantErr: false,
		},
		{
			name:    "missing title",
			mutate:  func(r *SubmitRequest) { r.BlogTitle = "" },
			wantErr: true,
		},
		{
			name:    "missing author",
			mutate:  func(r *SubmitRequest) { r.AuthorName = "" },
			wantErr: true,
		},
		{
			name:    "invalid email",
			mutate:  func(r *SubmitRequest) { r.Email = "not-an-email" },
			wantErr: true,
		},
		{
			name:    "category outside the option set",
			mutate:  func(r *SubmitRequest) { r.Category = "Sports" },
			wantErr: true,
		},
		{
			// content length and terms are the controller's gates,
			// not structural validation - Validate must not reject them
			name: "short content and unchecked terms pass structural validation",
			mutate: func(r *SubmitRequest) {
				r.BlogContent = "short"
				r.TermsAccepted = false
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSubmitRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
