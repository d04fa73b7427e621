package responder

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type submission struct {
	Email string `json:"email"`
}

func TestReadRequestBody(t *testing.T) {
	cases := []struct {
		name        string
		contentType string
		body        string
		wantOK      bool
		wantStatus  int
	}{
		{name: "json", contentType: "application/json", body: `{"email":"a@example.com"}`, wantOK: true},
		{name: "json with charset", contentType: "application/json; charset=utf-8", body: `{"email":"a@example.com"}`, wantOK: true},
		{name: "structured suffix", contentType: "application/merge-patch+json", body: `{"email":"a@example.com"}`, wantOK: true},
		{name: "no content type", body: `{"email":"a@example.com"}`, wantOK: true},
		{name: "form", contentType: "application/x-www-form-urlencoded", body: "email=a", wantStatus: http.StatusUnsupportedMediaType},
		{name: "invalid content type", contentType: "/;", body: `{}`, wantStatus: http.StatusUnsupportedMediaType},
		{name: "malformed", contentType: "application/json", body: `{"email":`, wantStatus: http.StatusBadRequest},
		{name: "empty", contentType: "application/json", body: ``, wantStatus: http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var logs bytes.Buffer
			r := newTestResponder(&logs)

			req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(tc.body))
			if tc.contentType != "" {
				req.Header.Set("Content-Type", tc.contentType)
			}
			rec := httptest.NewRecorder()

			var got submission
			ok := r.ReadRequestBody(rec, req, &got)

			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, "a@example.com", got.Email)
				assert.Equal(t, 0, rec.Body.Len())
				return
			}
			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, problemContentType, rec.Header().Get("Content-Type"))
		})
	}
}
