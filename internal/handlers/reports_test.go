package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func postReport(t *testing.T, h *Reports, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/reports", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	return rec
}

func TestReportCreateRejectsBadJSON(t *testing.T) {
	h := NewReports(nil, nil)

	rec := postReport(t, h, "{not json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestReportCreateRejectsMissingFields(t *testing.T) {
	h := NewReports(nil, nil)

	tests := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"no description", `{"product_name":"Acme Pain Reliever"}`},
		{"blank product name", `{"product_name":"   ","description":"seal broken"}`},
		{"bad email", `{"product_name":"Acme","description":"seal broken","email":"not-an-email"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postReport(t, h, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body["error"] == "" {
				t.Error("error envelope missing message")
			}
		})
	}
}

func TestUploadPhotoUnavailableWithoutStorage(t *testing.T) {
	h := NewReports(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/reports/photo", nil)
	rec := httptest.NewRecorder()
	h.UploadPhoto(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}
