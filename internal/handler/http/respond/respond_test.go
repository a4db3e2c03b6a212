package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"blog-backend/internal/common/pagination"
	"blog-backend/internal/handler/http/respond"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v\n%s", err, rec.Body.String())
	}
	return body
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.Success(rec, http.StatusOK, map[string]string{"title": "hello"})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	body := decode(t, rec)
	if body["success"] != true {
		t.Errorf("success = %v, want true", body["success"])
	}
	if _, ok := body["meta"]; ok {
		t.Error("meta should be omitted without pagination")
	}
	if _, ok := body["error"]; ok {
		t.Error("error should be omitted on success")
	}
}

func TestSuccessWithMeta(t *testing.T) {
	rec := httptest.NewRecorder()
	meta := pagination.Metadata{TotalItems: 5, Offset: 0, Limit: 2, TotalPages: 3}
	respond.SuccessWithMeta(rec, http.StatusOK, []string{"a", "b"}, meta)

	body := decode(t, rec)
	if body["success"] != true {
		t.Errorf("success = %v, want true", body["success"])
	}
	m, ok := body["meta"].(map[string]any)
	if !ok {
		t.Fatalf("meta missing: %v", body)
	}
	if m["total_items"] != float64(5) || m["total_pages"] != float64(3) {
		t.Errorf("meta = %v, want total_items=5 total_pages=3", m)
	}
	if m["offset"] != float64(0) || m["limit"] != float64(2) {
		t.Errorf("meta = %v, want offset=0 limit=2", m)
	}
}

func TestError_DataIsNull(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.Error(rec, http.StatusBadRequest, errors.New("limit must be between 1 and 100"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	body := decode(t, rec)
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
	if body["error"] != "limit must be between 1 and 100" {
		t.Errorf("error = %v", body["error"])
	}
	data, ok := body["data"]
	if !ok {
		t.Fatal("data field must be present on errors")
	}
	if data != nil {
		t.Errorf("data = %v, want null", data)
	}
}

func TestSafeError_PassesValidationMessages(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.SafeError(rec, http.StatusBadRequest, errors.New("order_by must be one of: id, title"))

	body := decode(t, rec)
	if body["error"] != "order_by must be one of: id, title" {
		t.Errorf("validation message should pass through, got %v", body["error"])
	}
}

func TestSafeError_MasksInternalErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.SafeError(rec, http.StatusInternalServerError,
		errors.New("dial tcp: connect to postgres://user:hunter2@db:5432 refused"))

	body := decode(t, rec)
	if body["error"] != "internal server error" {
		t.Errorf("internal error leaked: %v", body["error"])
	}
}

func TestAppSafeError(t *testing.T) {
	rec := httptest.NewRecorder()
	appErr := respond.NewAppError(http.StatusNotFound, "post not found", errors.New("row scan failed"))
	respond.AppSafeError(rec, http.StatusInternalServerError, appErr)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want AppError code 404", rec.Code)
	}
	body := decode(t, rec)
	if body["error"] != "post not found" {
		t.Errorf("error = %v, want user message", body["error"])
	}
}
