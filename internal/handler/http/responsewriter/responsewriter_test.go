package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWrap_Defaults(t *testing.T) {
	w := Wrap(httptest.NewRecorder())

	if w.StatusCode() != http.StatusOK {
		t.Errorf("default status = %d, want 200", w.StatusCode())
	}
	if w.BytesWritten() != 0 {
		t.Errorf("default bytes = %d, want 0", w.BytesWritten())
	}
}

func TestWriteHeader_RecordsFirstCallOnly(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	w.WriteHeader(http.StatusNotFound)
	w.WriteHeader(http.StatusInternalServerError)

	if w.StatusCode() != http.StatusNotFound {
		t.Errorf("status = %d, want first write 404", w.StatusCode())
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("underlying status = %d, want 404", rec.Code)
	}
}

func TestWrite_RecordsBytesAndImplicit200(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	n, err := w.Write([]byte(`{"success":true}`))
	if err != nil {
		t.Fatalf("Write err=%v", err)
	}
	if n != 16 || w.BytesWritten() != 16 {
		t.Errorf("bytes = %d/%d, want 16", n, w.BytesWritten())
	}
	if w.StatusCode() != http.StatusOK {
		t.Errorf("implicit status = %d, want 200", w.StatusCode())
	}
}

func TestUnwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	if w.Unwrap() != rec {
		t.Error("Unwrap should return the underlying writer")
	}
}
