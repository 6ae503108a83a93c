package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestISOTime(t *testing.T) {
	loc := time.FixedZone("ART", -3*60*60)
	at := time.Date(2024, 3, 7, 11, 5, 9, 42_000_000, loc)
	assert.Equal(t, "2024-03-07T14:05:09.042Z", ISOTime(at))
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusCreated, map[string]bool{"ok": true})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}
