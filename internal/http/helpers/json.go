// Package helpers contiene utilidades compartidas por los controllers.
package helpers

import (
	"encoding/json"
	"net/http"
	"time"
)

// ISOTimeLayout es el formato ISO-8601 UTC con milisegundos de las respuestas.
const ISOTimeLayout = "2006-01-02T15:04:05.000Z"

// ISOTime formatea t en UTC con ISOTimeLayout.
func ISOTime(t time.Time) string {
	return t.UTC().Format(ISOTimeLayout)
}

// WriteJSON escribe una respuesta JSON estándar.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
