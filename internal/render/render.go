// Package render writes response payloads as JSON or XML depending on the
// request's format query parameter. The payload content is identical either
// way; only the container syntax differs.
package render

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/herodex/herodex/internal/model"
)

// Respond serializes v and writes it with the given status. When the format
// query parameter equals "xml" (case-insensitive) the payload is rendered as
// an XML document rooted at <response>; every other value, including an
// absent parameter, yields JSON.
func Respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	if strings.EqualFold(r.URL.Query().Get("format"), "xml") {
		body, err := MarshalXML(v)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
			return
		}
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(status)
		w.Write(body)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Error writes a standard error payload.
func Error(w http.ResponseWriter, r *http.Request, status int, msg string) {
	Respond(w, r, status, model.ErrorResponse{Error: msg})
}

// Message writes a standard message payload, used for auth failures and
// mutation outcomes.
func Message(w http.ResponseWriter, r *http.Request, status int, msg string) {
	Respond(w, r, status, model.MessageResponse{Message: msg})
}
