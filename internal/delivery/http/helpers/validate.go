package helpers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

// Request bodies in this API are small JSON documents; anything bigger is a
// client error.
const maxBodyBytes = 1 << 20

// Validator is implemented by request DTOs that carry field validation.
// Validate returns one message per problem; empty means valid.
type Validator interface {
	Validate() []string
}

// DecodeAndValidate reads the request body into dest, rejecting unknown
// fields, and runs dest's Validate when it has one. On any failure it writes
// a 400 envelope and returns false; the caller must then return without
// writing anything else.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		msg := err.Error()
		if errors.Is(err, io.EOF) {
			msg = "request body is empty"
		}
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, msg)
		return false
	}
	if v, ok := dest.(Validator); ok {
		if problems := v.Validate(); len(problems) > 0 {
			WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, strings.Join(problems, "; "))
			return false
		}
	}
	return true
}
