package api

import (
	"errors"
	"net/http"
)

type Kind int

const (
	// KindOther covers transport failures, timeouts and every status the UI
	// has no specific handling for. They all render the same generic message.
	KindOther Kind = iota
	KindNotFound
	KindValidation
)

// Classification is the tagged result handlers switch on instead of
// re-inspecting errors at every call site.
type Classification struct {
	Kind    Kind
	Message string
	// Fields is the raw validationErrors payload for KindValidation; nil when
	// the 400 body carried none.
	Fields map[string]string
}

// Classify maps an error from a Client call into one of the three variants.
// Only errors carrying an HTTP response are inspected further.
func Classify(err error) Classification {
	var se *StatusError
	if !errors.As(err, &se) {
		return Classification{Kind: KindOther}
	}
	switch se.StatusCode {
	case http.StatusNotFound:
		return Classification{Kind: KindNotFound}
	case http.StatusBadRequest:
		msg := se.Message
		if msg == "" {
			msg = "Validation failed"
		}
		return Classification{Kind: KindValidation, Message: msg, Fields: se.ValidationErrors}
	default:
		return Classification{Kind: KindOther}
	}
}
