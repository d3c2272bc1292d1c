// Package apierror is the closed error taxonomy of the rides API. Every
// failed call resolves to exactly one *Error whose Kind callers can switch
// on; the kind is derived purely from the HTTP status range.
package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Kind is the error category discriminant.
type Kind int

const (
	// Unknown covers transport failures (no HTTP response, so no status)
	// and any status outside the 4xx/5xx ranges.
	Unknown Kind = iota
	// Client is a caller-fixable request problem (4xx).
	Client
	// Server is a vendor-side failure, potentially transient (5xx).
	Server
)

func (k Kind) String() string {
	switch k {
	case Client:
		return "client"
	case Server:
		return "server"
	default:
		return "unknown"
	}
}

// Error carries the fields shared by every error the API returns. Status is
// 0 when no HTTP response was obtained. Errors holds nested errors for
// multi-error payloads; they are owned by their parent.
type Error struct {
	Kind   Kind
	Status int
	Code   string
	Title  string
	Meta   map[string]any
	Errors []*Error
}

func (e *Error) Error() string {
	switch {
	case e.Status == 0 && e.Title != "":
		return fmt.Sprintf("rides: %s error: %s", e.Kind, e.Title)
	case e.Title != "":
		return fmt.Sprintf("rides: %s error (status %d): %s", e.Kind, e.Status, e.Title)
	case e.Status != 0:
		return fmt.Sprintf("rides: %s error (status %d)", e.Kind, e.Status)
	default:
		return fmt.Sprintf("rides: %s error", e.Kind)
	}
}

// IsClient reports whether err is a rides error of kind Client.
func IsClient(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == Client
}

// IsServer reports whether err is a rides error of kind Server.
func IsServer(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == Server
}

// Transport wraps a transport-level failure (no HTTP response obtained)
// into an Unknown-kind error with no status.
func Transport(err error) *Error {
	e := &Error{Kind: Unknown}
	if err != nil {
		e.Title = err.Error()
	}
	return e
}

// Classify parses body (if present) into the shared error fields and selects
// the kind from the status range. It never fails: an unparseable body simply
// yields an error carrying only the status-derived kind.
func Classify(status int, body []byte) *Error {
	var payload map[string]any
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err != nil {
			payload = nil
		}
	}
	return classifyObject(payload, status)
}

func classifyObject(payload map[string]any, status int) *Error {
	e := &Error{
		Kind:   kindFor(status),
		Status: status,
	}
	if payload == nil {
		return e
	}

	if code, ok := payload["code"].(string); ok {
		e.Code = code
	}

	// The API is inconsistent about where it puts the human-readable text;
	// message wins over title wins over error, first match only.
	for _, key := range []string{"message", "title", "error"} {
		if title, ok := payload[key].(string); ok {
			e.Title = title
			break
		}
	}

	if fields, ok := payload["fields"].(map[string]any); ok {
		e.Meta = fields
	} else if meta, ok := payload["meta"].(map[string]any); ok {
		e.Meta = meta
	}

	if nested, ok := payload["errors"].([]any); ok {
		for _, item := range nested {
			obj, ok := item.(map[string]any)
			if !ok {
				continue
			}
			// A nested object may carry its own status; fall back to the
			// parent's when it does not.
			nestedStatus := status
			if s, ok := obj["status"].(float64); ok {
				nestedStatus = int(s)
			}
			e.Errors = append(e.Errors, classifyObject(obj, nestedStatus))
		}
	}

	return e
}

func kindFor(status int) Kind {
	switch {
	case status >= 400 && status < 500:
		return Client
	case status >= 500 && status < 600:
		return Server
	default:
		return Unknown
	}
}
