package net

import (
	"net/http"

	perr "prlens/internal/platform/errors"
)

// Envelope is the body of every API response
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
	Meta       any            `json:"meta,omitempty"`
}

// Paged is implemented by list results that carry page metadata;
// OK lifts the items into data and the metadata into meta
type Paged interface {
	PageItems() any
	PageMeta() any
}

// OK builds a success envelope with the given status
func OK(status int, data any, reqID string) Envelope {
	env := Envelope{StatusCode: status, Status: http.StatusText(status), RequestID: reqID, Data: data}
	if p, ok := data.(Paged); ok {
		env.Data, env.Meta = p.PageItems(), p.PageMeta()
	}
	return env
}

// Error builds an error envelope; the status comes from the error code
func Error(err error, reqID string) Envelope {
	if err == nil {
		return OK(http.StatusOK, nil, reqID)
	}
	status, w := perr.HTTP(err)
	return Envelope{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       w.Code,
		Error:      w.Message,
		Field:      w.Field,
		RequestID:  reqID,
	}
}
