package declapi

import (
	"fmt"
	"strconv"
)

// Status is a symbolic HTTP status name used as the response key of an
// endpoint. Numeric strings pass through unchanged, so StatusCode(204) and
// StatusNoContent resolve to the same response key.
type Status string

const (
	StatusOK                  Status = "ok"
	StatusCreated             Status = "created"
	StatusAccepted            Status = "accepted"
	StatusNoContent           Status = "no_content"
	StatusMovedPermanently    Status = "moved_permanently"
	StatusFound               Status = "found"
	StatusNotModified         Status = "not_modified"
	StatusBadRequest          Status = "bad_request"
	StatusUnauthorized        Status = "unauthorized"
	StatusForbidden           Status = "forbidden"
	StatusNotFound            Status = "not_found"
	StatusMethodNotAllowed    Status = "method_not_allowed"
	StatusConflict            Status = "conflict"
	StatusGone                Status = "gone"
	StatusUnprocessableEntity Status = "unprocessable_entity"
	StatusTooManyRequests     Status = "too_many_requests"
	StatusInternalServerError Status = "internal_server_error"
	StatusNotImplemented      Status = "not_implemented"
	StatusBadGateway          Status = "bad_gateway"
	StatusServiceUnavailable  Status = "service_unavailable"
)

var statusCodes = map[Status]int{
	StatusOK:                  200,
	StatusCreated:             201,
	StatusAccepted:            202,
	StatusNoContent:           204,
	StatusMovedPermanently:    301,
	StatusFound:               302,
	StatusNotModified:         304,
	StatusBadRequest:          400,
	StatusUnauthorized:        401,
	StatusForbidden:           403,
	StatusNotFound:            404,
	StatusMethodNotAllowed:    405,
	StatusConflict:            409,
	StatusGone:                410,
	StatusUnprocessableEntity: 422,
	StatusTooManyRequests:     429,
	StatusInternalServerError: 500,
	StatusNotImplemented:      501,
	StatusBadGateway:          502,
	StatusServiceUnavailable:  503,
}

// StatusCode wraps a raw numeric HTTP code as a Status.
func StatusCode(code int) Status {
	return Status(strconv.Itoa(code))
}

// Code resolves the status to its numeric HTTP code. Symbols outside the
// lookup table that are not already numeric are a hard error; this signals a
// declaration bug, not a runtime condition.
func (s Status) Code() (int, error) {
	if code, ok := statusCodes[s]; ok {
		return code, nil
	}
	if code, err := strconv.Atoi(string(s)); err == nil {
		return code, nil
	}
	return 0, fmt.Errorf("unknown status %q", string(s))
}
