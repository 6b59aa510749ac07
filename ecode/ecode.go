// Package ecode defines standardized business error codes for API responses.
//
// Codes follow a negative numbering scheme mirrored on HTTP semantics:
//
//	0     OK
//	-400  invalid request
//	-401  invalid parameters
//	-404  resource not found
//	-409  resource conflict
//	-500  internal server error
//	-503  service unavailable
package ecode

import "net/http"

const (
	OK                 = 0
	RequestErr         = -400
	ParamErr           = -401
	NotFound           = -404
	Conflict           = -409
	ServerErr          = -500
	ServiceUnavailable = -503
)

var messages = map[int]string{
	OK:                 "success",
	RequestErr:         "Invalid request",
	ParamErr:           "Invalid parameters",
	NotFound:           "Resource not found",
	Conflict:           "Resource conflict",
	ServerErr:          "Internal server error",
	ServiceUnavailable: "Service unavailable",
}

// Text returns the human-readable message for a code.
func Text(code int) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return messages[ServerErr]
}

// ToHTTPStatus maps a business code to an HTTP status code.
func ToHTTPStatus(code int) int {
	switch code {
	case OK:
		return http.StatusOK
	case RequestErr, ParamErr:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case ServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
