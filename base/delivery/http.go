package delivery

import (
	"context"
	"errors"
	"net/http"
	"reflect"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/nftpersona/domain"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
	// Type names the failure kind, only set on unexpected errors
	Type string `json:"type,omitempty"`
}

// MakeJsonResp writes data as is on success. An error or a string with a
// failing status is wrapped into ErrorResponse, domain.ErrNotFound turns
// into 404.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		if errors.Is(err, domain.ErrNotFound) {
			status = http.StatusNotFound
		}
		data = err.Error()
	}

	if msg, ok := data.(string); ok && status >= 400 {
		return c.JSON(status, ErrorResponse{Error: msg})
	}

	return c.JSON(status, data)
}

// MakeTypedErrorResp writes a 500 exposing the message and kind of err
func MakeTypedErrorResp(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: err.Error(),
		Type:  ErrorType(err),
	})
}

type typer interface {
	Type() string
}

// ErrorType names the kind of err. Errors with a Type method name
// themselves, deadlines are TimeoutError, anything else is the type name of
// the innermost wrapped error.
func ErrorType(err error) string {
	if err == nil {
		return ""
	}

	var t typer
	if errors.As(err, &t) {
		return t.Type()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "TimeoutError"
	}

	for {
		inner := errors.Unwrap(err)
		if inner == nil {
			break
		}
		err = inner
	}

	rt := reflect.TypeOf(err)
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	if rt.Name() == "" {
		return "Error"
	}
	return rt.Name()
}
