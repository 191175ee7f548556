package delivery

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/x-xyz/nftpersona/domain"
	"golang.org/x/xerrors"
)

type typedErr struct{}

func (typedErr) Error() string { return "typed" }
func (typedErr) Type() string  { return "overloaded_error" }

type plainErr struct{ msg string }

func (e *plainErr) Error() string { return e.msg }

func TestErrorType(t *testing.T) {
	req := require.New(t)

	req.Equal("", ErrorType(nil))
	req.Equal("overloaded_error", ErrorType(typedErr{}))
	req.Equal("overloaded_error", ErrorType(xerrors.Errorf("chat: %w", typedErr{})))
	req.Equal("TimeoutError", ErrorType(xerrors.Errorf("call: %w", context.DeadlineExceeded)))
	req.Equal("plainErr", ErrorType(xerrors.Errorf("a: %w", xerrors.Errorf("b: %w", &plainErr{"x"}))))
	req.Equal("errorString", ErrorType(errors.New("boom")))
}

func TestMakeJsonResp(t *testing.T) {
	cases := []struct {
		Desc   string
		Status int
		Data   interface{}
		Code   int
		Body   string
	}{
		{
			Desc:   "success passes data as is",
			Status: http.StatusOK,
			Data:   map[string][]string{"chains": {"ethereum"}},
			Code:   http.StatusOK,
			Body:   `{"chains":["ethereum"]}`,
		},
		{
			Desc:   "message",
			Status: http.StatusBadRequest,
			Data:   "Missing user input",
			Code:   http.StatusBadRequest,
			Body:   `{"error":"Missing user input"}`,
		},
		{
			Desc:   "not found error",
			Status: http.StatusInternalServerError,
			Data:   xerrors.Errorf("nft: %w", domain.ErrNotFound),
			Code:   http.StatusNotFound,
			Body:   `{"error":"nft: Your requested Item is not found"}`,
		},
	}

	for _, c := range cases {
		e := echo.New()
		rec := httptest.NewRecorder()
		ec := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		require.NoError(t, MakeJsonResp(ec, c.Status, c.Data), c.Desc)
		require.Equal(t, c.Code, rec.Code, c.Desc)
		require.JSONEq(t, c.Body, rec.Body.String(), c.Desc)
	}
}

func TestMakeTypedErrorResp(t *testing.T) {
	req := require.New(t)

	e := echo.New()
	rec := httptest.NewRecorder()
	ec := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	req.NoError(MakeTypedErrorResp(ec, xerrors.Errorf("chat reply: %w", typedErr{})))
	req.Equal(http.StatusInternalServerError, rec.Code)
	req.JSONEq(`{"error":"chat reply: typed","type":"overloaded_error"}`, rec.Body.String())
}
