package webapi

import (
	"errors"
	"fmt"
	"github.com/gissleh/nerdify"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"net/http"
)

func Setup(addr string) (*echo.Echo, <-chan error) {
	e := SetupWithoutListener()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

		err := e.Start(addr)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	return e, errCh
}

func SetupWithoutListener() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.CORS())
	e.Use(middleware.Gzip())
	e.HTTPErrorHandler = wrapError

	return e
}

func wrapError(err error, c echo.Context) {
	var httpErr *echo.HTTPError
	var bindingErr *echo.BindingError
	var dictErr nerdify.DictionaryError

	switch {
	case errors.As(err, &bindingErr):
		_ = c.JSON(bindingErr.Code, map[string]string{"error": fmt.Sprint(bindingErr.Message)})
	case errors.As(err, &httpErr):
		_ = c.JSON(httpErr.Code, map[string]string{"error": fmt.Sprint(httpErr.Message)})
	case errors.As(err, &dictErr):
		_ = c.JSON(http.StatusUnprocessableEntity, map[string]any{"error": dictErr.Error(), "details": dictErr})
	case errors.Is(err, nerdify.ErrEmptyText):
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, nerdify.ErrReadOnly):
		_ = c.JSON(502, map[string]string{"error": err.Error()})
	case errors.Is(err, nerdify.ErrDictionaryEntryNotFound):
		_ = c.JSON(404, map[string]string{"error": err.Error()})
	default:
		_ = c.JSON(500, map[string]string{"error": err.Error()})
	}
}
