package templfrontend

import (
	"github.com/a-h/templ"
	"github.com/gissleh/nerdify"
	"github.com/gissleh/nerdify/service"
	"github.com/labstack/echo/v4"
	"net/http"
)

func Endpoints(group *echo.Group, svc *service.Service) {
	outputHtml := func(c echo.Context, code int, component templ.Component) error {
		c.Response().Header().Add("Content-Type", "text/html; charset=utf-8")
		c.Response().WriteHeader(code)
		return component.Render(c.Request().Context(), c.Response())
	}

	group.GET("/", func(c echo.Context) error {
		return outputHtml(c, http.StatusOK, layoutWrapper("Nerdify", indexPage(pageData{})))
	})

	group.POST("/", func(c echo.Context) error {
		text := c.FormValue("text")
		if text == "" {
			return outputHtml(c, http.StatusBadRequest, layoutWrapper("Nerdify", indexPage(pageData{Error: nerdify.ErrEmptyText.Error()})))
		}

		res, err := svc.Translate(c.Request().Context(), text)
		if err != nil {
			return outputHtml(c, http.StatusInternalServerError, layoutWrapper("Nerdify", indexPage(pageData{Input: text, Error: err.Error()})))
		}

		return outputHtml(c, http.StatusOK, layoutWrapper("Nerdify", indexPage(pageData{Input: text, Output: res.Output})))
	})
}
