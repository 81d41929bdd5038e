package webapi

import (
	"github.com/gissleh/nerdify"
	"github.com/gissleh/nerdify/service"
	"github.com/labstack/echo/v4"
	"net/http"
)

type translateInput struct {
	Text string `json:"text" form:"text"`
}

func Translate(group *echo.Group, svc *service.Service) {
	group.POST("", func(c echo.Context) error {
		input := translateInput{}
		if err := c.Bind(&input); err != nil {
			return err
		}
		if input.Text == "" {
			return nerdify.ErrEmptyText
		}

		res, err := svc.Translate(c.Request().Context(), input.Text)
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, map[string]any{
			"translation": res,
		})
	})
}
