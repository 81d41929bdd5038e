package webapi

import (
	"github.com/gissleh/nerdify"
	"github.com/gissleh/nerdify/service"
	"github.com/labstack/echo/v4"
	"net/http"
	"net/url"
	"strconv"
)

func Utils(group *echo.Group, svc *service.Service) {
	group.GET("/lookup/:prefix", func(c echo.Context) error {
		prefix, err := url.QueryUnescape(c.Param("prefix"))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		limit := 50
		if raw := c.QueryParam("limit"); raw != "" {
			limit, err = strconv.Atoi(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "limit must be a number")
			}
		}

		patterns, err := svc.Lookup(c.Request().Context(), prefix, limit)
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, map[string]any{
			"patterns": patterns,
		})
	})

	group.GET("/forms/:source", func(c echo.Context) error {
		source, err := url.QueryUnescape(c.Param("source"))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		patterns, err := svc.Forms(c.Request().Context(), source)
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, map[string]any{
			"patterns": patterns,
		})
	})

	group.GET("/dictionary", func(c echo.Context) error {
		dictionary, err := svc.Dictionary(c.Request().Context())
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, map[string]any{
			"entries": dictionary,
		})
	})
}

// Dictionary exposes changes to the dictionary. Storages that are read-only
// answer with ErrReadOnly.
func Dictionary(group *echo.Group, svc *service.Service) {
	group.PUT("", func(c echo.Context) error {
		entry := nerdify.DictionaryEntry{}
		if err := c.Bind(&entry); err != nil {
			return err
		}

		if err := svc.SaveEntry(c.Request().Context(), entry); err != nil {
			return err
		}

		return c.JSON(http.StatusOK, map[string]any{
			"entry": entry,
		})
	})

	group.DELETE("/:source", func(c echo.Context) error {
		source, err := url.QueryUnescape(c.Param("source"))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		if err := svc.DeleteEntry(c.Request().Context(), source); err != nil {
			return err
		}

		return c.NoContent(http.StatusNoContent)
	})
}
