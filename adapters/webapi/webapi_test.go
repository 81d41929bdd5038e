package webapi

import (
	"encoding/json"
	"github.com/gissleh/nerdify"
	"github.com/gissleh/nerdify/adapters/builtindictionary"
	"github.com/gissleh/nerdify/adapters/yamldictionary"
	"github.com/gissleh/nerdify/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

func setupTestAPI(storage nerdify.DictionaryStorage) *echo.Echo {
	svc := &service.Service{Storage: storage, Decoration: nerdify.StaticDecoration("👆")}

	e := SetupWithoutListener()
	Translate(e.Group("/api/translate"), svc)
	Utils(e.Group("/api/utils"), svc)
	Dictionary(e.Group("/api/dictionary"), svc)

	return e
}

func doRequest(e *echo.Echo, method, path, body string) (int, map[string]any) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	res := make(map[string]any)
	_ = json.Unmarshal(rec.Body.Bytes(), &res)

	return rec.Code, res
}

func TestTranslate(t *testing.T) {
	e := setupTestAPI(builtindictionary.New())

	code, res := doRequest(e, http.MethodPost, "/api/translate", `{"text":"Hello everyone"}`)
	require.Equal(t, http.StatusOK, code)
	translation := res["translation"].(map[string]any)
	assert.Equal(t, "Greetings for every x such that x is a person 👆", translation["output"])

	code, res = doRequest(e, http.MethodPost, "/api/translate", `{"text":"   "}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "    👆", res["translation"].(map[string]any)["output"])

	code, res = doRequest(e, http.MethodPost, "/api/translate", `{"text":""}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, nerdify.ErrEmptyText.Error(), res["error"])

	code, _ = doRequest(e, http.MethodPost, "/api/translate", `{"text":`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestUtils(t *testing.T) {
	e := setupTestAPI(builtindictionary.New())

	code, res := doRequest(e, http.MethodGet, "/api/utils/lookup/trend", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, res["patterns"], 2)

	code, _ = doRequest(e, http.MethodGet, "/api/utils/lookup/trend?limit=x", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, res = doRequest(e, http.MethodGet, "/api/utils/forms/split%20up", "")
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, res["patterns"])

	code, _ = doRequest(e, http.MethodGet, "/api/utils/forms/banana", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, res = doRequest(e, http.MethodGet, "/api/utils/dictionary", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, res["entries"], len(nerdify.DefaultDictionary()))
}

func TestDictionary(t *testing.T) {
	t.Run("read_only", func(t *testing.T) {
		e := setupTestAPI(builtindictionary.New())

		code, _ := doRequest(e, http.MethodPut, "/api/dictionary", `{"source":"a","target":"b","category":"noun"}`)
		assert.Equal(t, 502, code)
	})

	t.Run("writable", func(t *testing.T) {
		storage, err := yamldictionary.FromData(filepath.Join(t.TempDir(), "dict.yaml"), false, nil)
		require.NoError(t, err)
		e := setupTestAPI(storage)

		code, _ := doRequest(e, http.MethodPut, "/api/dictionary", `{"source":"size","target":"magnitude","category":"noun"}`)
		require.Equal(t, http.StatusOK, code)

		_, res := doRequest(e, http.MethodPost, "/api/translate", `{"text":"Sizes"}`)
		assert.Equal(t, "Magnitudes 👆", res["translation"].(map[string]any)["output"])

		code, _ = doRequest(e, http.MethodPut, "/api/dictionary", `{"source":"","target":"magnitude","category":"noun"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, code)

		code, _ = doRequest(e, http.MethodDelete, "/api/dictionary/size", "")
		assert.Equal(t, http.StatusNoContent, code)

		code, _ = doRequest(e, http.MethodDelete, "/api/dictionary/size", "")
		assert.Equal(t, http.StatusNotFound, code)
	})
}
