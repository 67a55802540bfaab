package analyze_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poindexter12/maxwells-wallet/internal/http/analyze"
	"github.com/poindexter12/maxwells-wallet/internal/importer"
	"github.com/poindexter12/maxwells-wallet/internal/importer/providers"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	h := analyze.NewHandler(importer.NewService(providers.Default()))

	r := chi.NewRouter()
	r.Route("/analyze", h.Routes)

	return r
}

func upload(t *testing.T, fields map[string]string, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer

	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile("file", "statement.csv")
	require.NoError(t, err)

	_, err = fw.Write([]byte(content))
	require.NoError(t, err)

	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}

	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return req
}

type analyzeResponse struct {
	HeaderFound bool   `json:"header_found"`
	SkipRows    int    `json:"skip_rows"`
	Header      string `json:"header"`

	Columns []struct {
		Column     string  `json:"column"`
		Role       string  `json:"role"`
		Confidence float64 `json:"confidence"`
	} `json:"columns"`

	SuggestedConfig string `json:"suggested_config"`
}

func TestAnalyzeFile(t *testing.T) {
	router := newRouter(t)

	raw := "Exported by SomeBank\n\nDate,Description,Amount\n01/15/2025,COFFEE SHOP,-4.50\n"

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, upload(t, nil, raw))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp analyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.HeaderFound)
	assert.Equal(t, 2, resp.SkipRows)
	assert.Equal(t, "Date,Description,Amount", resp.Header)

	require.Len(t, resp.Columns, 3)
	assert.Equal(t, "date", resp.Columns[0].Role)
	assert.Equal(t, "amount", resp.Columns[2].Role)

	assert.Contains(t, resp.SuggestedConfig, "key: custom")
	assert.Contains(t, resp.SuggestedConfig, "skip_header_rows: 2")
}

func TestAnalyzeFile_ExplicitSkipRows(t *testing.T) {
	router := newRouter(t)

	raw := "junk\nDate,Description,Amount\n01/15/2025,COFFEE SHOP,-4.50\n"

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, upload(t, map[string]string{"skip_rows": "1"}, raw))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp analyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.HeaderFound)
	assert.Equal(t, 1, resp.SkipRows)
	assert.NotEmpty(t, resp.Columns)
}

func TestAnalyzeFile_NoHeader(t *testing.T) {
	router := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, upload(t, nil, "nothing tabular here\n"))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp analyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.False(t, resp.HeaderFound)
	assert.Empty(t, resp.Columns)
	assert.Empty(t, resp.SuggestedConfig)
}
