package parse_test

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

	"github.com/poindexter12/maxwells-wallet/internal/http/parse"
	"github.com/poindexter12/maxwells-wallet/internal/importer"
	"github.com/poindexter12/maxwells-wallet/internal/importer/providers"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	h := parse.NewHandler(importer.NewService(providers.Default()))

	r := chi.NewRouter()
	r.Route("/parse", h.Routes)
	r.Get("/formats", h.ListFormats)

	return r
}

func upload(t *testing.T, fields map[string]string, filename, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer

	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)

	_, err = fw.Write([]byte(content))
	require.NoError(t, err)

	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}

	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/parse/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return req
}

func TestParseFile(t *testing.T) {
	router := newRouter(t)

	raw := "Date,Description,Amount\n01/15/2025,COFFEE SHOP,-4.50\n01/16/2025,PAYCHECK,2500.00\n"

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, upload(t, map[string]string{"account": "checking"}, "statement.csv", raw))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		UploadID string `json:"upload_id"`
		Format   string `json:"format"`
		Detected bool   `json:"detected"`
		Count    int    `json:"count"`

		Transactions []struct {
			Date          string `json:"date"`
			Amount        string `json:"amount"`
			Description   string `json:"description"`
			AccountSource string `json:"account_source"`
		} `json:"transactions"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.UploadID)
	assert.Equal(t, "custom", resp.Format)
	assert.True(t, resp.Detected)
	assert.Equal(t, 2, resp.Count)

	require.Len(t, resp.Transactions, 2)
	assert.Equal(t, "2025-01-15", resp.Transactions[0].Date)
	assert.Equal(t, "-4.5", resp.Transactions[0].Amount)
	assert.Equal(t, "COFFEE SHOP", resp.Transactions[0].Description)
	assert.Equal(t, "checking", resp.Transactions[0].AccountSource)
}

func TestParseFile_UndetectedFormat(t *testing.T) {
	router := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, upload(t, nil, "notes.txt", "free-form text\nwith no structure at all\n"))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Format   string `json:"format"`
		Detected bool   `json:"detected"`
		Count    int    `json:"count"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "unknown", resp.Format)
	assert.False(t, resp.Detected)
	assert.Zero(t, resp.Count)
}

func TestParseFile_UnknownFormatHint(t *testing.T) {
	router := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, upload(t, map[string]string{"format": "nope"}, "statement.csv", "Date,Amount\n"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestParseFile_MissingFileField(t *testing.T) {
	router := newRouter(t)

	var body bytes.Buffer

	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("account", "checking"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/parse/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "file field is required")
}

func TestListFormats(t *testing.T) {
	router := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/formats", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Formats []string `json:"formats"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"amex", "capitalone", "chase", "discover", "paypal", "venmo"}, resp.Formats)
}
