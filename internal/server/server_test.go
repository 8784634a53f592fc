package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datapurity/purity-cli/internal/model"
	"github.com/datapurity/purity-cli/internal/pipeline"
	"github.com/datapurity/purity-cli/internal/store"
)

func newTestServer(t *testing.T) (*Server, store.Store) {
	t.Helper()
	st, err := store.NewSQLite(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.Migrate(context.Background()))

	return New(pipeline.New(nil), st, Options{Port: 0}), st
}

func multipartUpload(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestHandleHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleClean_CSVUpload(t *testing.T) {
	s, _ := newTestServer(t)

	csv := "Name,Email,Phone\nAli,ali@x.com,0512345678\n,,\nSara,ali@x.com,0555555555\n"
	body, contentType := multipartUpload(t, "file", "contacts.csv", []byte(csv))

	req := httptest.NewRequest(http.MethodPost, "/api/clean", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result model.ProcessedData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 3, result.TotalRows)
	assert.Equal(t, 1, result.EmptyRows)
	assert.Equal(t, 1, result.Duplicates)
	assert.Len(t, result.Cleaned, 2)
}

func TestHandleClean_RecordsRun(t *testing.T) {
	s, st := newTestServer(t)

	body, contentType := multipartUpload(t, "file", "contacts.csv", []byte("Name,Email\nAli,ali@x.com\n"))
	req := httptest.NewRequest(http.MethodPost, "/api/clean", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	runs, err := st.ListRuns(context.Background(), store.RunFilter{})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "contacts.csv", runs[0].Source)
	assert.Equal(t, 1, runs[0].TotalRows)
}

func TestHandleClean_UnsupportedType(t *testing.T) {
	s, _ := newTestServer(t)

	body, contentType := multipartUpload(t, "file", "contacts.pdf", []byte("%PDF"))
	req := httptest.NewRequest(http.MethodPost, "/api/clean", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported file type")
}

func TestHandleClean_MissingFileField(t *testing.T) {
	s, _ := newTestServer(t)

	body, contentType := multipartUpload(t, "wrong", "contacts.csv", []byte("Name\nAli\n"))
	req := httptest.NewRequest(http.MethodPost, "/api/clean", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRuns(t *testing.T) {
	s, st := newTestServer(t)

	_, err := st.SaveRun(context.Background(), model.RunSummary{Source: "a.csv", TotalRows: 2, Valid: 2})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/runs", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var runs []model.RunSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, "a.csv", runs[0].Source)
}

func TestHandleRuns_NilStore(t *testing.T) {
	s := New(pipeline.New(nil), nil, Options{})
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/runs", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
