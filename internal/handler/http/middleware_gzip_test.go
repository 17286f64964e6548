// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func jsonHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestGZip_Response(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		handler        http.HandlerFunc
		wantGzip       bool
		wantBody       string
	}{
		{
			name:           "json compressed when accepted",
			acceptEncoding: "gzip",
			handler:        jsonHandler(http.StatusOK, `[{"id":"1"}]`),
			wantGzip:       true,
			wantBody:       `[{"id":"1"}]`,
		},
		{
			name:           "multiple encodings including gzip",
			acceptEncoding: "deflate, gzip, br",
			handler:        jsonHandler(http.StatusCreated, `{}`),
			wantGzip:       true,
			wantBody:       `{}`,
		},
		{
			name:           "not accepted",
			acceptEncoding: "",
			handler:        jsonHandler(http.StatusOK, `[]`),
			wantBody:       `[]`,
		},
		{
			name:           "text error compressed",
			acceptEncoding: "gzip",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "record not found", http.StatusNotFound)
			},
			wantGzip: true,
			wantBody: "record not found\n",
		},
		{
			name:           "no content passes through",
			acceptEncoding: "gzip",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
		},
		{
			name:           "binary content type passes through",
			acceptEncoding: "gzip",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "image/png")
				_, _ = w.Write([]byte("png"))
			},
			wantBody: "png",
		},
		{
			name:           "implicit status with sniffed text",
			acceptEncoding: "gzip",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("plain words"))
			},
			wantGzip: true,
			wantBody: "plain words",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()
			withGZip(tt.handler).ServeHTTP(rec, req)

			if tt.wantGzip {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.wantBody, gunzip(t, rec.Body.Bytes()))
			} else {
				assert.Empty(t, rec.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestGZip_RequestBody(t *testing.T) {
	var got string
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, r.Body.Close())
		got = string(b)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
	}))

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipBytes(t, []byte(`{"donor":"Alice"}`))))
	req.Header.Set("Content-Encoding", "gzip")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, `{"donor":"Alice"}`, got)
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	called := false
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("not gzip")))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIsCompressible(t *testing.T) {
	assert.True(t, isCompressible("application/json"))
	assert.True(t, isCompressible("text/plain; charset=utf-8"))
	assert.False(t, isCompressible(""))
	assert.False(t, isCompressible("application/octet-stream"))
}
