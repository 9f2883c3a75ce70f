package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Goden-Gun/apperr-lib/pkg/catalog"
	"github.com/Goden-Gun/apperr-lib/pkg/logger"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList_Formats(t *testing.T) {
	out, err := run(t, "list", "--domain", "auth", "--format", "json")
	require.NoError(t, err)
	var entries []catalog.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.NotEmpty(t, entries)
	for _, e := range entries {
		assert.Equal(t, "AUTH", e.Domain)
	}

	out, err = run(t, "list", "-d", "group", "-f", "yaml")
	require.NoError(t, err)
	var fromYAML []catalog.Entry
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	want, err := catalog.Entries("GROUP")
	require.NoError(t, err)
	assert.Equal(t, want, fromYAML)

	out, err = run(t, "list", "--domain", "chat")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "CODE"))
	assert.Contains(t, out, "CHAT-001")
}

func TestList_Errors(t *testing.T) {
	_, err := run(t, "list", "--domain", "billing")
	assert.ErrorIs(t, err, catalog.KindDomainUnknown)

	_, err = run(t, "list", "--format", "xml")
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "ok: "), out)
}

func newTestRouter(t *testing.T, reg *prometheus.Registry) (http.Handler, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	l := logger.New(logger.Config{Environment: logger.Test, Output: &logs, Fallback: &bytes.Buffer{}})
	return newRouter(l, routerOptions{Registry: reg}), &logs
}

func TestRouter(t *testing.T) {
	h, logs := newTestRouter(t, nil)

	tests := []struct {
		name   string
		path   string
		status int
		body   string
	}{
		{name: "health", path: "/health", status: http.StatusOK, body: `"healthy"`},
		{name: "list", path: "/v1/errors/", status: http.StatusOK, body: `"PROFILE-026"`},
		{name: "list domain", path: "/v1/errors/?domain=notification", status: http.StatusOK, body: `"NOTIFICATION-016"`},
		{name: "unknown domain", path: "/v1/errors/?domain=billing", status: http.StatusBadRequest, body: `"code":"CATALOG-002"`},
		{name: "find", path: "/v1/errors/group-013", status: http.StatusOK, body: `"code":"GROUP-013"`},
		{name: "unknown code", path: "/v1/errors/GROUP-999", status: http.StatusNotFound, body: `"code":"CATALOG-001"`},
		{name: "retired code", path: "/v1/errors/GROUP-038", status: http.StatusNotFound, body: `"success":false`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
		})
	}
	assert.Contains(t, logs.String(), "CATALOG-001")
}

func TestRouter_ListDecodes(t *testing.T) {
	h, _ := newTestRouter(t, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/errors/?domain=AUTH", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	want, err := catalog.Entries("AUTH")
	require.NoError(t, err)
	assert.Equal(t, want, resp.Data)
}

func TestRouter_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "errcatalog_test_total", Help: "test"}))
	h, _ := newTestRouter(t, reg)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "errcatalog_test_total")
}
