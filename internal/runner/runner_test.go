package runner

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqlhound/gqlhound/internal/fetcher"
	"github.com/gqlhound/gqlhound/internal/reporter"
)

const appJS = "const q = `query GetUser($id: ID!) { user(id: $id) { name } }`;"

func newTestRunner(t *testing.T, workers int) (*Runner, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true
	var out bytes.Buffer
	report, err := reporter.New(&out, "")
	require.NoError(t, err)
	return New(fetcher.New(fetcher.Config{}), report, workers), &out
}

func TestAnalyzeScript(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, appJS)
	}))
	defer srv.Close()

	run, out := newTestRunner(t, 1)
	run.AnalyzeScript(context.Background(), srv.URL+"/app.js")

	findings := run.Findings()
	require.Len(t, findings, 1)
	assert.Equal(t, srv.URL+"/app.js", findings[0].Source)
	assert.Contains(t, out.String(), "Found 1 unique GraphQL operation(s)")
	assert.Contains(t, out.String(), "query GetUser($id: ID!) {")
}

func TestAnalyzeScriptNothingFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "var x = 1;")
	}))
	defer srv.Close()

	run, out := newTestRunner(t, 1)
	run.AnalyzeScript(context.Background(), srv.URL+"/empty.js")

	assert.Empty(t, run.Findings())
	assert.Contains(t, out.String(), "No GraphQL operations found")
}

func TestScanPageFollowsScripts(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><script src="/static/app.js"></script></head></html>`)
	})
	mux.HandleFunc("/static/app.js", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, appJS)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	run, out := newTestRunner(t, 1)
	run.ScanPage(context.Background(), srv.URL+"/")

	findings := run.Findings()
	require.Len(t, findings, 1)
	assert.Equal(t, srv.URL+"/static/app.js", findings[0].Source)
	assert.Contains(t, out.String(), "Found 1 JavaScript file(s)")
}

func TestRunDispatchesOnExtension(t *testing.T) {
	var jsHits, htmlHits int
	mux := http.NewServeMux()
	mux.HandleFunc("/direct.js", func(w http.ResponseWriter, r *http.Request) {
		jsHits++
		fmt.Fprint(w, appJS)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		htmlHits++
		fmt.Fprint(w, "<html></html>")
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	run, _ := newTestRunner(t, 1)
	run.Run(context.Background(), srv.URL+"/direct.js")
	run.Run(context.Background(), srv.URL+"/page")

	assert.Equal(t, 1, jsHits)
	assert.Equal(t, 1, htmlHits)
}

func TestProcessListContinuesPastFailures(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/bad.js", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	mux.HandleFunc("/good.js", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, appJS)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	run, out := newTestRunner(t, 2)
	run.ProcessList(context.Background(), []string{srv.URL + "/bad.js", srv.URL + "/good.js"})

	require.Len(t, run.Findings(), 1)
	assert.Contains(t, out.String(), "unexpected status")
}
