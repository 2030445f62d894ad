// Package runner orchestrates scans: fetch a target, run the extraction
// pipeline over it, hand results to the reporter and keep them for export.
package runner

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/gqlhound/gqlhound/internal/exporter"
	"github.com/gqlhound/gqlhound/internal/fetcher"
	"github.com/gqlhound/gqlhound/internal/reporter"
	"github.com/gqlhound/gqlhound/internal/scanner"
)

type Runner struct {
	client  *fetcher.Client
	report  *reporter.Reporter
	workers int

	mu       sync.Mutex
	findings []exporter.Finding
}

func New(client *fetcher.Client, report *reporter.Reporter, workers int) *Runner {
	if workers <= 0 {
		workers = 1
	}
	return &Runner{client: client, report: report, workers: workers}
}

// Findings returns every operation collected so far, in arrival order.
func (r *Runner) Findings() []exporter.Finding {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]exporter.Finding(nil), r.findings...)
}

// Run dispatches one target: JavaScript URLs are scanned directly, anything
// else is treated as an HTML page whose external scripts are scanned.
func (r *Runner) Run(ctx context.Context, url string) {
	if strings.HasSuffix(strings.ToLower(url), ".js") {
		r.AnalyzeScript(ctx, url)
		return
	}
	r.ScanPage(ctx, url)
}

// AnalyzeScript fetches one JavaScript file and scans it for GraphQL
// operations. Fetch failures are reported, never fatal.
func (r *Runner) AnalyzeScript(ctx context.Context, jsURL string) {
	r.report.Info("Fetching and analyzing JavaScript file: %s", jsURL)

	content, err := r.client.Get(ctx, jsURL)
	if err != nil {
		r.report.Error("%v", err)
		return
	}

	ops := scanner.ScanDocument(content)
	if len(ops) == 0 {
		r.report.Warn("No GraphQL operations found in %s", jsURL)
		return
	}

	if err := r.report.Findings(jsURL, ops); err != nil {
		r.report.Error("%v", err)
	}

	r.mu.Lock()
	for _, op := range ops {
		r.findings = append(r.findings, exporter.Finding{Source: jsURL, Op: op})
	}
	r.mu.Unlock()
}

// ScanPage fetches an HTML page, discovers its external scripts and scans
// each of them.
func (r *Runner) ScanPage(ctx context.Context, pageURL string) {
	r.report.Info("Fetching HTML from: %s", pageURL)

	html, err := r.client.Get(ctx, pageURL)
	if err != nil {
		r.report.Error("%v", err)
		return
	}

	scripts, err := fetcher.ScriptSources(html, pageURL)
	if err != nil {
		r.report.Error("%v", err)
		return
	}
	if len(scripts) == 0 {
		r.report.Warn("No external JavaScript files found in %s", pageURL)
		return
	}

	r.report.Success("Found %d JavaScript file(s)", len(scripts))
	for _, script := range scripts {
		if ctx.Err() != nil {
			return
		}
		r.AnalyzeScript(ctx, script)
	}
}

// ProcessList runs every URL through Run with at most workers targets in
// flight. Individual failures are reported and do not stop the batch.
func (r *Runner) ProcessList(ctx context.Context, urls []string) {
	r.report.Info("Loaded %d URL(s)", len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for _, url := range urls {
		url := url
		g.Go(func() error {
			r.Run(gctx, url)
			return nil
		})
	}
	_ = g.Wait()
}
