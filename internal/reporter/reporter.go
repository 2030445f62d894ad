// Package reporter renders scan progress and findings to the console and,
// optionally, to a plain-text report file.
package reporter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/gqlhound/gqlhound/internal/scanner"
)

const rule = 80

// Reporter is safe for concurrent use; whole findings blocks are written
// under one lock so parallel scans do not interleave.
type Reporter struct {
	mu         sync.Mutex
	out        io.Writer
	reportPath string
}

// New builds a Reporter writing console output to out. When reportPath is
// non-empty the file is truncated now and findings are appended to it as
// they arrive.
func New(out io.Writer, reportPath string) (*Reporter, error) {
	if reportPath != "" {
		if err := os.WriteFile(reportPath, nil, 0644); err != nil {
			return nil, fmt.Errorf("preparing report file: %w", err)
		}
	}
	return &Reporter{out: out, reportPath: reportPath}, nil
}

func (r *Reporter) Info(format string, args ...interface{}) {
	r.status(color.CyanString("[*]"), format, args...)
}

func (r *Reporter) Success(format string, args ...interface{}) {
	r.status(color.GreenString("[+]"), format, args...)
}

func (r *Reporter) Warn(format string, args ...interface{}) {
	r.status(color.YellowString("[-]"), format, args...)
}

func (r *Reporter) Error(format string, args ...interface{}) {
	r.status(color.RedString("[!]"), format, args...)
}

func (r *Reporter) status(prefix, format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

// Findings prints every operation found in one document and appends the
// same block to the report file when one is configured.
func (r *Reporter) Findings(source string, ops []scanner.Operation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintf(r.out, "%s Found %s unique GraphQL operation(s) in %s\n",
		color.GreenString("[+]"), color.New(color.Bold).Sprintf("%d", len(ops)), color.BlueString(source))
	fmt.Fprintln(r.out, strings.Repeat("=", rule))

	var report strings.Builder
	for _, op := range ops {
		fmt.Fprintf(r.out, "\n%s\n", color.HiYellowString("[Operation #%d]", op.Index))
		fmt.Fprintln(r.out, strings.Repeat("-", rule))

		if len(op.Variables) > 0 {
			fmt.Fprintf(r.out, "%s\n", color.CyanString("Variables:"))
			for _, v := range op.Variables {
				fmt.Fprintf(r.out, "  %s: %s\n", color.MagentaString("$"+v.Name), color.YellowString(v.Type))
			}
			fmt.Fprintln(r.out)
		}

		fmt.Fprintln(r.out, op.Rendered)
		fmt.Fprintln(r.out, strings.Repeat("-", rule))

		if r.reportPath != "" {
			fmt.Fprintf(&report, "\n[Operation #%d]\nURL: %s\n", op.Index, source)
			if len(op.Variables) > 0 {
				report.WriteString("Variables:\n")
				for _, v := range op.Variables {
					fmt.Fprintf(&report, "  $%s: %s\n", v.Name, v.Type)
				}
			}
			fmt.Fprintf(&report, "\n%s\n%s\n", op.Rendered, strings.Repeat("-", rule))
		}
	}

	if r.reportPath == "" || report.Len() == 0 {
		return nil
	}

	f, err := os.OpenFile(r.reportPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening report file: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(report.String()); err != nil {
		return fmt.Errorf("writing report file: %w", err)
	}
	return nil
}
