package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"

	"github.com/gqlhound/gqlhound/internal/exporter"
	"github.com/gqlhound/gqlhound/internal/fetcher"
	"github.com/gqlhound/gqlhound/internal/reporter"
	"github.com/gqlhound/gqlhound/internal/runner"
	"github.com/gqlhound/gqlhound/tui"
)

const banner = `
┌───────────────────────────────────────────────────────────────────┐
          gqlhound — GraphQL Operation Scanner
          Extract GraphQL from JavaScript Files
└───────────────────────────────────────────────────────────────────┘
`

func main() {
	var (
		targetURL = flag.String("u", "", "Single URL to scan (HTML page or JS file)")
		listFile  = flag.String("l", "", "File containing list of URLs (one per line)")
		userAgent = flag.String("a", fetcher.DefaultUserAgent, "Custom User-Agent string")
		headers   = flag.String("H", "", `Custom headers (format: "Header1:Value1,Header2:Value2")`)
		delay     = flag.Int("d", 0, "Delay between requests in seconds")
		timeout   = flag.Int("t", 10, "Request timeout in seconds")
		output    = flag.String("o", "", "Output file to save a plain-text report (optional)")
		jsonFile  = flag.String("json", "", "Export findings as JSON to this file (optional)")
		workers   = flag.Int("workers", 1, "Concurrent targets when scanning a URL list")
		noColor   = flag.Bool("no-color", false, "Disable colored output")
		withTUI   = flag.Bool("tui", false, "Browse findings interactively after the scan")
	)
	flag.Usage = printUsage
	flag.Parse()

	if *noColor {
		color.NoColor = true
	}

	if (*targetURL == "") == (*listFile == "") {
		printUsage()
		os.Exit(1)
	}

	fmt.Print(banner)

	report, err := reporter.New(os.Stdout, *output)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	customHeaders := fetcher.ParseHeaders(*headers)
	client := fetcher.New(fetcher.Config{
		UserAgent: *userAgent,
		Headers:   customHeaders,
		Timeout:   time.Duration(*timeout) * time.Second,
		Delay:     time.Duration(*delay) * time.Second,
	})

	report.Info("User-Agent: %s", color.GreenString(*userAgent))
	if *delay > 0 {
		report.Info("Request delay: %s seconds", color.YellowString("%d", *delay))
	}
	if *timeout != 10 {
		report.Info("Request timeout: %s seconds", color.YellowString("%d", *timeout))
	}
	if len(customHeaders) > 0 {
		names := make([]string, 0, len(customHeaders))
		for name := range customHeaders {
			names = append(names, name)
		}
		report.Info("Custom headers: %s", color.GreenString(strings.Join(names, ", ")))
	}
	if *output != "" {
		report.Info("Output file: %s", color.GreenString(*output))
	}

	run := runner.New(client, report, *workers)
	ctx := context.Background()

	if *targetURL != "" {
		run.Run(ctx, *targetURL)
	} else {
		urls, err := readURLList(*listFile)
		if err != nil {
			report.Error("%v", err)
			os.Exit(1)
		}
		run.ProcessList(ctx, urls)
	}

	findings := run.Findings()

	if *jsonFile != "" {
		if err := exporter.SaveToFile(findings, *jsonFile); err != nil {
			report.Error("%v", err)
		} else {
			report.Info("JSON export saved to: %s", color.BlueString(*jsonFile))
		}
	}

	report.Info("Scan complete!")
	if *output != "" {
		report.Info("Results saved to: %s", color.BlueString(*output))
	}

	if *withTUI && len(findings) > 0 {
		p := tea.NewProgram(tui.NewModel(findings), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			report.Error("%v", err)
			os.Exit(1)
		}
	}
}

func readURLList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading URL list: %w", err)
	}
	defer f.Close()

	var urls []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		if line := strings.TrimSpace(s.Text()); line != "" {
			urls = append(urls, line)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading URL list: %w", err)
	}
	return urls, nil
}

func printUsage() {
	fmt.Println("gqlhound — scan URLs or JavaScript files for GraphQL operations")
	fmt.Println()
	fmt.Println("Usage: gqlhound -u <url> | -l <urls.txt> [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  gqlhound -u https://example.com")
	fmt.Println("  gqlhound -u https://example.com/app.js")
	fmt.Println("  gqlhound -l urls.txt -workers 4 -o results.txt")
	fmt.Println(`  gqlhound -u https://example.com -H "Authorization:Bearer token,X-API-Key:12345"`)
}
