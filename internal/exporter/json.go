package exporter

import (
	"encoding/json"
	"os"
	"time"

	"github.com/gqlhound/gqlhound/internal/extractor"
	"github.com/gqlhound/gqlhound/internal/scanner"
)

// Finding pairs one discovered operation with the URL it came from.
type Finding struct {
	Source string
	Op     scanner.Operation
}

type OperationExport struct {
	Index     int                  `json:"index"`
	Source    string               `json:"source"`
	Variables []extractor.Variable `json:"variables,omitempty"`
	Raw       string               `json:"raw"`
	Rendered  string               `json:"rendered"`
}

type ExportData struct {
	GeneratedAt     string            `json:"generated_at"`
	TotalOperations int               `json:"total_operations"`
	Sources         []string          `json:"sources"`
	Operations      []OperationExport `json:"operations"`
}

func ToJSON(findings []Finding) ([]byte, error) {
	export := ExportData{
		GeneratedAt:     time.Now().Format(time.RFC3339),
		TotalOperations: len(findings),
		Operations:      make([]OperationExport, len(findings)),
	}

	seen := make(map[string]bool)
	for i, f := range findings {
		export.Operations[i] = OperationExport{
			Index:     i + 1,
			Source:    f.Source,
			Variables: f.Op.Variables,
			Raw:       f.Op.Raw,
			Rendered:  f.Op.Rendered,
		}
		if f.Source != "" && !seen[f.Source] {
			seen[f.Source] = true
			export.Sources = append(export.Sources, f.Source)
		}
	}

	return json.MarshalIndent(export, "", "  ")
}

func SaveToFile(findings []Finding, filename string) error {
	data, err := ToJSON(findings)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
