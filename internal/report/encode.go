package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects how a report is rendered.
type Format int

const (
	FormatText Format = iota
	FormatJSON
	FormatYAML
)

// previewLen is how many values the text format prints.
const previewLen = 20

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat parses "text", "json" or "yaml". An empty string selects text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatText, fmt.Errorf("unknown report format %q (want text, json or yaml)", s)
	}
}

// Encode writes r to w in format f.
func Encode(w io.Writer, r Report, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatText:
		return encodeText(w, r)
	default:
		return fmt.Errorf("unknown report format %d", int(f))
	}
}

func encodeText(w io.Writer, r Report) error {
	harmony := "approximated"
	if r.ChecksumMatches {
		harmony = "achieved"
	}

	preview := r.Data
	if len(preview) > previewLen {
		preview = preview[:previewLen]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Run:          %s\n", r.RunID)
	if r.Source != "" {
		fmt.Fprintf(&b, "Source:       %s\n", r.Source)
	}
	fmt.Fprintf(&b, "Raw energy:   %d bytes, sum %d\n", r.RawLength, r.RawSum)
	fmt.Fprintf(&b, "Entropy:      %.3f\n", r.Entropy)
	fmt.Fprintf(&b, "Shape:        (%d,)\n", r.Length)
	fmt.Fprintf(&b, "Sum:          %d\n", r.Sum)
	fmt.Fprintf(&b, "Checksum:     %d (target %d, harmony %s)\n", r.Checksum, r.ChecksumTarget, harmony)
	fmt.Fprintf(&b, "Fingerprint:  %s\n", r.Fingerprint)
	fmt.Fprintf(&b, "Data[:%d]:    %v\n", previewLen, preview)

	_, err := io.WriteString(w, b.String())
	return err
}
