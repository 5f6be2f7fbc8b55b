package export

import (
	"errors"
	"fmt"
	"strings"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXML  Format = "xml"
	FormatXLSX Format = "xlsx"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

// ParseFormat maps a query value to a Format. Empty means JSON.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatJSON, nil
	}
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q (use json, csv, xml or xlsx)", ErrUnsupportedFormat, s)
	}
	return f, nil
}

func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatCSV, FormatXML, FormatXLSX:
		return true
	}
	return false
}
