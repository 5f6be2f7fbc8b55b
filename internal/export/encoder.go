package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"mime"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Metrics"

// Document is an encoded export ready to be served.
type Document struct {
	Body        []byte
	ContentType string
	Filename    string
}

// ContentDisposition returns the attachment header value for d.
func (d Document) ContentDisposition() string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": d.Filename})
}

// Encoder renders flattened fields as one document.
type Encoder interface {
	Encode(fields []Field) ([]byte, error)
	ContentType() string
}

var encoders = map[Format]Encoder{
	FormatJSON: jsonEncoder{},
	FormatCSV:  csvEncoder{},
	FormatXML:  xmlEncoder{},
	FormatXLSX: xlsxEncoder{},
}

// Encode renders m for the card identified by cardID.
func Encode(format Format, cardID string, m Metrics) (*Document, error) {
	return encodeFields(format, cardID, Fields(m))
}

// EncodeMessage renders a single "message" field in place of metrics, for
// cards that have nothing to report.
func EncodeMessage(format Format, cardID, message string) (*Document, error) {
	return encodeFields(format, cardID, []Field{{Name: "message", Value: message}})
}

func encodeFields(format Format, cardID string, fields []Field) (*Document, error) {
	enc, ok := encoders[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	body, err := enc.Encode(fields)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", format, err)
	}

	return &Document{
		Body:        body,
		ContentType: enc.ContentType(),
		Filename:    fmt.Sprintf("card_%s_metrics.%s", cardID, format),
	}, nil
}

type jsonEncoder struct{}

func (jsonEncoder) ContentType() string { return "application/json" }

func (jsonEncoder) Encode(fields []Field) ([]byte, error) {
	obj := make(map[string]any, len(fields))
	for _, f := range fields {
		obj[f.Name] = f.Value
	}
	return json.Marshal(obj)
}

type csvEncoder struct{}

func (csvEncoder) ContentType() string { return "text/csv" }

func (csvEncoder) Encode(fields []Field) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Metric", "Value"}); err != nil {
		return nil, err
	}
	for _, f := range fields {
		if err := w.Write([]string{f.Name, f.Text()}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

type xmlEncoder struct{}

func (xmlEncoder) ContentType() string { return "application/xml" }

func (xmlEncoder) Encode(fields []Field) ([]byte, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)

	root := xml.StartElement{Name: xml.Name{Local: "metrics"}}
	if err := enc.EncodeToken(root); err != nil {
		return nil, err
	}
	for _, f := range fields {
		if err := enc.EncodeElement(f.Text(), xml.StartElement{Name: xml.Name{Local: f.Name}}); err != nil {
			return nil, err
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type xlsxEncoder struct{}

func (xlsxEncoder) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (xlsxEncoder) Encode(fields []Field) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheetName, "A1", &[]any{"Metric", "Value"}); err != nil {
		return nil, err
	}

	for i, field := range fields {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		var value any = field.Text()
		if v, ok := field.Value.(float64); ok {
			value = v
		}
		if err := f.SetSheetRow(sheetName, cell, &[]any{field.Name, value}); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
