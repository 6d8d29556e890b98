package tabular

import (
	"bytes"
	"context"
	"encoding/csv"
	stderrors "errors"
	"io"
	"os"
	"strings"

	"github.com/agentstation/offboard/pkg/constants"
	"github.com/agentstation/offboard/pkg/errors"
	"github.com/agentstation/offboard/pkg/logging"
)

// ReadFile reads and parses the CSV file at path into a table called name.
func ReadFile(ctx context.Context, name, path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	ctx = logging.WithFile(ctx, path)
	return parse(ctx, name, path, data)
}

// Parse decodes raw CSV bytes into a table called name, for callers that
// already hold the file contents.
func Parse(ctx context.Context, name string, data []byte) (*Table, error) {
	return parse(ctx, name, name, data)
}

// parse converts CSV bytes into a table. Character encoding is detected and
// converted to UTF-8 first. The first row is the header; data rows with the
// wrong number of fields are padded or truncated to fit, with a warning
// logged per affected row. A file with a header and no data rows is a valid
// empty table.
func parse(ctx context.Context, name, file string, data []byte) (*Table, error) {
	log := logging.FromContext(ctx)

	decoded, encoding, err := Decode(data)
	if err != nil {
		return nil, errors.NewParseError("csv", file, "encoding detection failed", err)
	}
	if encoding != "utf-8" {
		log.Debug().
			Str("table", name).
			Str("encoding", encoding).
			Msg("Converted input to UTF-8")
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	// Mismatched field counts are reconciled below rather than rejected.
	reader.FieldsPerRecord = -1
	// Tolerate bare quotes in real-world exports.
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.NewParseError("csv", file, "empty file: no header row found", nil)
		}
		return nil, errors.NewParseError("csv", file, "failed to read header row", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	t := New(name, header)
	width := len(header)
	line := 1 // the header line
	for {
		row, err := reader.Read()
		if stderrors.Is(err, io.EOF) {
			break
		}
		line++

		if err != nil {
			log.Warn().
				Str("table", name).
				Int("line", line).
				Err(err).
				Msg("Skipping unparseable row")
			continue
		}

		switch {
		case len(row) < width:
			log.Warn().
				Str("table", name).
				Int("line", line).
				Int("columns", len(row)).
				Int("expected", width).
				Msg("Padding short row with empty values")
		case len(row) > width:
			log.Warn().
				Str("table", name).
				Int("line", line).
				Int("columns", len(row)).
				Int("expected", width).
				Msg("Truncating extra columns")
		}

		t.Append(row)
	}

	log.Debug().
		Str("table", name).
		Int("rows", t.Len()).
		Int("columns", width).
		Msg("Parsed table")
	return t, nil
}

// Encode renders the table as CSV bytes, header row first.
func Encode(t *Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(t.columns); err != nil {
		return nil, errors.WrapProcess("encode", err)
	}
	for _, row := range t.rows {
		if err := w.Write(row); err != nil {
			return nil, errors.WrapProcess("encode", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.WrapProcess("encode", err)
	}

	return buf.Bytes(), nil
}

// WriteFile encodes the table and writes it to path in a single operation,
// so a failed run never leaves a partially written file behind.
func WriteFile(path string, t *Table) error {
	data, err := Encode(t)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
