// =============================================================================
// Competency Framework Reformatter - CSV Serializer
// =============================================================================
//
// This module renders output rows to the 14-column import CSV. The target
// importer is stricter than RFC 4180: besides the usual comma/quote/newline
// cases it expects fields containing bare spaces or a literal '[' to be
// quoted as well, and the file to start with a UTF-8 byte-order-mark so
// spreadsheet tools pick up the encoding. encoding/csv cannot be configured
// to over-quote like that, so field rendering is done by hand; the quoting
// rule itself is three lines.
//
// The serializer is one-way: it only reads rows, never parses them back.
//
// =============================================================================

package csvwriter

import (
	"bufio"
	"io"
	"strings"

	"github.com/acadtools/competency-reformatter/internal/types"
)

// BOM is the UTF-8 byte-order-mark prefixed to every output file.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// Columns is the header row of the import schema, in the exact order the
// importer requires.
var Columns = []string{
	"Parent ID number",
	"ID number",
	"Short name",
	"Description",
	"Description format",
	"Scale values",
	"Scale configuration",
	"Rule type (optional)",
	"Rule outcome (optional)",
	"Rule config (optional)",
	"Cross-referenced competency ID numbers",
	"Exported ID (optional)",
	"Is framework",
	"Taxonomy",
}

// =============================================================================
// WRITER
// =============================================================================

// Writer serializes output rows to an io.Writer.
type Writer struct {
	w *bufio.Writer
}

// NewWriter creates a Writer targeting w. Call Flush when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteBOM writes the UTF-8 byte-order-mark. Call once, before anything else.
func (w *Writer) WriteBOM() error {
	_, err := w.w.Write(BOM)
	return err
}

// WriteHeader writes the 14-column header row.
func (w *Writer) WriteHeader() error {
	return w.writeRecord(Columns)
}

// WriteRows serializes a batch of output rows.
func (w *Writer) WriteRows(rows []types.OutputRow) error {
	for i := range rows {
		if err := w.writeRecord(rowToRecord(&rows[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying buffer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// writeRecord renders one record with the importer's quoting rule.
func (w *Writer) writeRecord(record []string) error {
	for i, field := range record {
		if i > 0 {
			if err := w.w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.w.WriteString(quoteField(field)); err != nil {
			return err
		}
	}
	return w.w.WriteByte('\n')
}

// quoteField wraps a field in double quotes, doubling interior quotes, when
// it contains a comma, double quote, newline, space, or literal '['.
func quoteField(field string) string {
	if !strings.ContainsAny(field, ",\"\n\r [") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// rowToRecord flattens an output row into the 14-column order.
func rowToRecord(row *types.OutputRow) []string {
	return []string{
		row.ParentID,
		row.ID,
		row.ShortName,
		row.Description,
		row.DescriptionFormat,
		row.ScaleValues,
		row.ScaleConfiguration,
		row.RuleType,
		row.RuleOutcome,
		row.RuleConfig,
		row.CrossReferenced,
		row.ExportedID,
		row.IsFramework,
		row.Taxonomy,
	}
}

// =============================================================================
// CONVENIENCE
// =============================================================================

// Render serializes a complete document (BOM, header, rows) to w.
func Render(w io.Writer, rows []types.OutputRow) error {
	cw := NewWriter(w)
	if err := cw.WriteBOM(); err != nil {
		return err
	}
	if err := cw.WriteHeader(); err != nil {
		return err
	}
	if err := cw.WriteRows(rows); err != nil {
		return err
	}
	return cw.Flush()
}
