// =============================================================================
// Competency Framework Reformatter - Tabular Reader
// =============================================================================
//
// This module reads competency definition files into (name, description)
// records. It supports two input shapes:
//   - Delimited text (.csv), via encoding/csv
//   - Spreadsheet binary (.xlsx / .xls), via excelize
//
// INPUT LAYOUT:
//   Every source file uses a two-row-header format:
//     Row 1: metadata (program title, export date...) - skipped
//     Row 2: column headers, containing a "Name" and a "Description" column
//     Row 3+: data
//
//   The reader locates the Name and Description columns by case-sensitive
//   substring match on the headers, trims the extracted values, and drops
//   rows where both come out empty.
//
// =============================================================================

package tabreader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/acadtools/competency-reformatter/internal/types"
)

// Header substrings used to locate the two columns of interest.
const (
	nameHeader        = "Name"
	descriptionHeader = "Description"
)

// headerRowIndex is the 0-based index of the column-header row; everything
// before it is file metadata.
const headerRowIndex = 1

// =============================================================================
// READER ENTRY POINT
// =============================================================================

// Read parses a competency definition file into input records, dispatching
// on the file extension.
//
// PARAMETERS:
//   - path: the path to a .csv, .xls, or .xlsx file.
//
// RETURNS:
//   - The ordered records of the file, already filtered of empty rows.
//   - An error if the file cannot be read or has no usable layout. A file
//     that parses but yields zero records returns an empty slice and no
//     error; the caller decides how to treat that.
func Read(path string) ([]types.InputRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path)
	case ".xlsx", ".xls":
		return readXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

// =============================================================================
// ROW EXTRACTION
// =============================================================================

// extractRecords converts raw rows (metadata row included) into records by
// locating the Name/Description columns and filtering empty rows. Shared by
// the CSV and XLSX paths.
func extractRecords(rows [][]string, source string) ([]types.InputRecord, error) {
	if len(rows) <= headerRowIndex {
		// Nothing past the metadata row; treat as an empty file.
		return []types.InputRecord{}, nil
	}

	nameCol, descCol, err := locateColumns(rows[headerRowIndex])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	records := make([]types.InputRecord, 0, len(rows)-headerRowIndex-1)
	for _, row := range rows[headerRowIndex+1:] {
		record := types.InputRecord{
			Name:        cellAt(row, nameCol),
			Description: cellAt(row, descCol),
		}
		if record.Name == "" && record.Description == "" {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

// locateColumns finds the Name and Description column indices by
// case-sensitive substring match on the header row.
func locateColumns(headers []string) (nameCol, descCol int, err error) {
	nameCol, descCol = -1, -1
	for i, header := range headers {
		header = strings.TrimSpace(header)
		if nameCol < 0 && strings.Contains(header, nameHeader) {
			nameCol = i
			continue
		}
		if descCol < 0 && strings.Contains(header, descriptionHeader) {
			descCol = i
		}
	}

	if nameCol < 0 {
		return 0, 0, fmt.Errorf("no %q column found in header row", nameHeader)
	}
	if descCol < 0 {
		return 0, 0, fmt.Errorf("no %q column found in header row", descriptionHeader)
	}
	return nameCol, descCol, nil
}

// cellAt returns the trimmed cell at index col, or "" for short rows.
func cellAt(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
