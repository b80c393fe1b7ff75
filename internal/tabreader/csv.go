// =============================================================================
// Competency Framework Reformatter - CSV Input
// =============================================================================
//
// Delimited-text path of the tabular reader. Source exports are frequently
// hand-edited, so the reader is configured leniently: variable field counts
// and lazy quotes are accepted rather than rejected.
//
// =============================================================================

package tabreader

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/acadtools/competency-reformatter/internal/types"
)

// readCSV reads a delimited text file into input records.
func readCSV(path string) ([]types.InputRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	return extractRecords(stripBOMRows(rows), path)
}

// stripBOMRows removes a UTF-8 byte-order-mark from the first cell, where
// exports from spreadsheet tools tend to leave one.
func stripBOMRows(rows [][]string) [][]string {
	if len(rows) > 0 && len(rows[0]) > 0 {
		cell := rows[0][0]
		if len(cell) >= 3 && cell[0] == 0xEF && cell[1] == 0xBB && cell[2] == 0xBF {
			rows[0][0] = cell[3:]
		}
	}
	return rows
}
