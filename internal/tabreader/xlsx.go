// =============================================================================
// Competency Framework Reformatter - Spreadsheet Input
// =============================================================================
//
// Spreadsheet-binary path of the tabular reader, built on excelize. Only the
// first sheet is read; source files carry one program per file.
//
// =============================================================================

package tabreader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/acadtools/competency-reformatter/internal/types"
)

// readXLSX reads a spreadsheet file into input records.
func readXLSX(path string) ([]types.InputRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return []types.InputRecord{}, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	return extractRecords(rows, path)
}
