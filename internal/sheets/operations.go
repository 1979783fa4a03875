package sheets

import (
	"fmt"
	"strings"
)

// InputRange is the identifier column of sheetName, skipping the header row.
func InputRange(sheetName string) string {
	return quoteSheetName(sheetName) + "!A2:A"
}

// OutputRange is the three-column table new stat rows are appended to.
func OutputRange(sheetName string) string {
	return quoteSheetName(sheetName) + "!A:C"
}

// quoteSheetName wraps names that are not plain words in single quotes, as A1
// notation requires. Embedded quotes are doubled.
func quoteSheetName(name string) string {
	plain := name != ""
	for _, r := range name {
		if !(r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			plain = false
			break
		}
	}
	if plain {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// CellString safely extracts a cell at the given index as text.
func CellString(row []interface{}, index int) string {
	if len(row) > index && row[index] != nil {
		return fmt.Sprintf("%v", row[index])
	}
	return ""
}
