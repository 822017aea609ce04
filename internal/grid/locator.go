// Package grid locates rows and columns inside an in-memory snapshot of a
// sheet. Indices are 0-based; translation to A1 notation happens at the
// sheets boundary.
package grid

import "strings"

// NotFound is returned when no row or column matches.
const NotFound = -1

// FindRow returns the index of the first row whose column 0 exactly equals
// name. Matching is case-sensitive with no trimming; staff names are the
// join key across all sheets and must match byte for byte.
func FindRow(rows [][]string, name string) int {
	for i, row := range rows {
		if len(row) > 0 && row[0] == name {
			return i
		}
	}
	return NotFound
}

// FindFirstEmpty returns the first column index in [colStart, colEnd] whose
// cell is empty or whitespace-only. Cells past the end of a short row count
// as empty. Returns NotFound when the whole band is occupied.
func FindFirstEmpty(row []string, colStart, colEnd int) int {
	for j := colStart; j <= colEnd; j++ {
		if j >= len(row) || strings.TrimSpace(row[j]) == "" {
			return j
		}
	}
	return NotFound
}

// FindColumn scans row from colStart for a non-empty cell equal to token
// under the supplied equality function.
func FindColumn(row []string, colStart int, token string, eq func(cell, token string) bool) int {
	for j := colStart; j < len(row); j++ {
		if strings.TrimSpace(row[j]) == "" {
			continue
		}
		if eq(row[j], token) {
			return j
		}
	}
	return NotFound
}
