package sheets

import "testing"

func TestParseRange(t *testing.T) {
	ref, err := ParseRange("2026년!A3:ZZ")
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	if ref.Sheet != "2026년" || ref.StartCol != 0 || ref.StartRow != 2 {
		t.Fatalf("unexpected ref %+v", ref)
	}
	if ref.EndCol != 701 || ref.EndRow != -1 {
		t.Fatalf("unexpected end bounds %+v", ref)
	}

	ref, err = ParseRange("연차계산!B20")
	if err != nil {
		t.Fatalf("ParseRange single cell: %v", err)
	}
	if ref.Sheet != "연차계산" || ref.StartCol != 1 || ref.StartRow != 19 || ref.EndCol != -1 {
		t.Fatalf("unexpected single-cell ref %+v", ref)
	}

	ref, err = ParseRange("off!A:C")
	if err != nil {
		t.Fatalf("ParseRange open rows: %v", err)
	}
	if ref.StartRow != -1 || ref.EndCol != 2 {
		t.Fatalf("unexpected open-row ref %+v", ref)
	}

	if _, err := ParseRange("no-bang"); err == nil {
		t.Fatalf("expected error for malformed range")
	}
}

func TestCellRef(t *testing.T) {
	ref, err := CellRef("2026년", 5, 2)
	if err != nil {
		t.Fatalf("CellRef: %v", err)
	}
	if ref != "2026년!F3" {
		t.Fatalf("CellRef = %q, want 2026년!F3", ref)
	}

	// Columns beyond Z need multi-letter names.
	ref, err = CellRef("s", 27, 0)
	if err != nil {
		t.Fatalf("CellRef: %v", err)
	}
	if ref != "s!AB1" {
		t.Fatalf("CellRef = %q, want s!AB1", ref)
	}
}

func TestRowRef(t *testing.T) {
	ref, err := RowRef("off", 1, 2, 4)
	if err != nil {
		t.Fatalf("RowRef: %v", err)
	}
	if ref != "off!B5:C5" {
		t.Fatalf("RowRef = %q, want off!B5:C5", ref)
	}
}
