package errors

import (
	"fmt"
	"testing"
)

func TestViolationErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		want string
		v    Violation
	}{
		{
			name: "message only",
			v:    Violation{Code: CodeFixedValueMismatch, Message: "srsName missing"},
			want: "[geoloc-fixed-value] srsName missing",
		},
		{
			name: "with path",
			v:    Violation{Code: CodeExclusiveChoiceViolated, Message: "no coordinate form", Path: "Point_WGS84E_3D"},
			want: "[geoloc-exclusive-choice] no coordinate form at Point_WGS84E_3D",
		},
		{
			name: "with expected",
			v: Violation{
				Code:     CodeExclusiveChoiceViolated,
				Message:  "no coordinate form",
				Expected: []string{"pos", "coordinates"},
			},
			want: "[geoloc-exclusive-choice] no coordinate form (expected: pos, coordinates)",
		},
		{
			name: "with actual",
			v: Violation{
				Code:    CodeFixedValueMismatch,
				Message: "srsName mismatch",
				Actual:  "EPSG:4326",
			},
			want: "[geoloc-fixed-value] srsName mismatch (actual: EPSG:4326)",
		},
		{
			name: "with all",
			v: Violation{
				Code:     CodeCardinalityViolated,
				Message:  "repeated property",
				Path:     "GEOLOCInstance/remarks",
				Expected: []string{"at most one"},
				Actual:   "2",
			},
			want: "[geoloc-cardinality] repeated property at GEOLOCInstance/remarks (expected: at most one) (actual: 2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewViolation(t *testing.T) {
	v := NewViolation(CodeFixedValueMismatch, "srsName missing", "Point_WGS84E_3D/@srsName")
	if v.Code != CodeFixedValueMismatch {
		t.Fatalf("Code = %q, want %q", v.Code, CodeFixedValueMismatch)
	}
	if v.Message != "srsName missing" {
		t.Fatalf("Message = %q, want %q", v.Message, "srsName missing")
	}
	if v.Path != "Point_WGS84E_3D/@srsName" {
		t.Fatalf("Path = %q, want %q", v.Path, "Point_WGS84E_3D/@srsName")
	}
}

func TestNewViolationf(t *testing.T) {
	v := NewViolationf(CodeCardinalityViolated, "GEOLOCInstance", "property %s repeated", "remarks")
	if v.Code != CodeCardinalityViolated {
		t.Fatalf("Code = %q, want %q", v.Code, CodeCardinalityViolated)
	}
	if v.Message != "property remarks repeated" {
		t.Fatalf("Message = %q, want %q", v.Message, "property remarks repeated")
	}
	if v.Path != "GEOLOCInstance" {
		t.Fatalf("Path = %q, want %q", v.Path, "GEOLOCInstance")
	}
}

func TestViolationListError(t *testing.T) {
	one := Violation{Code: CodeFixedValueMismatch, Message: "srsName missing"}
	two := Violation{Code: CodeExclusiveChoiceViolated, Message: "no coordinate form"}

	tests := []struct {
		name string
		want string
		list ViolationList
	}{
		{
			name: "empty",
			list: ViolationList{},
			want: "no violations",
		},
		{
			name: "single",
			list: ViolationList{one},
			want: "[geoloc-fixed-value] srsName missing",
		},
		{
			name: "multiple",
			list: ViolationList{one, two},
			want: "[geoloc-fixed-value] srsName missing (and 1 more)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.list.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAsViolations(t *testing.T) {
	list := ViolationList{
		{Code: CodeFixedValueMismatch, Message: "srsName missing"},
		{Code: CodeExclusiveChoiceViolated, Message: "no coordinate form"},
	}
	wrapped := fmt.Errorf("check failed: %w", list)

	got, ok := AsViolations(wrapped)
	if !ok {
		t.Fatalf("AsViolations() ok = false, want true")
	}
	if len(got) != 2 {
		t.Fatalf("AsViolations() len = %d, want 2", len(got))
	}
	if got[0].Code != CodeFixedValueMismatch || got[1].Code != CodeExclusiveChoiceViolated {
		t.Fatalf("AsViolations() codes = [%s %s]", got[0].Code, got[1].Code)
	}
}

func TestAsViolationsNonViolationError(t *testing.T) {
	if _, ok := AsViolations(fmt.Errorf("boom")); ok {
		t.Fatal("AsViolations() ok = true for plain error, want false")
	}
	if _, ok := AsViolations(nil); ok {
		t.Fatal("AsViolations() ok = true for nil, want false")
	}
}
