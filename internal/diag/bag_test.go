package diag

import (
	"testing"

	"sigil/internal/source"
)

func TestBagRespectsLimit(t *testing.T) {
	bag := NewBag(2)
	for i := 0; i < 3; i++ {
		ok := bag.Add(Diagnostic{Severity: SevError, Code: ReadUnknownChar})
		if i < 2 && !ok {
			t.Fatalf("Add %d rejected below limit", i)
		}
		if i == 2 && ok {
			t.Fatal("Add accepted past the limit")
		}
	}
	if bag.Len() != 2 {
		t.Errorf("Len() = %d, want 2", bag.Len())
	}
}

func TestBagHasErrorsAndWarnings(t *testing.T) {
	bag := NewBag(10)
	if bag.HasErrors() || bag.HasWarnings() {
		t.Fatal("empty bag reports diagnostics")
	}
	bag.Add(Diagnostic{Severity: SevWarning, Code: ReadInfo})
	if bag.HasErrors() {
		t.Error("warning counted as error")
	}
	if !bag.HasWarnings() {
		t.Error("warning not counted")
	}
	bag.Add(Diagnostic{Severity: SevError, Code: DefMissingName})
	if !bag.HasErrors() {
		t.Error("error not counted")
	}
}

func TestBagSortIsStableAndOrdered(t *testing.T) {
	bag := NewBag(10)
	bag.Add(Diagnostic{Severity: SevError, Code: DefMissingParams, Primary: source.Span{File: 1, Start: 5}})
	bag.Add(Diagnostic{Severity: SevError, Code: ReadUnknownChar, Primary: source.Span{File: 0, Start: 9}})
	bag.Add(Diagnostic{Severity: SevError, Code: DefMissingName, Primary: source.Span{File: 0, Start: 2}})
	bag.Sort()

	items := bag.Items()
	if items[0].Code != DefMissingName || items[1].Code != ReadUnknownChar || items[2].Code != DefMissingParams {
		t.Errorf("unexpected order after Sort: %v, %v, %v", items[0].Code, items[1].Code, items[2].Code)
	}
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{ReadUnterminatedString, "READ1002"},
		{DefMissingName, "DEF2001"},
		{UnknownCode, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("%d.ID() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestInvalidAndCodeOf(t *testing.T) {
	err := Invalid(DefBadParamVector, "parameter declaration %s should be a vector", "x")
	if err.Error() != "parameter declaration x should be a vector" {
		t.Errorf("message = %q", err.Error())
	}
	if CodeOf(err) != DefBadParamVector {
		t.Errorf("CodeOf = %v, want DefBadParamVector", CodeOf(err))
	}
	if CodeOf(nil) != UnknownCode {
		t.Errorf("CodeOf(nil) = %v, want UnknownCode", CodeOf(nil))
	}
}
