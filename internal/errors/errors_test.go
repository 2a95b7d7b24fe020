package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestSchemaMismatch_NamesExpectedAndActual(t *testing.T) {
	err := SchemaMismatch("Ocean Health Index (score)", []string{"Year", "Entity", "Code"})

	msg := err.Error()
	if !strings.Contains(msg, "Ocean Health Index (score)") {
		t.Errorf("message missing expected column: %s", msg)
	}
	// Actual columns are listed sorted for stable messages.
	if !strings.Contains(msg, "Code, Entity, Year") {
		t.Errorf("message missing actual columns: %s", msg)
	}
}

func TestWrap_PreservesCode(t *testing.T) {
	inner := DataSourceMissing("data/x.csv")
	wrapped := Wrap(inner, "loading indicator")

	if GetCode(wrapped) != CodeDataSourceMissing {
		t.Errorf("code = %s, want %s", GetCode(wrapped), CodeDataSourceMissing)
	}
	if !stderrors.Is(wrapped, wrapped) {
		t.Error("wrapped error should match itself")
	}

	var appErr *AppError
	if !stderrors.As(wrapped, &appErr) {
		t.Fatal("wrapped error should unwrap to AppError")
	}
}

func TestWrap_NilIsNil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("wrapping nil should stay nil")
	}
}

func TestGetCode_ForeignError(t *testing.T) {
	if code := GetCode(stderrors.New("plain")); code != "UNKNOWN" {
		t.Errorf("code = %s, want UNKNOWN", code)
	}
}

func TestHasCode(t *testing.T) {
	err := UnknownIndicator("bogus")
	if !HasCode(err, CodeUnknownIndicator) {
		t.Error("HasCode should match the constructor's code")
	}
	if HasCode(err, CodeEmptyDataset) {
		t.Error("HasCode should not match a different code")
	}
}
