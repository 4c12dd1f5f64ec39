package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/logic-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/logic-hunter/internal/expr"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("expression is required")

	if err.Error() != "expression is required" {
		t.Errorf("expected 'expression is required', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("parse failed")
	err := apperr.NewValidationWrap("invalid expression", inner)

	if err.Error() != "invalid expression: parse failed" {
		t.Errorf("expected 'invalid expression: parse failed', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("empty group")

	wrapped := fmt.Errorf("failed to parse: %w", original)
	doubleWrapped := fmt.Errorf("handler error: %w", wrapped)

	var ve *apperr.ValidationError
	if !errors.As(doubleWrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through double wrapping")
	}
	if ve.Message != "empty group" {
		t.Errorf("expected 'empty group', got %q", ve.Message)
	}
}

func TestValidationError_NotFoundForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("listener closed")
	wrapped := fmt.Errorf("server error: %w", plain)

	var ve *apperr.ValidationError
	if errors.As(wrapped, &ve) {
		t.Fatal("errors.As should NOT find ValidationError in plain error chain")
	}
}

func TestValidationWrap_ExposesEngineKind(t *testing.T) {
	err := apperr.NewValidationWrap("invalid expression", expr.ErrMissingOperator)

	if !errors.Is(err, expr.ErrMissingOperator) {
		t.Fatal("wrapped engine sentinel should survive errors.Is")
	}
	if kind := expr.Kind(err); kind != "missing_operator" {
		t.Errorf("expected kind 'missing_operator', got %q", kind)
	}
}

func TestNotFoundError(t *testing.T) {
	inner := errors.New("no such id")
	err := apperr.NewNotFoundWrap("workspace not found", inner)

	if err.Error() != "workspace not found: no such id" {
		t.Errorf("unexpected message %q", err.Error())
	}

	var nf *apperr.NotFoundError
	if !errors.As(fmt.Errorf("wrap: %w", err), &nf) {
		t.Fatal("errors.As should find NotFoundError through wrapping")
	}
}
