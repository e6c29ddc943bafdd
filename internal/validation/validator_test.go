package validation_test

import (
	"strings"
	"testing"

	"github.com/threaded-comments-api/internal/validation"
)

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		username string
		password string
		wantErrs int
	}{
		{"valid", "alice@example.com", "alice_01", "hunter2hunter2", 0},
		{"missing everything", "", "", "", 3},
		{"bad email", "not-an-email", "alice", "hunter2hunter2", 1},
		{"username too short", "alice@example.com", "ab", "hunter2hunter2", 1},
		{"username bad chars", "alice@example.com", "alice!", "hunter2hunter2", 1},
		{"password too short", "alice@example.com", "alice", "short", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validation.ValidateRegistration(tt.email, tt.username, tt.password, 8)
			if len(errs) != tt.wantErrs {
				t.Errorf("Expected %d errors, got %d: %v", tt.wantErrs, len(errs), errs)
			}
		})
	}
}

func TestValidateContent(t *testing.T) {
	if errs := validation.ValidateContent("hello", 1000); len(errs) != 0 {
		t.Errorf("Expected no errors for valid content, got %v", errs)
	}

	// Whitespace-only content counts as empty
	if errs := validation.ValidateContent("   \n\t  ", 1000); len(errs) != 1 {
		t.Errorf("Expected 1 error for whitespace content, got %d", len(errs))
	}

	// Exactly at the limit passes
	if errs := validation.ValidateContent(strings.Repeat("a", 1000), 1000); len(errs) != 0 {
		t.Errorf("Expected no errors at exact limit, got %v", errs)
	}

	// One past the limit is rejected, not truncated
	errs := validation.ValidateContent(strings.Repeat("a", 1001), 1000)
	if len(errs) != 1 {
		t.Fatalf("Expected 1 error past limit, got %d", len(errs))
	}
	if errs[0].Field != "content" {
		t.Errorf("Expected error on content field, got %s", errs[0].Field)
	}
}

func TestValidateContentCountsRunes(t *testing.T) {
	// 4 multibyte characters must count as 4, not 12
	if errs := validation.ValidateContent(strings.Repeat("界", 4), 4); len(errs) != 0 {
		t.Errorf("Expected rune-based length to pass, got %v", errs)
	}
}

func TestErrorsMessage(t *testing.T) {
	errs := validation.ValidateRegistration("", "alice", "hunter2hunter2", 8)
	if !strings.Contains(errs.Error(), "email is required") {
		t.Errorf("Error() should surface field messages, got %q", errs.Error())
	}
}
