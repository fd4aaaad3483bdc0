package validator

import (
	"strings"
	"testing"
)

func TestResult_Severities(t *testing.T) {
	result := &Result{}

	if result.HasErrors() || result.HasWarnings() {
		t.Error("empty result should have no errors or warnings")
	}

	result.AddWarning("layout", "unexpected entry", "notes.txt")
	if result.HasErrors() {
		t.Error("warnings must not count as errors")
	}
	if !result.HasWarnings() {
		t.Error("HasWarnings() = false after AddWarning")
	}

	result.AddError("name", "is required", nil)
	result.AddInfo("license", "consider adding a license", nil)

	if len(result.Errors()) != 1 {
		t.Errorf("Errors() = %d, want 1", len(result.Errors()))
	}
	if len(result.Warnings()) != 1 {
		t.Errorf("Warnings() = %d, want 1", len(result.Warnings()))
	}
	if len(result.Issues) != 3 {
		t.Errorf("Issues = %d, want 3", len(result.Issues))
	}
}

func TestResult_NilReceiver(t *testing.T) {
	var result *Result
	if result.HasErrors() || result.HasWarnings() {
		t.Error("nil result should report no issues")
	}
	if result.Errors() != nil || result.Warnings() != nil {
		t.Error("nil result should return nil slices")
	}
}

func TestResult_Merge(t *testing.T) {
	a := &Result{}
	a.AddError("name", "is required", nil)

	b := &Result{}
	b.AddWarning("layout", "empty scripts directory", nil)

	a.Merge(b)
	a.Merge(nil)

	if len(a.Issues) != 2 {
		t.Errorf("merged Issues = %d, want 2", len(a.Issues))
	}
}

func TestIssue_Error(t *testing.T) {
	tests := []struct {
		name  string
		issue Issue
		want  string
	}{
		{
			name:  "with field and value",
			issue: Issue{Severity: SeverityError, Field: "name", Message: "too long", Value: "x"},
			want:  `error: field "name": too long (got x)`,
		},
		{
			name:  "message only",
			issue: Issue{Severity: SeverityWarning, Message: "missing SKILL.md"},
			want:  "warning: missing SKILL.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.issue.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReporter_Text(t *testing.T) {
	var sb strings.Builder
	result := &Result{}
	result.AddError("name", "is required", nil)
	result.AddWarning("layout", "unexpected entry", "extra.txt")

	if err := NewReporter(&sb, FormatText).Report(result); err != nil {
		t.Fatalf("Report() error: %v", err)
	}

	out := sb.String()
	if !strings.Contains(out, "1 error(s)") || !strings.Contains(out, "1 warning(s)") {
		t.Errorf("summary missing: %q", out)
	}
	if !strings.Contains(out, "is required") {
		t.Errorf("error detail missing: %q", out)
	}
}

func TestReporter_TextPassing(t *testing.T) {
	var sb strings.Builder
	if err := NewReporter(&sb, FormatText).Report(&Result{}); err != nil {
		t.Fatalf("Report() error: %v", err)
	}
	if !strings.Contains(sb.String(), "Validation passed") {
		t.Errorf("output = %q", sb.String())
	}
}

func TestReporter_JSON(t *testing.T) {
	var sb strings.Builder
	result := &Result{}
	result.AddError("description", "is required", nil)

	if err := NewReporter(&sb, FormatJSON).Report(result); err != nil {
		t.Fatalf("Report() error: %v", err)
	}

	out := sb.String()
	if !strings.Contains(out, `"issues"`) || !strings.Contains(out, `"description"`) {
		t.Errorf("JSON output = %q", out)
	}
}
