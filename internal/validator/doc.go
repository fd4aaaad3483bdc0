// Package validator provides the shared validation framework for skillsref.
//
// It defines types for representing validation issues (errors, warnings,
// info) and results shared by the frontmatter validator, the layout checks,
// and the markdown linter, plus a Reporter that renders results as colored
// text or JSON.
//
// # Basic Usage
//
//	result := &validator.Result{}
//	if name == "" {
//		result.AddError("name", "is required", name)
//	}
//
//	if result.HasErrors() {
//		// handle validation failure
//	}
package validator
