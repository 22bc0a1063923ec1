package models

import "strings"

// ValidationResult collects errors and warnings from a validation pass.
// Any error makes the result invalid; warnings are surfaced but never
// block a save.
type ValidationResult struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// IsValid reports whether the result carries no errors.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// HasWarnings reports whether the result carries any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AddError appends a non-empty error message.
func (r *ValidationResult) AddError(msg string) {
	if strings.TrimSpace(msg) != "" {
		r.Errors = append(r.Errors, msg)
	}
}

// AddWarning appends a non-empty warning message.
func (r *ValidationResult) AddWarning(msg string) {
	if strings.TrimSpace(msg) != "" {
		r.Warnings = append(r.Warnings, msg)
	}
}

// ErrorMessage joins all errors into one newline-separated string.
func (r *ValidationResult) ErrorMessage() string {
	return strings.Join(r.Errors, "\n")
}

// WarningMessage joins all warnings into one newline-separated string.
func (r *ValidationResult) WarningMessage() string {
	return strings.Join(r.Warnings, "\n")
}
