package testutil

import "github.com/devw-tools/devw/pkg/types"

// SecurityBlock spans two scopes.
func SecurityBlock() types.BlockDefinition {
	return types.BlockDefinition{
		ID:          "security-basics",
		Name:        "Security Basics",
		Description: "Baseline security rules",
		Version:     "1.0.0",
		Rules: []types.BlockRule{
			{ID: "no-secrets", Scope: "security", Severity: "error", Content: "Never commit secrets."},
			{ID: "validate-input", Scope: "security", Severity: "error", Content: "Validate all external input."},
			{ID: "review-deps", Scope: "conventions", Severity: "warning", Content: "Review new dependencies."},
		},
	}
}

// TestingBlock has a single scope.
func TestingBlock() types.BlockDefinition {
	return types.BlockDefinition{
		ID:          "testing-standards",
		Name:        "Testing Standards",
		Description: "How tests are written",
		Version:     "0.3.0",
		Rules: []types.BlockRule{
			{ID: "table-tests", Scope: "testing", Severity: "info", Content: "Prefer table-driven tests.", Tags: []string{"go"}},
		},
	}
}
