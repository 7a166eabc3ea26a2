package provider

import "strings"

// mockPlanTemplate is the fixed plan returned by the mock provider, with one
// {{requirement}} substitution point. Tests across the repo treat this as the
// reference plan shape.
const mockPlanTemplate = `# Implementation Plan

## Requirement
{{requirement}}

## Files
- ` + "`main.py`" + ` - Main application entry point
- ` + "`utils.py`" + ` - Utility functions
- ` + "`README.md`" + ` - Documentation

## Steps
1. Set up project structure.
2. Implement core functionality.
3. Add error handling and validation.
4. Add basic documentation.
5. Add tests and verify the workflow.

## Dependencies
- No external dependencies required for basic implementation.

## Open Questions
- Are there any constraints on libraries/frameworks?
- What is the target Python version and runtime environment?
`

// MockProvider returns a fixed Markdown plan interpolating the requirement.
// It is pure and fully deterministic, which makes it the reference behavior
// for tests and offline use.
type MockProvider struct{}

// NewMock creates a mock plan provider.
func NewMock() *MockProvider {
	return &MockProvider{}
}

// GeneratePlan returns the canned plan template with the requirement
// substituted in. It never fails.
func (p *MockProvider) GeneratePlan(requirement string) (string, error) {
	return strings.ReplaceAll(mockPlanTemplate, "{{requirement}}", requirement), nil
}
