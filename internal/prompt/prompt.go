// Package prompt holds the plan-generation prompt templates. Keeping them in
// one place lets hosted providers share the same instructions and makes
// overrides possible without touching provider code.
package prompt

import (
	"fmt"
	"os"
	"strings"
)

// DefaultSystemPrompt is the instruction text sent to hosted providers when
// no override is configured.
const DefaultSystemPrompt = `You are a senior software engineer and technical PM.
You write crisp, actionable implementation plans in Markdown.

Hard requirements for the plan output:
- Output MUST be valid Markdown.
- Include a section named "## Files" listing files to create/update, one per line, with backticks around paths (e.g. ` + "`app/main.py`" + `).
- Include "## Steps" as an ordered list with concrete actions.
- Include "## Open Questions" listing anything you need to clarify.
- Do not include any code implementation; this is planning only.
`

// DefaultUserTemplate is the user-message template. It has a single
// {{requirement}} substitution point.
const DefaultUserTemplate = `Create an implementation plan for the following user requirement.

User requirement:
{{requirement}}
`

// RenderUser injects the requirement into the user template and trims
// surrounding whitespace.
func RenderUser(requirement string) string {
	return strings.TrimSpace(strings.ReplaceAll(DefaultUserTemplate, "{{requirement}}", requirement))
}

// LoadFile reads a prompt override from a file path. The full file content
// becomes the system/instruction prompt. An empty path returns an empty
// string with no error.
func LoadFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read prompt file %s: %w", path, err)
	}
	return string(data), nil
}

// ResolveSystem applies the override precedence for the system prompt:
// prompt file content wins over an explicit override string, which wins over
// the built-in default. promptFile is read eagerly; a read error is surfaced
// rather than silently falling back.
func ResolveSystem(promptFile, override, fallback string) (string, error) {
	filePrompt, err := LoadFile(promptFile)
	if err != nil {
		return "", err
	}
	if s := strings.TrimSpace(filePrompt); s != "" {
		return s, nil
	}
	if s := strings.TrimSpace(override); s != "" {
		return s, nil
	}
	return strings.TrimSpace(fallback), nil
}
