package agent

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mark3labs/planwright/internal/provider"
)

// fileTokenPattern matches inline-code file references in plan text, limited
// to the extensions the placeholder synthesis knows how to stub out.
var fileTokenPattern = regexp.MustCompile("`([^`]+\\.(py|md|txt|json|yaml))`")

// Canned contents for the mock synthesis path. Tests depend on these
// verbatim.
const (
	mockMainContent = "\"\"\"Main application entry point.\"\"\"\n\ndef main():\n    print(\"Hello, World!\")\n\nif __name__ == \"__main__\":\n    main()\n"

	mockUtilsContent = "\"\"\"Utility functions.\"\"\"\n\ndef helper_function():\n    \"\"\"A helpful utility function.\"\"\"\n    pass\n"

	mockReadmeContent = "# Project\n\nThis project was generated by the planning agent.\n\n## Usage\n\n```bash\npython main.py\n```\n"
)

// filesFromPlan turns plan text into file specs. The mock provider ignores
// the plan and emits a fixed set; hosted providers get a regex scan over the
// plan with placeholder content per extension. The placeholder layer stands
// in for a future content-generation step and is intentionally shallow.
func (a *Agent) filesFromPlan(plan, outputDir string) []FileSpec {
	if a.providerName == provider.Mock {
		return mockFiles(outputDir)
	}

	var files []FileSpec
	for _, match := range fileTokenPattern.FindAllStringSubmatch(plan, -1) {
		filename := match[1]
		files = append(files, FileSpec{
			Path:        filepath.Join(outputDir, filename),
			Content:     placeholderContent(filename),
			Description: fmt.Sprintf("Generated %s", filename),
		})
	}
	return files
}

// mockFiles returns the fixed three-file set used for the mock provider.
func mockFiles(outputDir string) []FileSpec {
	return []FileSpec{
		{
			Path:        filepath.Join(outputDir, "main.py"),
			Content:     mockMainContent,
			Description: "Main application file",
		},
		{
			Path:        filepath.Join(outputDir, "utils.py"),
			Content:     mockUtilsContent,
			Description: "Utility functions",
		},
		{
			Path:        filepath.Join(outputDir, "README.md"),
			Content:     mockReadmeContent,
			Description: "Project documentation",
		},
	}
}

// placeholderContent picks boilerplate by file extension.
func placeholderContent(filename string) string {
	switch {
	case strings.HasSuffix(filename, ".py"):
		return fmt.Sprintf("\"\"\"Generated Python file: %s\"\"\"\n\n# TODO: Implement based on plan\n", filename)
	case strings.HasSuffix(filename, ".md"):
		return fmt.Sprintf("# %s\n\nGenerated documentation.\n", filename)
	case strings.HasSuffix(filename, ".json"):
		return "{}\n"
	case strings.HasSuffix(filename, ".yaml"):
		return "# YAML configuration\n"
	default:
		return "# Generated file\n"
	}
}
