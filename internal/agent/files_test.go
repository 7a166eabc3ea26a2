package agent

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mark3labs/planwright/internal/provider"
)

func approvedAgent(t *testing.T, providerName, plan string) *Agent {
	t.Helper()
	a := NewWithProvider(providerName, &scriptedProvider{plan: plan})
	_, err := a.GeneratePlan("requirement")
	require.NoError(t, err)
	require.NoError(t, a.ApprovePlan())
	return a
}

func TestMockSynthesis_FixedFileSet(t *testing.T) {
	a := newMockAgent(t)
	_, err := a.GeneratePlan("Create a simple Python calculator application")
	require.NoError(t, err)
	require.NoError(t, a.ApprovePlan())

	files, err := a.ImplementPlan("out")
	require.NoError(t, err)
	require.Len(t, files, 3)

	assert.Equal(t, filepath.Join("out", "main.py"), files[0].Path)
	assert.Equal(t, filepath.Join("out", "utils.py"), files[1].Path)
	assert.Equal(t, filepath.Join("out", "README.md"), files[2].Path)

	assert.Equal(t, mockMainContent, files[0].Content)
	assert.Equal(t, mockUtilsContent, files[1].Content)
	assert.Equal(t, mockReadmeContent, files[2].Content)
}

func TestMockSynthesis_IgnoresPlanText(t *testing.T) {
	// The mock policy emits the fixed set regardless of what the plan says.
	a := approvedAgent(t, provider.Mock, "plan mentioning `other.py` and `data.json`")

	files, err := a.ImplementPlan("out")
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, filepath.Join("out", "main.py"), files[0].Path)
}

func TestPlanScanSynthesis(t *testing.T) {
	plan := "## Files\n" +
		"- `app/main.py` - entry point\n" +
		"- `README.md` - docs\n" +
		"- `config.json` - settings\n" +
		"- `notes.txt` - scratch\n" +
		"- `deploy.yaml` - pipeline\n" +
		"- `binary.exe` - not extracted\n"
	a := approvedAgent(t, provider.OpenAI, plan)

	files, err := a.ImplementPlan("out")
	require.NoError(t, err)
	require.Len(t, files, 5, "only the whitelisted extensions are extracted")

	wantPaths := []string{
		filepath.Join("out", "app/main.py"),
		filepath.Join("out", "README.md"),
		filepath.Join("out", "config.json"),
		filepath.Join("out", "notes.txt"),
		filepath.Join("out", "deploy.yaml"),
	}
	for i, f := range files {
		assert.Equal(t, wantPaths[i], f.Path)
	}
}

func TestPlanScanSynthesis_KeepsDuplicatesInOrder(t *testing.T) {
	plan := "First `main.py`, then `utils.py`, then `main.py` again."
	a := approvedAgent(t, provider.Anthropic, plan)

	files, err := a.ImplementPlan(".")
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "main.py", filepath.Base(files[0].Path))
	assert.Equal(t, "utils.py", filepath.Base(files[1].Path))
	assert.Equal(t, "main.py", filepath.Base(files[2].Path))
}

func TestPlanScanSynthesis_NoMatches(t *testing.T) {
	a := approvedAgent(t, provider.OpenAI, "a plan that names no files at all")

	files, err := a.ImplementPlan("out")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestPlaceholderContent(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"script.py", "\"\"\"Generated Python file: script.py\"\"\"\n\n# TODO: Implement based on plan\n"},
		{"docs.md", "# docs.md\n\nGenerated documentation.\n"},
		{"config.json", "{}\n"},
		{"deploy.yaml", "# YAML configuration\n"},
		{"notes.txt", "# Generated file\n"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, placeholderContent(tt.filename))
		})
	}
}

func TestPlanScanSynthesis_Descriptions(t *testing.T) {
	a := approvedAgent(t, provider.OpenAI, "create `main.py`")

	files, err := a.ImplementPlan("out")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.True(t, strings.HasPrefix(files[0].Description, "Generated "))
	assert.Contains(t, files[0].Description, "main.py")
}
