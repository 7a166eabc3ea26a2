package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/mark3labs/planwright/internal/logger"
	"github.com/mark3labs/planwright/internal/tui"
)

const (
	logoText1 = "█▀█ █   ▄▀█ █▄ █ █ █ █ █▀█ █ █▀▀ █ █ ▀█▀"
	logoText2 = "█▀▀ █▄▄ █▀█ █ ▀█ ▀▄▀▄▀ █▀▄ █ █▄█ █▀█  █ "

	logoColorFrom = "#cba6f7"
	logoColorTo   = "#89b4fa"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "planwright",
	Short: "Plan-first code generation with an explicit approval gate",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	line1 := tui.ApplyGradient(logoText1, logoColorFrom, logoColorTo)
	line2 := tui.ApplyGradient(logoText2, logoColorFrom, logoColorTo)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

planwright turns a natural-language requirement into a reviewable Markdown
implementation plan, waits for your explicit approval, and only then writes
generated files to disk. Plans come from a deterministic mock provider or
from OpenAI/Anthropic backends.`

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(configCmd)
}
