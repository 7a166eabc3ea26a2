package main

import (
	"fmt"
	"os"

	"github.com/gosimple/slug"
	"github.com/spf13/cobra"

	"github.com/mark3labs/planwright/internal/logger"
	"github.com/mark3labs/planwright/internal/tui"
)

var planFlags struct {
	provider   string
	promptFile string
	save       string
}

var planCmd = &cobra.Command{
	Use:   "plan <requirement>",
	Short: "Generate and display a plan without writing any files",
	Long: `Generate an implementation plan for a requirement and render it to the
terminal. No approval is requested and no files are created. Pass --save to
also store the raw Markdown plan, either to the given path or to a filename
derived from the requirement.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planFlags.provider, "provider", "p", "", "Plan provider: mock, openai, anthropic (default: config)")
	planCmd.Flags().StringVar(&planFlags.promptFile, "prompt-file", "", "File whose content replaces the built-in system prompt")
	planCmd.Flags().StringVarP(&planFlags.save, "save", "s", "", "Save the raw plan to this path (omit value to derive from requirement)")
	planCmd.Flags().Lookup("save").NoOptDefVal = "auto"
}

func runPlan(cmd *cobra.Command, args []string) error {
	requirement := args[0]
	if requirement == "" {
		return fmt.Errorf("requirement cannot be empty")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	a, err := newAgent(cfg)
	if err != nil {
		return err
	}

	logger.Info("Generating plan via %s provider", a.ProviderName())
	plan, err := a.GeneratePlan(requirement)
	if err != nil {
		return fmt.Errorf("generating plan: %w", err)
	}

	fmt.Println(tui.Panel("Implementation Plan", tui.RenderMarkdown(plan, 100)))

	if planFlags.save == "" {
		return nil
	}

	path := planFlags.save
	if path == "auto" {
		path = slug.Make(requirement) + ".md"
	}
	if err := os.WriteFile(path, []byte(plan), 0644); err != nil {
		return fmt.Errorf("saving plan: %w", err)
	}
	fmt.Println(tui.SuccessStyle.Render("Saved plan to " + path))

	return nil
}
