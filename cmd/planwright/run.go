package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mark3labs/planwright/internal/agent"
	"github.com/mark3labs/planwright/internal/logger"
	"github.com/mark3labs/planwright/internal/tui"
)

var runFlags struct {
	provider    string
	outputDir   string
	promptFile  string
	autoApprove bool
	overwrite   bool
}

var runCmd = &cobra.Command{
	Use:   "run <requirement>",
	Short: "Generate a plan, ask for approval, then write the planned files",
	Long: `Run the full planning workflow for a requirement.

The run command generates a Markdown implementation plan, renders it for
review, and asks for approval. Nothing touches the filesystem until the plan
is approved. On approval the planned files are created under the output
directory; existing files abort the write unless --overwrite is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runFlags.provider, "provider", "p", "", "Plan provider: mock, openai, anthropic (default: config)")
	runCmd.Flags().StringVarP(&runFlags.outputDir, "output-dir", "o", "", "Directory to write generated files into (default: config)")
	runCmd.Flags().StringVar(&runFlags.promptFile, "prompt-file", "", "File whose content replaces the built-in system prompt")
	runCmd.Flags().BoolVarP(&runFlags.autoApprove, "auto-approve", "y", false, "Approve the plan without prompting")
	runCmd.Flags().BoolVar(&runFlags.overwrite, "overwrite", false, "Overwrite files that already exist")
}

func runRun(cmd *cobra.Command, args []string) error {
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

	if runFlags.autoApprove {
		fmt.Println(tui.HintStyle.Render("Auto-approving plan (--auto-approve)"))
	} else {
		approved, err := tui.Confirm("Approve this plan?")
		if err != nil {
			return fmt.Errorf("reading approval: %w", err)
		}
		if !approved {
			a.RejectPlan()
			fmt.Println(tui.DimStyle.Render("Plan rejected, nothing written."))
			return nil
		}
	}

	if err := a.ApprovePlan(); err != nil {
		return err
	}

	files, err := a.ImplementPlan(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("implementing plan: %w", err)
	}

	fmt.Println(tui.TitleStyle.Render("Planned files"))
	for _, f := range files {
		fmt.Printf("  • %s - %s\n", f.Path, f.Description)
	}

	if err := a.WriteFiles(files, runFlags.overwrite); err != nil {
		if errors.Is(err, agent.ErrFileExists) {
			fmt.Println(tui.HintStyle.Render("Use --overwrite to replace existing files"))
		}
		return err
	}

	fmt.Println(tui.SuccessStyle.Render(fmt.Sprintf("Wrote %d file(s) to %s", len(files), cfg.OutputDir)))
	return nil
}
