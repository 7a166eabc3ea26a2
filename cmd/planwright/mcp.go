package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mark3labs/planwright/internal/logger"
	"github.com/mark3labs/planwright/internal/mcpserver"
	"github.com/mark3labs/planwright/internal/tui"
)

var mcpFlags struct {
	provider   string
	outputDir  string
	promptFile string
	port       int
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the planning workflow as MCP tools over HTTP",
	Long: `Start an MCP server exposing the planning workflow as tools
(generate-plan, approve-plan, reject-plan, implement-plan, write-files).

The server holds a single agent, so tool calls share one plan and one
approval state. Runs until interrupted.`,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().StringVarP(&mcpFlags.provider, "provider", "p", "", "Plan provider: mock, openai, anthropic (default: config)")
	mcpCmd.Flags().StringVarP(&mcpFlags.outputDir, "output-dir", "o", "", "Directory to write generated files into (default: config)")
	mcpCmd.Flags().StringVar(&mcpFlags.promptFile, "prompt-file", "", "File whose content replaces the built-in system prompt")
	mcpCmd.Flags().IntVar(&mcpFlags.port, "port", 0, "Port to listen on (0 = random)")
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	a, err := newAgent(cfg)
	if err != nil {
		return err
	}

	srv := mcpserver.New(a, cfg.OutputDir)
	port, err := srv.Start(cmd.Context(), mcpFlags.port)
	if err != nil {
		return fmt.Errorf("starting MCP server: %w", err)
	}

	logger.Info("MCP server listening on port %d (provider: %s)", port, a.ProviderName())
	fmt.Println(tui.SuccessStyle.Render("MCP server ready: " + srv.URL()))
	fmt.Println(tui.DimStyle.Render("Press Ctrl+C to stop"))

	// Block until interrupted
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutting down MCP server")
	return srv.Stop()
}
