package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mark3labs/planwright/internal/config"
	"github.com/mark3labs/planwright/internal/tui"
)

var configInitGlobal bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage planwright configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the current effective settings",
	Long: `Write the current effective configuration to ./planwright.yml, or to
the XDG global location with --global. Existing values from config files and
environment variables are preserved in the written file.`,
	RunE: runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file locations",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("global:  %s\n", config.GlobalPath())
		fmt.Printf("project: %s\n", config.ProjectPath())
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitGlobal, "global", false, "Write to the XDG global config instead of ./planwright.yml")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	path := config.ProjectPath()
	if configInitGlobal {
		path = config.GlobalPath()
		err = config.WriteGlobal(cfg)
	} else {
		err = config.WriteProject(cfg)
	}
	if err != nil {
		return err
	}

	fmt.Println(tui.SuccessStyle.Render("Wrote config to " + path))
	return nil
}
