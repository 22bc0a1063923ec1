package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"semanticcode/internal/commands"
	"semanticcode/internal/config"
	"semanticcode/internal/logging"
)

// Version is set at build time via -ldflags "-X main.Version=X.Y.Z"
var Version = "0.0.0-dev"

var rootCmd = &cobra.Command{
	Use:   "semanticcode",
	Short: "SemanticCode - manage Claude Code configuration",
	Long: `SemanticCode manages the Claude Code configuration directory:
agent definitions, settings, profiles, MCP servers and the agent hub.

Commands:
  agents              Manage local agent definitions
  hub                 Browse and install agents from the hub
  settings            Inspect and edit settings.json
  profiles            Manage settings profiles
  mcp                 Manage MCP servers
  watch               Watch the agents directory for changes
  update              Check for a newer release

Examples:
  semanticcode agents list
  semanticcode hub install code-reviewer
  semanticcode settings set --model claude-sonnet-4-20250514
  semanticcode profiles use work

Config: ~/.claude (override with CLAUDE_CONFIG_DIR)`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(commands.AgentsCmd)
	rootCmd.AddCommand(commands.HubCmd)
	rootCmd.AddCommand(commands.SettingsCmd)
	rootCmd.AddCommand(commands.ProfilesCmd)
	rootCmd.AddCommand(commands.McpCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.UpdateCmd)
}

func main() {
	godotenv.Load()
	logging.Init()

	commands.AppVersion = Version
	commands.Init(config.Load())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
