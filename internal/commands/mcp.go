package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"semanticcode/internal/models"
	"semanticcode/internal/services"
)

var (
	mcpCommand string
	mcpArgs    []string
	mcpEnv     []string
)

var McpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Manage MCP servers",
	Long:  `Register, remove and inspect MCP servers. Changes are kept in the local registry and synced to the claude CLI when it is available.`,
}

var mcpListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all MCP servers and their status",
	RunE:  runMcpList,
}

var mcpAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Register an MCP server",
	Long: `Register an MCP server.

Examples:
  semanticcode mcp add github --command npx --args -y --args @modelcontextprotocol/server-github
  semanticcode mcp add fetch --command npx --args -y --args @modelcontextprotocol/server-fetch`,
	Args: cobra.ExactArgs(1),
	RunE: runMcpAdd,
}

var mcpRemoveCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Remove an MCP server",
	Args:  cobra.ExactArgs(1),
	RunE:  runMcpRemove,
}

var mcpEnableCmd = &cobra.Command{
	Use:   "enable [name]",
	Short: "Enable an MCP server",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return toggleMcp(args[0], true) },
}

var mcpDisableCmd = &cobra.Command{
	Use:   "disable [name]",
	Short: "Disable an MCP server",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return toggleMcp(args[0], false) },
}

var mcpSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push all local servers to the claude CLI",
	RunE:  runMcpSync,
}

var mcpTemplatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List ready-made server templates",
	RunE:  runMcpTemplates,
}

func init() {
	mcpAddCmd.Flags().StringVar(&mcpCommand, "command", "", "Server launch command (required)")
	mcpAddCmd.Flags().StringArrayVar(&mcpArgs, "args", nil, "Command argument (repeatable)")
	mcpAddCmd.Flags().StringArrayVar(&mcpEnv, "env", nil, "KEY=VALUE environment entry (repeatable)")
	mcpAddCmd.MarkFlagRequired("command")

	McpCmd.AddCommand(mcpListCmd)
	McpCmd.AddCommand(mcpAddCmd)
	McpCmd.AddCommand(mcpRemoveCmd)
	McpCmd.AddCommand(mcpEnableCmd)
	McpCmd.AddCommand(mcpDisableCmd)
	McpCmd.AddCommand(mcpSyncCmd)
	McpCmd.AddCommand(mcpTemplatesCmd)
}

func runMcpSync(cmd *cobra.Command, args []string) error {
	if !mcpService.CLIAvailable(cmd.Context()) {
		return fmt.Errorf("claude CLI not found on PATH")
	}
	mcpService.SyncAll(cmd.Context())
	fmt.Println("✅ Synced local servers to the claude CLI")
	return nil
}

func runMcpList(cmd *cobra.Command, args []string) error {
	statuses := mcpService.Statuses(cmd.Context())
	if len(statuses) == 0 {
		fmt.Println("No MCP servers configured.")
		return nil
	}

	fmt.Printf("📦 %d MCP server(s)\n\n", len(statuses))
	for _, st := range statuses {
		state := "disabled"
		if st.IsEnabled {
			state = "enabled"
		}
		running := ""
		if st.IsRunning {
			running = ", running"
		}
		fmt.Printf("  • %s (%s%s)\n", st.Name, state, running)
		if st.Configuration != nil {
			fmt.Printf("    %s %s\n", st.Configuration.Command, strings.Join(st.Configuration.Args, " "))
		}
	}
	return nil
}

func runMcpAdd(cmd *cobra.Command, args []string) error {
	server := &models.McpServer{
		Command: mcpCommand,
		Args:    mcpArgs,
	}
	for _, entry := range mcpEnv {
		kv := strings.SplitN(entry, "=", 2)
		if len(kv) != 2 {
			return fmt.Errorf("invalid --env entry %q, expected KEY=VALUE", entry)
		}
		if server.Env == nil {
			server.Env = make(map[string]string)
		}
		server.Env[kv[0]] = kv[1]
	}

	result := mcpService.ValidateServer(args[0], server)
	for _, w := range result.Warnings {
		fmt.Printf("⚠️ %s\n", w)
	}
	if !result.IsValid() {
		return fmt.Errorf("invalid server: %s", result.ErrorMessage())
	}

	if !mcpService.Add(cmd.Context(), args[0], server) {
		return fmt.Errorf("failed to register server %q", args[0])
	}
	fmt.Printf("✅ Registered MCP server: %s\n", args[0])
	return nil
}

func runMcpRemove(cmd *cobra.Command, args []string) error {
	if !mcpService.Remove(cmd.Context(), args[0]) {
		return fmt.Errorf("server %q not found", args[0])
	}
	fmt.Printf("🗑️ Removed MCP server: %s\n", args[0])
	return nil
}

func toggleMcp(name string, enabled bool) error {
	if !mcpService.Enable(name, enabled) {
		return fmt.Errorf("server %q not found", name)
	}
	if enabled {
		fmt.Printf("✅ Enabled MCP server: %s\n", name)
	} else {
		fmt.Printf("⏸️ Disabled MCP server: %s\n", name)
	}
	return nil
}

func runMcpTemplates(cmd *cobra.Command, args []string) error {
	for _, tpl := range services.Templates() {
		fmt.Printf("  • %s: %s\n", tpl.Name, tpl.Description)
		fmt.Printf("    %s %s\n", tpl.Server.Command, strings.Join(tpl.Server.Args, " "))
	}
	return nil
}
