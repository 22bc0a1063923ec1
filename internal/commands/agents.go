package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"semanticcode/internal/models"
)

var (
	agentDescription string
	agentColor       string
	agentPromptFile  string
)

var AgentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "Manage local agent definitions",
	Long:  `List, inspect, create and delete the agent definition files in the Claude agents directory.`,
}

var agentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed agents",
	RunE:  runAgentsList,
}

var agentsShowCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Show one agent definition",
	Args:  cobra.ExactArgs(1),
	RunE:  runAgentsShow,
}

var agentsAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Create a new agent",
	Long: `Create a new agent definition file.

Examples:
  semanticcode agents add reviewer --description "Reviews pull requests"
  semanticcode agents add writer --color green --prompt-file prompt.md`,
	Args: cobra.ExactArgs(1),
	RunE: runAgentsAdd,
}

var agentsRemoveCmd = &cobra.Command{
	Use:     "remove [file]",
	Aliases: []string{"rm"},
	Short:   "Delete an agent",
	Args:    cobra.ExactArgs(1),
	RunE:    runAgentsRemove,
}

func init() {
	agentsAddCmd.Flags().StringVar(&agentDescription, "description", "", "Agent description")
	agentsAddCmd.Flags().StringVar(&agentColor, "color", "default", "Display color")
	agentsAddCmd.Flags().StringVar(&agentPromptFile, "prompt-file", "", "File holding the agent's prompt body")

	AgentsCmd.AddCommand(agentsListCmd)
	AgentsCmd.AddCommand(agentsShowCmd)
	AgentsCmd.AddCommand(agentsAddCmd)
	AgentsCmd.AddCommand(agentsRemoveCmd)
}

func runAgentsList(cmd *cobra.Command, args []string) error {
	agents := agentService.ListAll()
	if len(agents) == 0 {
		fmt.Println("No agents installed.")
		fmt.Printf("📁 Directory: %s\n", agentService.Dir())
		return nil
	}

	fmt.Printf("🤖 %d agent(s) in %s\n\n", len(agents), agentService.Dir())
	for _, agent := range agents {
		fmt.Printf("  • %s (%s)\n", agent.Name, agent.FileName)
		if agent.Description != "" {
			fmt.Printf("    %s\n", agent.Description)
		}
	}
	return nil
}

func runAgentsShow(cmd *cobra.Command, args []string) error {
	agent, ok := agentService.Load(args[0])
	if !ok {
		return fmt.Errorf("agent %q not found", args[0])
	}

	fmt.Printf("🤖 %s\n", agent.Name)
	fmt.Printf("📁 File: %s\n", agent.FilePath)
	if agent.Description != "" {
		fmt.Printf("💬 Description: %s\n", agent.Description)
	}
	fmt.Printf("🎨 Color: %s\n", agent.Color)
	if agent.Content != "" {
		fmt.Println()
		fmt.Println(agent.Content)
	}
	return nil
}

func runAgentsAdd(cmd *cobra.Command, args []string) error {
	agent := &models.Agent{
		Name:        args[0],
		Description: agentDescription,
		Color:       agentColor,
	}
	if agentPromptFile != "" {
		data, err := os.ReadFile(agentPromptFile)
		if err != nil {
			return fmt.Errorf("failed to read prompt file: %w", err)
		}
		agent.Content = string(data)
	}

	if !agentService.Save(agent) {
		return fmt.Errorf("failed to save agent %q", args[0])
	}
	fmt.Printf("✅ Created agent: %s\n", agent.FileName)
	return nil
}

func runAgentsRemove(cmd *cobra.Command, args []string) error {
	if !agentService.Delete(args[0]) {
		return fmt.Errorf("agent %q not found", args[0])
	}
	fmt.Printf("🗑️ Removed agent: %s\n", args[0])
	return nil
}
