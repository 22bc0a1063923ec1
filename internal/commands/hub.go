package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var hubForceRefresh bool

var HubCmd = &cobra.Command{
	Use:   "hub",
	Short: "Browse and install agents from the hub",
	Long:  `Fetch the remote agent catalog and install agents into the local agents directory.`,
}

var hubListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the hub catalog",
	RunE:  runHubList,
}

var hubInstallCmd = &cobra.Command{
	Use:   "install [id]",
	Short: "Install an agent from the hub",
	Args:  cobra.ExactArgs(1),
	RunE:  runHubInstall,
}

var hubRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Re-fetch the catalog, skipping the cache",
	RunE:  runHubRefresh,
}

var hubClearCacheCmd = &cobra.Command{
	Use:   "clear-cache",
	Short: "Drop the cached catalog",
	RunE:  runHubClearCache,
}

func init() {
	hubListCmd.Flags().BoolVar(&hubForceRefresh, "refresh", false, "Skip the cache and fetch the catalog again")

	HubCmd.AddCommand(hubListCmd)
	HubCmd.AddCommand(hubInstallCmd)
	HubCmd.AddCommand(hubRefreshCmd)
	HubCmd.AddCommand(hubClearCacheCmd)
}

func runHubRefresh(cmd *cobra.Command, args []string) error {
	catalog := hubService.Fetch(cmd.Context(), true)
	if catalog == nil {
		return fmt.Errorf("agent hub is unavailable")
	}
	fmt.Printf("🔄 Refreshed catalog: %d agent(s)\n", len(catalog.Agents))
	return nil
}

func runHubList(cmd *cobra.Command, args []string) error {
	catalog := hubService.Fetch(cmd.Context(), hubForceRefresh)
	if catalog == nil {
		return fmt.Errorf("agent hub is unavailable and no cached catalog exists")
	}

	fmt.Printf("🌐 %s", catalog.Title)
	if catalog.Version != "" {
		fmt.Printf(" (v%s)", catalog.Version)
	}
	fmt.Printf("\n\n")

	for _, agent := range catalog.Agents {
		marker := " "
		if agent.Installed {
			marker = "✅"
		}
		fmt.Printf("  %s %s (%s)\n", marker, agent.ID, agent.Name)
		if agent.Description != "" {
			fmt.Printf("      %s\n", agent.Description)
		}
	}
	return nil
}

func runHubInstall(cmd *cobra.Command, args []string) error {
	catalog := hubService.Fetch(cmd.Context(), false)
	if catalog == nil {
		return fmt.Errorf("agent hub is unavailable")
	}

	for i := range catalog.Agents {
		if catalog.Agents[i].ID != args[0] {
			continue
		}
		if catalog.Agents[i].Installed {
			fmt.Printf("✅ Agent %s is already installed\n", args[0])
			return nil
		}
		if !hubService.Install(cmd.Context(), &catalog.Agents[i]) {
			return fmt.Errorf("failed to install agent %q", args[0])
		}
		fmt.Printf("📥 Installed agent: %s.md\n", args[0])
		return nil
	}
	return fmt.Errorf("agent %q not found in the hub catalog", args[0])
}

func runHubClearCache(cmd *cobra.Command, args []string) error {
	hubService.ClearCache()
	fmt.Println("🗑️ Hub cache cleared")
	return nil
}
