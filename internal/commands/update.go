package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var UpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check for a newer release",
	RunE:  runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	info := updateService.Check(cmd.Context())

	fmt.Printf("Current version: %s\n", info.CurrentVersion)
	if !info.CheckSuccessful {
		return fmt.Errorf("update check failed: %s", info.ErrorMessage)
	}

	fmt.Printf("Latest version:  %s\n", info.LatestVersion)
	if !info.HasUpdate {
		fmt.Println("✅ You are up to date")
		return nil
	}

	fmt.Println()
	fmt.Printf("🆕 Update available: %s\n", info.LatestVersion)
	if info.ReleaseURL != "" {
		fmt.Printf("   %s\n", info.ReleaseURL)
	}
	if info.Notes != "" {
		fmt.Println()
		fmt.Println(info.Notes)
	}
	return nil
}
