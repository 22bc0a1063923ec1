package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var profileDescription string

var ProfilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage settings profiles",
	Long:  `Create, switch, duplicate and delete named settings profiles.`,
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles",
	RunE:  runProfilesList,
}

var profilesShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show one profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfilesShow,
}

var profilesUseCmd = &cobra.Command{
	Use:   "use [name]",
	Short: "Switch the current profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfilesUse,
}

var profilesCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a profile from the current settings",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfilesCreate,
}

var profilesDuplicateCmd = &cobra.Command{
	Use:   "duplicate [source] [new-name]",
	Short: "Copy an existing profile",
	Args:  cobra.ExactArgs(2),
	RunE:  runProfilesDuplicate,
}

var profilesDeleteCmd = &cobra.Command{
	Use:     "delete [name]",
	Aliases: []string{"rm"},
	Short:   "Delete a profile",
	Args:    cobra.ExactArgs(1),
	RunE:    runProfilesDelete,
}

var profilesSetDefaultCmd = &cobra.Command{
	Use:   "set-default [name]",
	Short: "Mark a profile as the default",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfilesSetDefault,
}

func init() {
	profilesCreateCmd.Flags().StringVar(&profileDescription, "description", "", "Profile description")
	profilesDuplicateCmd.Flags().StringVar(&profileDescription, "description", "", "Profile description")

	ProfilesCmd.AddCommand(profilesListCmd)
	ProfilesCmd.AddCommand(profilesShowCmd)
	ProfilesCmd.AddCommand(profilesUseCmd)
	ProfilesCmd.AddCommand(profilesCreateCmd)
	ProfilesCmd.AddCommand(profilesDuplicateCmd)
	ProfilesCmd.AddCommand(profilesDeleteCmd)
	ProfilesCmd.AddCommand(profilesSetDefaultCmd)
}

func runProfilesList(cmd *cobra.Command, args []string) error {
	idx := profileSvc.LoadIndex()
	profiles := profileSvc.List()

	fmt.Printf("📋 %d profile(s), current: %s\n\n", len(profiles), idx.CurrentProfile)
	for _, p := range profiles {
		markers := ""
		if p.Name == idx.CurrentProfile {
			markers += " *current*"
		}
		if p.IsDefault {
			markers += " [default]"
		}
		fmt.Printf("  • %s%s\n", p.Name, markers)
		if p.Description != "" {
			fmt.Printf("    %s\n", p.Description)
		}
	}
	return nil
}

func runProfilesShow(cmd *cobra.Command, args []string) error {
	profile, ok := profileSvc.LoadProfile(args[0])
	if !ok {
		return fmt.Errorf("profile %q not found", args[0])
	}

	fmt.Printf("📋 %s\n", profile.Name)
	if profile.Description != "" {
		fmt.Printf("💬 %s\n", profile.Description)
	}
	fmt.Printf("🕒 Updated: %s\n", profile.UpdatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("   Model: %s\n", orUnset(profile.Settings.Env.AnthropicModel))
	fmt.Printf("   Base URL: %s\n", orUnset(profile.Settings.Env.AnthropicBaseURL))
	return nil
}

func runProfilesUse(cmd *cobra.Command, args []string) error {
	if !profileSvc.SetCurrent(args[0]) {
		return fmt.Errorf("profile %q not found", args[0])
	}
	fmt.Printf("✅ Switched to profile: %s\n", args[0])
	return nil
}

func runProfilesCreate(cmd *cobra.Command, args []string) error {
	settings := settingsSvc.Load()
	if _, ok := profileSvc.Create(args[0], profileDescription, *settings); !ok {
		return fmt.Errorf("failed to create profile %q", args[0])
	}
	fmt.Printf("✅ Created profile: %s\n", args[0])
	return nil
}

func runProfilesDuplicate(cmd *cobra.Command, args []string) error {
	if _, ok := profileSvc.Duplicate(args[0], args[1], profileDescription); !ok {
		return fmt.Errorf("failed to duplicate profile %q", args[0])
	}
	fmt.Printf("✅ Duplicated %s to %s\n", args[0], args[1])
	return nil
}

func runProfilesDelete(cmd *cobra.Command, args []string) error {
	if !profileSvc.Delete(args[0]) {
		return fmt.Errorf("profile %q cannot be deleted", args[0])
	}
	fmt.Printf("🗑️ Deleted profile: %s\n", args[0])
	return nil
}

func runProfilesSetDefault(cmd *cobra.Command, args []string) error {
	if !profileSvc.SetDefaultFlag(args[0]) {
		return fmt.Errorf("profile %q not found", args[0])
	}
	fmt.Printf("✅ Default profile is now: %s\n", args[0])
	return nil
}
