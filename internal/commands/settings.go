package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"semanticcode/internal/services"
)

var (
	setToken     string
	setModel     string
	setFastModel string
	setBaseURL   string
	setMaxTokens int
)

var SettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect and edit Claude Code settings",
	Long:  `Show, modify and validate the settings.json document.`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update settings fields",
	Long: `Update one or more settings fields and save the document.

Examples:
  semanticcode settings set --token sk-ant-xxx --model claude-sonnet-4-20250514
  semanticcode settings set --max-tokens 8192`,
	RunE: runSettingsSet,
}

var settingsValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the current settings",
	RunE:  runSettingsValidate,
}

var settingsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default settings.json if none exists",
	RunE:  runSettingsInit,
}

var settingsModelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List selectable models",
	RunE:  runSettingsModels,
}

func init() {
	settingsSetCmd.Flags().StringVar(&setToken, "token", "", "API auth token")
	settingsSetCmd.Flags().StringVar(&setModel, "model", "", "Primary model")
	settingsSetCmd.Flags().StringVar(&setFastModel, "fast-model", "", "Small fast model")
	settingsSetCmd.Flags().StringVar(&setBaseURL, "base-url", "", "API base URL")
	settingsSetCmd.Flags().IntVar(&setMaxTokens, "max-tokens", 0, "Max tokens per response")

	SettingsCmd.AddCommand(settingsShowCmd)
	SettingsCmd.AddCommand(settingsSetCmd)
	SettingsCmd.AddCommand(settingsValidateCmd)
	SettingsCmd.AddCommand(settingsInitCmd)
	SettingsCmd.AddCommand(settingsModelsCmd)
}

func runSettingsInit(cmd *cobra.Command, args []string) error {
	// Load creates and persists the default document when the file is absent.
	settingsSvc.Load()
	fmt.Printf("✅ Settings ready at %s\n", settingsSvc.Path())
	return nil
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	settings := settingsSvc.Load()
	env := settings.Env

	fmt.Printf("⚙️ Settings (%s)\n\n", settingsSvc.Path())
	fmt.Printf("  Token:      %s\n", maskToken(env.AnthropicAuthToken))
	fmt.Printf("  Model:      %s\n", orUnset(env.AnthropicModel))
	fmt.Printf("  Fast model: %s\n", orUnset(env.AnthropicSmallFastModel))
	fmt.Printf("  Base URL:   %s\n", orUnset(env.AnthropicBaseURL))
	if env.AnthropicMaxTokens != nil {
		fmt.Printf("  Max tokens: %s\n", strconv.Itoa(*env.AnthropicMaxTokens))
	}
	if env.AnthropicTemperature != nil {
		fmt.Printf("  Temperature: %g\n", *env.AnthropicTemperature)
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	settings := settingsSvc.Load()

	if setToken != "" {
		settings.Env.AnthropicAuthToken = setToken
	}
	if setModel != "" {
		settings.Env.AnthropicModel = setModel
	}
	if setFastModel != "" {
		settings.Env.AnthropicSmallFastModel = setFastModel
	}
	if setBaseURL != "" {
		settings.Env.AnthropicBaseURL = setBaseURL
	}
	if cmd.Flags().Changed("max-tokens") {
		settings.Env.AnthropicMaxTokens = &setMaxTokens
	}

	if !settingsSvc.Save(settings) {
		return fmt.Errorf("failed to save settings")
	}
	fmt.Println("✅ Settings saved")

	result := settingsSvc.Validate(settings)
	for _, w := range result.Warnings {
		fmt.Printf("⚠️ %s\n", w)
	}
	for _, e := range result.Errors {
		fmt.Printf("❌ %s\n", e)
	}
	return nil
}

func runSettingsValidate(cmd *cobra.Command, args []string) error {
	result := settingsSvc.Validate(settingsSvc.Load())

	if result.IsValid() && !result.HasWarnings() {
		fmt.Println("✅ Settings are valid")
		return nil
	}
	for _, w := range result.Warnings {
		fmt.Printf("⚠️ %s\n", w)
	}
	for _, e := range result.Errors {
		fmt.Printf("❌ %s\n", e)
	}
	if !result.IsValid() {
		return fmt.Errorf("settings have %d error(s)", len(result.Errors))
	}
	return nil
}

func runSettingsModels(cmd *cobra.Command, args []string) error {
	fmt.Println("Primary models:")
	for _, m := range services.AvailableModels() {
		fmt.Printf("  • %s\n", m)
	}
	fmt.Println()
	fmt.Println("Small fast models:")
	for _, m := range services.AvailableSmallFastModels() {
		fmt.Printf("  • %s\n", m)
	}
	return nil
}

func maskToken(token string) string {
	if token == "" {
		return "(unset)"
	}
	if len(token) <= 8 {
		return "****"
	}
	return token[:6] + "..." + token[len(token)-2:]
}

func orUnset(v string) string {
	if v == "" {
		return "(unset)"
	}
	return v
}
