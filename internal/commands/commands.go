// Package commands holds the cobra command tree. Services are wired once by
// Init and shared by every command.
package commands

import (
	"semanticcode/internal/config"
	"semanticcode/internal/services"
)

// AppVersion is set from main before Execute runs.
var AppVersion = "0.0.0-dev"

var (
	cfg           *config.Config
	agentService  *services.AgentService
	settingsSvc   *services.SettingsService
	profileSvc    *services.ProfileService
	hubService    *services.HubService
	mcpService    *services.McpService
	updateService *services.UpdateService
	bus           *services.NotificationService
)

// Init builds the service graph all commands run against.
func Init(c *config.Config) {
	cfg = c
	bus = services.NewNotificationService()
	agentService = services.NewAgentService(c.AgentsDir())
	settingsSvc = services.NewSettingsService(c.SettingsPath())
	profileSvc = services.NewProfileService(c.ProfilesDir(), settingsSvc)
	hubService = services.NewHubService(c.HubURL, c.HubCachePath(), agentService, bus).
		WithHTTPTimeout(c.HTTPTimeout)
	mcpService = services.NewMcpService(c.McpConfigPath())
	updateService = services.NewUpdateService(c.ReleasesURL, AppVersion)
}
