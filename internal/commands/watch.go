package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"semanticcode/internal/services"
)

var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the agents directory for changes",
	Long:  `Watch the agents directory and print a line whenever agent files change. Useful while editing agents in an external editor.`,
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(agentService.Dir(), 0755); err != nil {
		return fmt.Errorf("failed to create agents directory: %w", err)
	}

	_, events := bus.Subscribe(16)
	watcher := services.NewWatcherService(agentService.Dir(), bus)
	if !watcher.Start() {
		return fmt.Errorf("failed to watch %s", agentService.Dir())
	}
	defer watcher.Stop()

	fmt.Printf("👁️ Watching %s (Ctrl+C to stop)\n", agentService.Dir())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case ev := <-events:
			if ev.Type == services.EventAgentsChanged {
				fmt.Printf("🔄 Agents changed (%s)\n", ev.Payload)
			}
		case <-sigs:
			fmt.Println("\n👋 Stopped watching")
			return nil
		case <-cmd.Context().Done():
			return nil
		}
	}
}
