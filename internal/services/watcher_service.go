package services

import (
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 500 * time.Millisecond

// WatcherService observes the agents directory and publishes a change event
// on the notification bus when .md files are created, written or removed.
// Rapid bursts of file system events collapse into a single notification.
type WatcherService struct {
	dir string
	bus *NotificationService

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	timer   *time.Timer
	done    chan struct{}
}

// NewWatcherService creates a watcher for dir publishing to bus.
func NewWatcherService(dir string, bus *NotificationService) *WatcherService {
	return &WatcherService{dir: dir, bus: bus}
}

// Start begins watching. Failures are logged and absorbed; the application
// simply runs without change notifications.
func (s *WatcherService) Start() bool {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("⚠️ [WATCHER] Failed to create watcher: %v", err)
		return false
	}

	if err := watcher.Add(s.dir); err != nil {
		log.Printf("⚠️ [WATCHER] Failed to watch %s: %v", s.dir, err)
		watcher.Close()
		return false
	}

	s.mu.Lock()
	s.watcher = watcher
	s.done = make(chan struct{})
	s.mu.Unlock()

	go s.loop(watcher)
	log.Printf("👁️ [WATCHER] Watching %s for changes", s.dir)
	return true
}

// Stop ends watching and cancels any pending notification.
func (s *WatcherService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watcher != nil {
		close(s.done)
		s.watcher.Close()
		s.watcher = nil
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *WatcherService) loop(watcher *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(event.Name, ".md") {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			s.scheduleNotify(filepath.Base(event.Name))

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("⚠️ [WATCHER] Watch error: %v", err)
		}
	}
}

// scheduleNotify resets the debounce timer so a burst of events produces one
// notification after the quiet period.
func (s *WatcherService) scheduleNotify(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watcher == nil {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	done := s.done
	s.timer = time.AfterFunc(watchDebounce, func() {
		select {
		case <-done:
			return
		default:
		}
		s.bus.Publish(Event{Type: EventAgentsChanged, Payload: name})
	})
}
