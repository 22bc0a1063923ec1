package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"

	"semanticcode/internal/models"
)

const (
	hubCacheKey     = "agent_hub_catalog"
	hubMemoryTTL    = 30 * time.Minute
	hubDiskMaxAge   = 24 * time.Hour
	hubUserAgent    = "SemanticCode/1.0"
	hubFetchTimeout = 15 * time.Second
)

// HubService fetches the remote agent catalog and keeps it in a two-tier
// cache: a short-lived in-memory tier and a disk snapshot consulted when the
// network is unavailable. It also installs catalog agents into the local
// agents directory.
type HubService struct {
	mu         sync.Mutex
	cache      *cache.Cache
	client     *http.Client
	catalogURL string
	cachePath  string
	agents     *AgentService
	bus        *NotificationService
}

// NewHubService creates a hub service. catalogURL points at the remote
// agents.json, cachePath at the disk snapshot location.
func NewHubService(catalogURL, cachePath string, agents *AgentService, bus *NotificationService) *HubService {
	return &HubService{
		cache:      cache.New(hubMemoryTTL, 10*time.Minute),
		client:     &http.Client{Timeout: hubFetchTimeout},
		catalogURL: catalogURL,
		cachePath:  cachePath,
		agents:     agents,
		bus:        bus,
	}
}

// WithCache swaps the in-memory cache instance. Tests use it to control TTL.
func (s *HubService) WithCache(c *cache.Cache) *HubService {
	s.cache = c
	return s
}

// WithHTTPTimeout overrides the timeout applied to catalog and download
// requests.
func (s *HubService) WithHTTPTimeout(d time.Duration) *HubService {
	s.client.Timeout = d
	return s
}

// Fetch returns the agent catalog, or nil when no data is available from any
// tier. force skips the in-memory tier. The Installed flag on every returned
// item reflects the agents directory at call time.
//
// Overlapping forced refreshes are serialized; the last writer wins.
func (s *HubService) Fetch(ctx context.Context, force bool) *models.HubCatalog {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !force {
		if cached, found := s.cache.Get(hubCacheKey); found {
			if catalog, ok := cached.(*models.HubCatalog); ok {
				return s.annotate(catalog)
			}
		}
	}

	if catalog := s.fetchRemote(ctx); catalog != nil {
		s.cache.Set(hubCacheKey, catalog, cache.DefaultExpiration)
		s.writeSnapshot(catalog)
		return s.annotate(catalog)
	}

	// The snapshot never enters the memory tier; the next fetch retries the
	// network.
	if catalog := s.readSnapshot(); catalog != nil {
		return s.annotate(catalog)
	}

	return nil
}

// Install downloads an agent's prompt document and writes it to the agents
// directory as {id}.md. On success the item is marked installed and an
// install event is published.
func (s *HubService) Install(ctx context.Context, item *models.HubAgent) bool {
	if item == nil || item.ID == "" || item.PromptURL == "" {
		return false
	}

	content, err := s.get(ctx, item.PromptURL)
	if err != nil {
		log.Printf("❌ [HUB] Failed to download agent %s: %v", item.Name, err)
		return false
	}

	dir := s.agents.Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("❌ [HUB] Failed to create agents directory: %v", err)
		return false
	}

	fileName := item.ID + ".md"
	if err := os.WriteFile(filepath.Join(dir, fileName), content, 0644); err != nil {
		log.Printf("❌ [HUB] Failed to write %s: %v", fileName, err)
		return false
	}

	item.Installed = true
	if s.bus != nil {
		s.bus.Publish(Event{Type: EventAgentInstalled, Payload: fileName})
	}
	log.Printf("📥 [HUB] Installed agent %s", fileName)
	return true
}

// ClearCache drops the in-memory entry and removes the disk snapshot.
// Installed agent files are untouched.
func (s *HubService) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Delete(hubCacheKey)
	if err := os.Remove(s.cachePath); err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️ [HUB] Failed to remove cache file: %v", err)
	}
}

func (s *HubService) fetchRemote(ctx context.Context) *models.HubCatalog {
	data, err := s.get(ctx, s.catalogURL)
	if err != nil {
		log.Printf("⚠️ [HUB] Catalog fetch failed: %v", err)
		return nil
	}

	var catalog models.HubCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		log.Printf("⚠️ [HUB] Catalog response invalid: %v", err)
		return nil
	}
	return &catalog
}

func (s *HubService) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", hubUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// writeSnapshot persists the catalog with a timestamp so a later offline run
// can tell how stale it is.
func (s *HubService) writeSnapshot(catalog *models.HubCatalog) {
	snapshot := models.HubCacheFile{
		Timestamp: time.Now().UTC(),
		Data:      catalog,
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.cachePath), 0755); err != nil {
		return
	}
	if err := os.WriteFile(s.cachePath, data, 0644); err != nil {
		log.Printf("⚠️ [HUB] Failed to write cache snapshot: %v", err)
	}
}

// readSnapshot returns the disk catalog when it is fresher than the maximum
// snapshot age, otherwise nil.
func (s *HubService) readSnapshot() *models.HubCatalog {
	data, err := os.ReadFile(s.cachePath)
	if err != nil {
		return nil
	}

	var snapshot models.HubCacheFile
	if err := json.Unmarshal(data, &snapshot); err != nil {
		log.Printf("⚠️ [HUB] Cache snapshot invalid: %v", err)
		return nil
	}
	if snapshot.Data == nil || time.Since(snapshot.Timestamp) > hubDiskMaxAge {
		return nil
	}
	return snapshot.Data
}

// annotate recomputes the Installed flag for every item from the agents
// directory.
func (s *HubService) annotate(catalog *models.HubCatalog) *models.HubCatalog {
	for i := range catalog.Agents {
		catalog.Agents[i].Installed = s.agents.Exists(catalog.Agents[i].ID + ".md")
	}
	return catalog
}
