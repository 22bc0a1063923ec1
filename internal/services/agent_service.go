package services

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"semanticcode/internal/models"
)

// AgentService manages the agent definition files in a single directory.
// Every operation is best-effort: failures are logged and absorbed so callers
// only ever see an empty list, a nil agent, or a false flag.
type AgentService struct {
	dir string
}

// NewAgentService creates a service rooted at dir. The directory is created
// lazily on the first write.
func NewAgentService(dir string) *AgentService {
	return &AgentService{dir: dir}
}

// Dir returns the directory the service operates on.
func (s *AgentService) Dir() string {
	return s.dir
}

// ListAll returns every valid agent in the directory, sorted by name.
// Unreadable or invalid files are skipped.
func (s *AgentService) ListAll() []*models.Agent {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ [AGENT] Failed to read agents directory: %v", err)
		}
		return nil
	}

	var agents []*models.Agent
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		agent, ok := s.Load(entry.Name())
		if !ok {
			continue
		}
		agents = append(agents, agent)
	}

	sort.Slice(agents, func(i, j int) bool {
		return strings.ToLower(agents[i].Name) < strings.ToLower(agents[j].Name)
	})
	return agents
}

// ListFileNames returns the .md file names in the directory, sorted.
func (s *AgentService) ListFileNames() []string {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}

// Load reads and parses a single agent file by its file name.
func (s *AgentService) Load(fileName string) (*models.Agent, bool) {
	path := filepath.Join(s.dir, fileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ [AGENT] Failed to read %s: %v", fileName, err)
		}
		return nil, false
	}
	agent, ok := ParseAgentFile(fileName, string(data))
	if !ok {
		log.Printf("⚠️ [AGENT] Skipping %s: missing name", fileName)
		return nil, false
	}
	agent.FilePath = path
	return agent, true
}

// Save writes an agent to disk. A missing FileName is derived from the
// display name with unsafe characters replaced.
func (s *AgentService) Save(agent *models.Agent) bool {
	if agent == nil || strings.TrimSpace(agent.Name) == "" {
		return false
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		log.Printf("❌ [AGENT] Failed to create agents directory: %v", err)
		return false
	}

	if agent.FileName == "" {
		agent.FileName = sanitizeFileName(agent.Name) + ".md"
	}
	path := filepath.Join(s.dir, agent.FileName)

	if err := os.WriteFile(path, []byte(SerializeAgent(agent)), 0644); err != nil {
		log.Printf("❌ [AGENT] Failed to write %s: %v", agent.FileName, err)
		return false
	}
	agent.FilePath = path
	log.Printf("📝 [AGENT] Saved agent %s", agent.FileName)
	return true
}

// Delete removes an agent file. Returns false when the file does not exist
// or cannot be removed.
func (s *AgentService) Delete(fileName string) bool {
	path := filepath.Join(s.dir, fileName)
	if err := os.Remove(path); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ [AGENT] Failed to delete %s: %v", fileName, err)
		}
		return false
	}
	log.Printf("🗑️ [AGENT] Deleted agent %s", fileName)
	return true
}

// Exists reports whether an agent file is present.
func (s *AgentService) Exists(fileName string) bool {
	_, err := os.Stat(filepath.Join(s.dir, fileName))
	return err == nil
}

// sanitizeFileName replaces characters that are unsafe in file names.
func sanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
}
