package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/jeneen24/robot-grid-simulator/sim/engine"
	"github.com/jeneen24/robot-grid-simulator/sim/service"
)

var (
	ErrScenarioNotFound = errors.New("scenario not found")
	ErrInvalidScenario  = errors.New("invalid scenario")
)

// envPrefix names the environment variables that override scenario fields,
// e.g. ROBOTSIM_STARTING_BATTERY=80.
const envPrefix = "ROBOTSIM_"

// Manager handles scenario file loading and caching.
type Manager struct {
	scenarioDir string
	scenarios   map[string]*engine.Scenario
	mu          sync.RWMutex
}

// NewManager creates a scenario manager over the given directory.
func NewManager(scenarioDir string) (*Manager, error) {
	if _, err := os.Stat(scenarioDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("scenario directory does not exist: %s", scenarioDir)
	}

	return &Manager{
		scenarioDir: scenarioDir,
		scenarios:   make(map[string]*engine.Scenario),
	}, nil
}

// LoadScenario loads a scenario by name. Loaded scenarios are cached.
func (m *Manager) LoadScenario(name string) (*engine.Scenario, error) {
	m.mu.RLock()
	if sc, exists := m.scenarios[name]; exists {
		m.mu.RUnlock()
		return sc, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring the write lock
	if sc, exists := m.scenarios[name]; exists {
		return sc, nil
	}

	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}
	path := filepath.Join(m.scenarioDir, filename)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, ErrScenarioNotFound
	}

	sc, err := loadScenarioFile(path)
	if err != nil {
		return nil, err
	}

	m.scenarios[name] = sc
	return sc, nil
}

// loadScenarioFile reads one scenario JSON file through koanf, applying
// ROBOTSIM_ environment overrides on top of the file values.
func loadScenarioFile(path string) (*engine.Scenario, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), kjson.Parser()); err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	var sc engine.Scenario
	if err := k.UnmarshalWithConf("", &sc, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}

	if err := engine.ValidateScenario(&sc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	return &sc, nil
}

// ListScenarios returns information about all available scenario files.
func (m *Manager) ListScenarios() ([]*service.ScenarioInfo, error) {
	entries, err := os.ReadDir(m.scenarioDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario directory: %w", err)
	}

	var infos []*service.ScenarioInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".json")
		sc, err := m.LoadScenario(name)
		if err != nil {
			// Skip unreadable files rather than failing the listing
			continue
		}

		infos = append(infos, &service.ScenarioInfo{
			Filename:    entry.Name(),
			ScenarioID:  name,
			Name:        sc.Name,
			Description: sc.Description,
			GridWidth:   sc.GridWidth,
			GridHeight:  sc.GridHeight,
			Expandable:  sc.Expandable,
		})
	}

	return infos, nil
}

// GetDefault returns the built-in default scenario.
func (m *Manager) GetDefault() *engine.Scenario {
	return engine.DefaultScenario()
}

// SaveScenario validates and writes a scenario as a JSON file, replacing any
// cached copy.
func (m *Manager) SaveScenario(name string, sc *engine.Scenario) error {
	if err := engine.ValidateScenario(sc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}

	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}

	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scenario: %w", err)
	}

	path := filepath.Join(m.scenarioDir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write scenario file: %w", err)
	}

	m.mu.Lock()
	m.scenarios[strings.TrimSuffix(filename, ".json")] = sc
	m.mu.Unlock()

	return nil
}
