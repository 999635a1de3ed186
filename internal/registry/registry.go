// Package registry provides a global registry of audio backends.
// Backends register themselves in init() functions, allowing the CLI to
// discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/volsnake/internal/games/volsnake"
)

// Settings carries host configuration to backend factories.
type Settings struct {
	StepPercent int           // Volume change per token, in percent
	Timeout     time.Duration // Upper bound for one volume command
	ChimeVolume float64       // Chime gain in [0, 1]
	Logger      *log.Logger
}

// Factory creates a ready-to-use sink for one backend.
type Factory func(Settings) (volsnake.AudioSink, error)

// Backend describes a registered audio backend.
type Backend struct {
	Name    string // Identifier used by --audio and the config file
	Title   string // Human-readable description
	Binary  string // Executable the backend needs on PATH, empty if none
	Factory Factory
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	Name   string
	Title  string
	Binary string
}

var (
	backends = make(map[string]Backend)
	mu       sync.RWMutex
)

// Register adds a backend to the registry.
// Panics if a backend with the same name is already registered.
func Register(b Backend) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := backends[b.Name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", b.Name))
	}
	backends[b.Name] = b
}

// List returns information about all registered backends, sorted by name.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(backends))
	for _, b := range backends {
		result = append(result, BackendInfo{
			Name:   b.Name,
			Title:  b.Title,
			Binary: b.Binary,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a sink for the named backend.
// Returns an error if the name is not registered or the factory fails.
func Create(name string, s Settings) (volsnake.AudioSink, error) {
	mu.RLock()
	b, ok := backends[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown audio backend %q", name)
	}
	sink, err := b.Factory(s)
	if err != nil {
		return nil, fmt.Errorf("registry: backend %q: %w", name, err)
	}
	return sink, nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := backends[name]
	return ok
}
