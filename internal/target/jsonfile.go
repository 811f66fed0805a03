package target

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/tooldock-labs/tooldock/internal/artifact"
)

// readJSONConfig loads a JSON config file into a generic map. A missing file
// yields an empty map so the first write can create it.
func readJSONConfig(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]interface{}{}, nil
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: reading %s", artifact.ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("%w: reading %s: %v", artifact.ErrAdapterFailure, path, err)
	}

	config := map[string]interface{}{}
	if len(data) == 0 {
		return config, nil
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", artifact.ErrAdapterFailure, path, err)
	}
	return config, nil
}

// writeJSONConfig writes the config back with stable indentation, creating
// the parent directory on first use.
func writeJSONConfig(path string, config map[string]interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: creating %s: %v", artifact.ErrAdapterFailure, filepath.Dir(path), err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", artifact.ErrAdapterFailure, path, err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		if os.IsPermission(err) {
			return fmt.Errorf("%w: writing %s", artifact.ErrPermissionDenied, path)
		}
		return fmt.Errorf("%w: writing %s: %v", artifact.ErrAdapterFailure, path, err)
	}
	return nil
}

// section returns the named object inside the config, creating it if absent.
func section(config map[string]interface{}, key string) map[string]interface{} {
	if m, ok := config[key].(map[string]interface{}); ok {
		return m
	}
	m := map[string]interface{}{}
	config[key] = m
	return m
}

// sectionNames returns the sorted entry names of a config section.
func sectionNames(config map[string]interface{}, key string) []string {
	m, ok := config[key].(map[string]interface{})
	if !ok {
		return nil
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// serverEntry renders a server payload in the common mcpServers shape.
// Stdio servers carry command/args/env; remote servers carry type/url/headers.
func serverEntry(p *artifact.ServerPayload) map[string]interface{} {
	entry := map[string]interface{}{}

	if p.URL != "" {
		transport := p.Transport
		if transport == "" {
			transport = "http"
		}
		entry["type"] = transport
		entry["url"] = p.URL
		if len(p.Headers) > 0 {
			entry["headers"] = p.Headers
		}
		return entry
	}

	entry["command"] = p.Command
	if len(p.Args) > 0 {
		entry["args"] = p.Args
	}
	if len(p.Env) > 0 {
		entry["env"] = p.Env
	}
	return entry
}

// upsertServer writes a server artifact into the named map section of a JSON
// config file. Rewriting an identical entry is a success with no state change.
func upsertServer(path, sectionKey string, a *artifact.Artifact) error {
	if a.Type != artifact.TypeServer || a.Server == nil {
		return fmt.Errorf("%w: %s entries are not supported by this target", artifact.ErrAdapterFailure, a.Type)
	}

	config, err := readJSONConfig(path)
	if err != nil {
		return err
	}

	section(config, sectionKey)[a.Name] = serverEntry(a.Server)
	return writeJSONConfig(path, config)
}

// removeEntry deletes a named entry from the section. A missing file or
// missing entry is a no-op.
func removeEntry(path, sectionKey, name string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	config, err := readJSONConfig(path)
	if err != nil {
		return err
	}

	m, ok := config[sectionKey].(map[string]interface{})
	if !ok {
		return nil
	}
	if _, ok := m[name]; !ok {
		return nil
	}
	delete(m, name)
	return writeJSONConfig(path, config)
}
