package scan

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/tooldock-labs/tooldock/internal/artifact"
)

// serversFromJSON reads a JSON config file and converts the entries of the
// named map section into server candidates. A missing file yields nothing.
func serversFromJSON(path, sectionKey, sourceLabel string) ([]Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var config map[string]interface{}
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	servers, ok := config[sectionKey].(map[string]interface{})
	if !ok {
		return nil, nil
	}

	names := make([]string, 0, len(servers))
	for name := range servers {
		names = append(names, name)
	}
	sort.Strings(names)

	var result []Candidate
	for _, name := range names {
		entry, ok := servers[name].(map[string]interface{})
		if !ok {
			continue
		}
		payload := serverPayloadFromEntry(entry)
		if payload == nil {
			continue
		}
		result = append(result, Candidate{
			SourceLabel: sourceLabel,
			Type:        artifact.TypeServer,
			Name:        name,
			Server:      payload,
		})
	}
	return result, nil
}

// serverPayloadFromEntry converts a generic mcpServers-style entry into a
// server payload, or nil when the entry has neither a command nor a url.
func serverPayloadFromEntry(entry map[string]interface{}) *artifact.ServerPayload {
	p := &artifact.ServerPayload{}

	if v, ok := entry["command"].(string); ok {
		p.Command = v
	}
	if v, ok := entry["url"].(string); ok {
		p.URL = v
	}
	if p.Command == "" && p.URL == "" {
		return nil
	}

	if v, ok := entry["type"].(string); ok {
		p.Transport = v
	}
	if args, ok := entry["args"].([]interface{}); ok {
		for _, arg := range args {
			if s, ok := arg.(string); ok {
				p.Args = append(p.Args, s)
			}
		}
	}
	if env, ok := entry["env"].(map[string]interface{}); ok {
		p.Env = stringMap(env)
	}
	if headers, ok := entry["headers"].(map[string]interface{}); ok {
		p.Headers = stringMap(headers)
	}
	return p
}

func stringMap(m map[string]interface{}) map[string]string {
	result := make(map[string]string, len(m))
	for k, v := range m {
		if s, ok := v.(string); ok {
			result[k] = s
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
