package audit

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// lifecycleEvents is the fixed set of hook event names the agent fires.
var lifecycleEvents = []string{
	"PreToolUse",
	"PostToolUse",
	"UserPromptSubmit",
	"Stop",
	"SubagentStop",
	"SessionStart",
	"PreCompact",
	"Notification",
}

// claudeSettings is the subset of .claude/settings.json the audit reads.
// Hook payloads stay opaque; only the event names and the permissions
// allow-list are structurally extracted.
type claudeSettings struct {
	Permissions struct {
		Allow []string `json:"allow"`
		Deny  []string `json:"deny"`
	} `json:"permissions"`
	Hooks map[string]json.RawMessage `json:"hooks"`
}

// classifyHookConfig checks .claude/settings.json for lifecycle hooks and
// a permissions section. A malformed file is present-but-unparseable: one
// warning, scan continues.
func classifyHookConfig(s *Scan, relPath string, content []byte) Record {
	r := newRecord(KindHookConfig, relPath, content)

	var settings claudeSettings
	if err := json.Unmarshal(content, &settings); err != nil {
		r.warn("present but unparseable, invalid JSON")
		return r
	}

	var known []string
	for _, event := range lifecycleEvents {
		if _, ok := settings.Hooks[event]; ok {
			known = append(known, event)
		}
	}
	// Map iteration order is random; sort so report text stays stable.
	var unknown []string
	for event := range settings.Hooks {
		if !isLifecycleEvent(event) {
			unknown = append(unknown, event)
		}
	}
	sort.Strings(unknown)
	for _, event := range unknown {
		r.note(fmt.Sprintf("unknown hook event %q", event))
	}

	if len(known) > 0 {
		r.note(fmt.Sprintf("hooks configured: %s", strings.Join(known, ", ")))
	} else {
		r.note("no lifecycle hooks configured")
	}

	if len(settings.Permissions.Allow) > 0 {
		r.note(fmt.Sprintf("permissions allow-list with %d entries", len(settings.Permissions.Allow)))
	} else {
		r.note("no permissions allow-list")
	}

	return r
}

func isLifecycleEvent(name string) bool {
	for _, event := range lifecycleEvents {
		if event == name {
			return true
		}
	}
	return false
}
