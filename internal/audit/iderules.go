package audit

import (
	"github.com/BurntSushi/toml"
)

// classifyIdeRule records editor rule files (.cursorrules, .windsurfrules,
// .cursor/rules/*). Presence and count are what matter; rule bodies are
// opaque.
func classifyIdeRule(s *Scan, relPath string, content []byte) Record {
	return newRecord(KindIdeRule, relPath, content)
}

// codexConfig is the subset of .codex/config.toml the audit reads.
type codexConfig struct {
	Model        string `toml:"model"`
	Instructions string `toml:"instructions"`
}

// classifyCodexConfig treats a Codex config.toml as an IDE rule artifact,
// noting whether it carries instructions. Malformed TOML is
// present-but-unparseable, a warning rather than a failure.
func classifyCodexConfig(s *Scan, relPath string, content []byte) Record {
	r := newRecord(KindIdeRule, relPath, content)

	var cfg codexConfig
	if err := toml.Unmarshal(content, &cfg); err != nil {
		r.warn("present but unparseable, invalid TOML")
		return r
	}
	if cfg.Instructions == "" {
		r.note("no instructions field")
	}

	return r
}
