// Package config provides the audit policy configuration for ctxaudit.
// It supports YAML configuration files, environment variables, and sensible defaults.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Policy holds the tunable thresholds and scan settings. The numeric
// defaults mirror the usual conventions for agent context layers; they are
// policy, not correctness requirements, so everything here can be
// overridden by file or environment.
type Policy struct {
	// Staleness configures commit-age thresholds for instruction files
	Staleness StalenessPolicy `yaml:"staleness"`

	// Budget configures the context token budget estimate
	Budget BudgetPolicy `yaml:"budget"`

	// Instructions configures size checks for CLAUDE.md-style files
	Instructions InstructionsPolicy `yaml:"instructions"`

	// Skills configures SKILL.md checks
	Skills SkillsPolicy `yaml:"skills"`

	// Exclude lists directory globs the walker never descends into
	Exclude []string `yaml:"exclude"`
}

// StalenessPolicy holds commit-age thresholds in days.
type StalenessPolicy struct {
	// WarnDays flags an artifact whose last commit is older than this
	WarnDays int `yaml:"warn_days"`
	// CriticalDays flags an artifact as severely stale
	CriticalDays int `yaml:"critical_days"`
}

// BudgetPolicy holds token budget estimation settings.
type BudgetPolicy struct {
	// BytesPerToken is the byte→token conversion ratio
	BytesPerToken int `yaml:"bytes_per_token"`
	// SkillOverheadBytes is the per-skill registration cost added even
	// when the skill body is never loaded
	SkillOverheadBytes int `yaml:"skill_overhead_bytes"`
	// LowTokens is the floor below which the context is likely insufficient
	LowTokens int `yaml:"low_tokens"`
	// ModerateTokens starts the "monitor growth" band
	ModerateTokens int `yaml:"moderate_tokens"`
	// HighTokens starts the "attention dilution risk" band
	HighTokens int `yaml:"high_tokens"`
}

// InstructionsPolicy holds size checks for instruction files.
type InstructionsPolicy struct {
	// MaxLines flags a file that should be split into modular docs
	MaxLines int `yaml:"max_lines"`
	// MinLines flags a file too short to carry essential context
	MinLines int `yaml:"min_lines"`
}

// SkillsPolicy holds SKILL.md checks.
type SkillsPolicy struct {
	// MinDescriptionChars flags descriptions too short for trigger matching
	MinDescriptionChars int `yaml:"min_description_chars"`
}

// Default returns the default policy.
func Default() *Policy {
	return &Policy{
		Staleness: StalenessPolicy{
			WarnDays:     90,
			CriticalDays: 180,
		},
		Budget: BudgetPolicy{
			BytesPerToken:      4,
			SkillOverheadBytes: 400,
			LowTokens:          500,
			ModerateTokens:     15000,
			HighTokens:         30000,
		},
		Instructions: InstructionsPolicy{
			MaxLines: 2000,
			MinLines: 10,
		},
		Skills: SkillsPolicy{
			MinDescriptionChars: 50,
		},
		Exclude: []string{
			".git",
			"node_modules",
			"vendor",
			"dist",
			"build",
			"target",
			"__pycache__",
			".venv",
		},
	}
}

// configFileName is the per-project policy file looked up at the scanned root.
const configFileName = ".ctxaudit.yaml"

// UserConfigPath returns the user-level policy file path.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "ctxaudit", "config.yaml")
}

// Load resolves the policy for a scan root: defaults, then the user-level
// config file, then a .ctxaudit.yaml at the root, then environment
// overrides. Missing files are not an error.
func Load(root string) (*Policy, error) {
	p := Default()

	for _, path := range []string{UserConfigPath(), filepath.Join(root, configFileName)} {
		if path == "" {
			continue
		}
		// #nosec G304 - paths are the fixed config locations
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		if err := yaml.Unmarshal(data, p); err != nil {
			return nil, err
		}
	}

	p.applyEnvironment()
	return p, nil
}

// LoadFromPath loads a policy from a specific file over the defaults.
func LoadFromPath(path string) (*Policy, error) {
	p := Default()

	// #nosec G304 - path is provided by caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, err
	}

	p.applyEnvironment()
	return p, nil
}

// applyEnvironment applies environment variable overrides.
// Environment variables follow the pattern CTXAUDIT_<SECTION>_<KEY>.
func (p *Policy) applyEnvironment() {
	if v := os.Getenv("CTXAUDIT_STALENESS_WARN_DAYS"); v != "" {
		p.Staleness.WarnDays = parseInt(v, p.Staleness.WarnDays)
	}
	if v := os.Getenv("CTXAUDIT_STALENESS_CRITICAL_DAYS"); v != "" {
		p.Staleness.CriticalDays = parseInt(v, p.Staleness.CriticalDays)
	}
	if v := os.Getenv("CTXAUDIT_BUDGET_LOW_TOKENS"); v != "" {
		p.Budget.LowTokens = parseInt(v, p.Budget.LowTokens)
	}
	if v := os.Getenv("CTXAUDIT_BUDGET_MODERATE_TOKENS"); v != "" {
		p.Budget.ModerateTokens = parseInt(v, p.Budget.ModerateTokens)
	}
	if v := os.Getenv("CTXAUDIT_BUDGET_HIGH_TOKENS"); v != "" {
		p.Budget.HighTokens = parseInt(v, p.Budget.HighTokens)
	}
	if v := os.Getenv("CTXAUDIT_INSTRUCTIONS_MAX_LINES"); v != "" {
		p.Instructions.MaxLines = parseInt(v, p.Instructions.MaxLines)
	}
	if v := os.Getenv("CTXAUDIT_INSTRUCTIONS_MIN_LINES"); v != "" {
		p.Instructions.MinLines = parseInt(v, p.Instructions.MinLines)
	}
	if v := os.Getenv("CTXAUDIT_SKILLS_MIN_DESCRIPTION_CHARS"); v != "" {
		p.Skills.MinDescriptionChars = parseInt(v, p.Skills.MinDescriptionChars)
	}
	if v := os.Getenv("CTXAUDIT_EXCLUDE"); v != "" {
		p.Exclude = splitList(v)
	}
}

// parseInt parses an integer, falling back to the given default.
func parseInt(v string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return n
}

// splitList splits a colon-separated list, dropping empty entries.
func splitList(v string) []string {
	parts := strings.Split(v, ":")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
