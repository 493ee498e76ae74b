package audit

import (
	"github.com/bmatcuk/doublestar/v4"
)

// classifierFunc turns one candidate file into an artifact record. Apart
// from history and reference lookups done through the scan, classifiers
// are pure: same path and content, same record.
type classifierFunc func(s *Scan, relPath string, content []byte) Record

// rule binds a repo-relative path pattern to a classifier. Adding an
// artifact type is adding one row; first match wins, so specific paths
// precede the recursive patterns.
type rule struct {
	pattern  string
	classify classifierFunc
}

var rules = []rule{
	{"CLAUDE.md", classifyRootConfig},
	{"CLAUDE.local.md", classifyLocalOverride},
	{".claude/CLAUDE.md", classifyRootConfig},
	{".claude/settings.json", classifyHookConfig},
	{".claude/settings.local.json", classifyLocalOverride},
	{".claude/commands/**/*.md", classifySlashCommand},
	{".claude/skills/*/SKILL.md", classifySkill},
	{".claude/agents/*.md", classifySubagent},
	{".claude-plugin/plugin.json", classifyPluginBundle},
	{".claude-plugin/marketplace.json", classifyPluginBundle},
	{"skills/*/SKILL.md", classifySkill},
	{".cursorrules", classifyIdeRule},
	{".windsurfrules", classifyIdeRule},
	{".cursor/rules/**", classifyIdeRule},
	{".codex/config.toml", classifyCodexConfig},
	{"README.md", classifySupportingDoc},
	{"ROADMAP.md", classifySupportingDoc},
	{"QUICKSTART.md", classifySupportingDoc},
	{"CONTRIBUTING.md", classifySupportingDoc},
	{"ARCHITECTURE.md", classifySupportingDoc},
	{"docs/**/*.md", classifySupportingDoc},
	{"**/CLAUDE.md", classifyModuleConfig},
	{"AGENTS.md", classifyModuleConfig},
	{"**/AGENTS.md", classifyModuleConfig},
}

// matchRule returns the first classifier whose pattern matches the
// repo-relative path, or nil when the file is not a context artifact.
func matchRule(relPath string) classifierFunc {
	for _, r := range rules {
		if ok, err := doublestar.Match(r.pattern, relPath); err == nil && ok {
			return r.classify
		}
	}
	return nil
}

// newRecord fills the fields common to every classifier.
func newRecord(kind Kind, relPath string, content []byte) Record {
	return Record{
		Path:      relPath,
		Kind:      kind,
		SizeBytes: int64(len(content)),
		LineCount: countLines(content),
	}
}

// countLines counts newline-terminated lines, matching wc -l on files
// with a trailing newline.
func countLines(content []byte) int {
	if len(content) == 0 {
		return 0
	}
	n := 0
	for _, b := range content {
		if b == '\n' {
			n++
		}
	}
	if content[len(content)-1] != '\n' {
		n++
	}
	return n
}
