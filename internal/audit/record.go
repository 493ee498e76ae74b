// Package audit implements the context-artifact audit engine: it walks a
// project tree, classifies the AI-agent configuration layer into artifact
// records, checks staleness and cross-references, estimates the context
// token budget, and folds everything into a maturity verdict.
package audit

import "time"

// Kind identifies the artifact type. Every record carries exactly one.
type Kind string

const (
	KindRootConfig    Kind = "root-config"
	KindModuleConfig  Kind = "module-config"
	KindLocalOverride Kind = "local-override"
	KindHookConfig    Kind = "hook-config"
	KindSlashCommand  Kind = "slash-command"
	KindSkill         Kind = "skill"
	KindIdeRule       Kind = "ide-rule"
	KindSubagent      Kind = "subagent"
	KindSupportingDoc Kind = "supporting-doc"
	KindPluginBundle  Kind = "plugin-bundle"
)

// Label returns the human-readable name used in report headings.
func (k Kind) Label() string {
	switch k {
	case KindRootConfig:
		return "Root config"
	case KindModuleConfig:
		return "Module configs"
	case KindLocalOverride:
		return "Local overrides"
	case KindHookConfig:
		return "Hook config"
	case KindSlashCommand:
		return "Slash commands"
	case KindSkill:
		return "Skills"
	case KindIdeRule:
		return "IDE rules"
	case KindSubagent:
		return "Subagents"
	case KindSupportingDoc:
		return "Supporting docs"
	case KindPluginBundle:
		return "Plugin bundles"
	default:
		return string(k)
	}
}

// allKinds fixes the report ordering.
var allKinds = []Kind{
	KindRootConfig,
	KindModuleConfig,
	KindLocalOverride,
	KindHookConfig,
	KindSlashCommand,
	KindSkill,
	KindIdeRule,
	KindSubagent,
	KindSupportingDoc,
	KindPluginBundle,
}

// requiredKinds are the artifacts whose absence counts against the verdict.
// Everything else is inventory.
var requiredKinds = []Kind{
	KindRootConfig,
	KindHookConfig,
	KindSlashCommand,
	KindSkill,
}

// Severity distinguishes verdict-relevant warnings from informational notes.
type Severity int

const (
	// SeverityNote is informational and never affects the verdict.
	SeverityNote Severity = iota
	// SeverityWarning counts toward the maturity verdict.
	SeverityWarning
)

// Flag is a single finding attached to a record during classification.
type Flag struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Record is the immutable result of classifying one artifact. It is
// created during the scan and only read afterwards; all report counters
// are derived by folding over the record list.
type Record struct {
	// Path is repo-relative with forward slashes.
	Path      string `json:"path"`
	Kind      Kind   `json:"kind"`
	SizeBytes int64  `json:"size_bytes"`
	LineCount int    `json:"line_count"`

	// LastModified is the last-commit time, nil when untracked or no VCS.
	LastModified *time.Time `json:"last_modified,omitempty"`
	// AgeDays is derived from LastModified at scan time; 0 when unknown.
	AgeDays int `json:"age_days,omitempty"`

	Flags []Flag `json:"flags,omitempty"`
}

// warn appends a verdict-relevant warning flag.
func (r *Record) warn(msg string) {
	r.Flags = append(r.Flags, Flag{Severity: SeverityWarning, Message: msg})
}

// note appends an informational flag.
func (r *Record) note(msg string) {
	r.Flags = append(r.Flags, Flag{Severity: SeverityNote, Message: msg})
}

// Warnings returns the number of warning-severity flags on the record.
func (r Record) Warnings() int {
	n := 0
	for _, f := range r.Flags {
		if f.Severity == SeverityWarning {
			n++
		}
	}
	return n
}

// Tally holds the counters the verdict is computed from. It is produced by
// a single fold over the record list, so the result is order-independent
// and reproducible.
type Tally struct {
	Found    int `json:"found"`
	Missing  int `json:"missing"`
	Warnings int `json:"warnings"`
	Notes    int `json:"notes"`
}

// MissingKinds returns the required kinds with no record, in fixed order.
func MissingKinds(records []Record) []Kind {
	present := make(map[Kind]bool, len(records))
	for _, r := range records {
		present[r.Kind] = true
	}

	var missing []Kind
	for _, k := range requiredKinds {
		if !present[k] {
			missing = append(missing, k)
		}
	}
	return missing
}

// TallyRecords folds the record list into verdict counters.
func TallyRecords(records []Record) Tally {
	t := Tally{
		Found:   len(records),
		Missing: len(MissingKinds(records)),
	}
	for _, r := range records {
		for _, f := range r.Flags {
			if f.Severity == SeverityWarning {
				t.Warnings++
			} else {
				t.Notes++
			}
		}
	}
	return t
}
