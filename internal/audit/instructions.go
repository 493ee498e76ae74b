package audit

import (
	"fmt"
	"strings"
)

// ScoringRule is one keyword-coverage heuristic applied to instruction
// files. Matching is case-insensitive substring search; the vocabulary is
// approximate by nature, so it lives here as data rather than inline in
// the classifiers.
type ScoringRule struct {
	// Name appears in the "no X guidance detected" note.
	Name string
	// Keywords is the vocabulary; one hit satisfies the rule.
	Keywords []string
}

// Matches reports whether any keyword appears in the lowercased content.
func (r ScoringRule) Matches(lower string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Scorer evaluates instruction content against a rule set. Swapping the
// scorer tunes the vocabulary without touching traversal or reporting.
type Scorer interface {
	// MissingTopics returns the names of rules the content does not cover.
	MissingTopics(content string) []string
	// HasEmphasis reports whether any emphasis marker is present.
	HasEmphasis(content string) bool
}

// keywordScorer is the default Scorer.
type keywordScorer struct {
	rules    []ScoringRule
	emphasis []string
}

// DefaultScorer returns the stock keyword heuristics: the four coverage
// categories and the uppercase emphasis marker set.
func DefaultScorer() Scorer {
	return &keywordScorer{
		rules: []ScoringRule{
			{Name: "command", Keywords: []string{"command", "build", "test", "lint", "run "}},
			{Name: "architecture", Keywords: []string{"architecture", "structure", "layout", "module", "component", "directory"}},
			{Name: "anti-pattern", Keywords: []string{"never", "avoid", "don't", "do not", "anti-pattern"}},
			{Name: "stack", Keywords: []string{"stack", "framework", "language", "library", "dependen", "version"}},
		},
		emphasis: []string{"NEVER", "ALWAYS", "MUST", "IMPORTANT", "CRITICAL"},
	}
}

func (s *keywordScorer) MissingTopics(content string) []string {
	lower := strings.ToLower(content)
	var missing []string
	for _, r := range s.rules {
		if !r.Matches(lower) {
			missing = append(missing, r.Name)
		}
	}
	return missing
}

func (s *keywordScorer) HasEmphasis(content string) bool {
	for _, marker := range s.emphasis {
		if strings.Contains(content, marker) {
			return true
		}
	}
	return false
}

// classifyRootConfig handles the root CLAUDE.md.
func classifyRootConfig(s *Scan, relPath string, content []byte) Record {
	return classifyInstructions(s, KindRootConfig, relPath, content)
}

// classifyModuleConfig handles nested CLAUDE.md and AGENTS.md files.
func classifyModuleConfig(s *Scan, relPath string, content []byte) Record {
	return classifyInstructions(s, KindModuleConfig, relPath, content)
}

// classifyInstructions runs the shared instruction-file checks: size,
// keyword coverage, emphasis markers, staleness, and cross-references.
func classifyInstructions(s *Scan, kind Kind, relPath string, content []byte) Record {
	r := newRecord(kind, relPath, content)

	pol := s.Policy.Instructions
	if r.LineCount > pol.MaxLines {
		r.warn(fmt.Sprintf("exceeds %d lines (%d), consider splitting into modular docs", pol.MaxLines, r.LineCount))
	}
	if r.LineCount < pol.MinLines {
		r.warn(fmt.Sprintf("very short (%d lines), may lack essential context", r.LineCount))
	}

	text := string(content)
	for _, topic := range s.Scorer.MissingTopics(text) {
		r.note(fmt.Sprintf("no %s guidance detected", topic))
	}
	if !s.Scorer.HasEmphasis(text) {
		r.warn("no emphasis markers (NEVER/ALWAYS/MUST/IMPORTANT/CRITICAL)")
	}

	s.checkStaleness(&r)

	refs := ValidateReferences(s.Root, relPath, content)
	for _, ref := range refs {
		if !ref.Resolved {
			r.warn(fmt.Sprintf("broken reference @%s (path not found)", ref.RawToken))
		}
	}
	s.References = append(s.References, refs...)

	return r
}

// classifyLocalOverride records presence only; overrides are personal and
// never judged.
func classifyLocalOverride(s *Scan, relPath string, content []byte) Record {
	return newRecord(KindLocalOverride, relPath, content)
}
