package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// skillSubdirs are the conventional companion directories of a skill.
var skillSubdirs = []string{"scripts", "references", "assets"}

// classifySkill inspects one SKILL.md: frontmatter description quality,
// the side-effect marker, and companion subdirectory counts. The skill
// body itself is opaque content and never interpreted.
func classifySkill(s *Scan, relPath string, content []byte) Record {
	r := newRecord(KindSkill, relPath, content)

	result := splitFrontmatter(content)
	if !result.HasFrontmatter {
		r.warn("no frontmatter, skill cannot be registered")
		return r
	}

	fm, err := parseYAMLFrontmatter(result.Frontmatter)
	if err != nil {
		r.warn("present but unparseable, invalid frontmatter YAML")
		return r
	}

	description := strings.TrimSpace(extractString(fm, "description"))
	if len(description) < s.Policy.Skills.MinDescriptionChars {
		r.warn(fmt.Sprintf("description under %d chars (%d), poor trigger matching",
			s.Policy.Skills.MinDescriptionChars, len(description)))
	}

	if extractBool(fm, "disable-model-invocation") {
		r.note("side-effecting: model invocation disabled")
	}

	skillDir := filepath.Join(s.Root, filepath.FromSlash(filepath.Dir(relPath)))
	var parts []string
	for _, sub := range skillSubdirs {
		if n := countFiles(filepath.Join(skillDir, sub)); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, sub))
		}
	}
	if len(parts) > 0 {
		r.note(strings.Join(parts, ", "))
	}

	return r
}

// countFiles returns the number of regular files directly in dir, or 0
// when the directory is absent or unreadable.
func countFiles(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	n := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			n++
		}
	}
	return n
}
