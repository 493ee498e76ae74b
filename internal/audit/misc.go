package audit

import (
	"encoding/json"
	"regexp"
	"strconv"
)

// classifySubagent records one subagent definition under .claude/agents/.
func classifySubagent(s *Scan, relPath string, content []byte) Record {
	r := newRecord(KindSubagent, relPath, content)

	result := splitFrontmatter(content)
	if !result.HasFrontmatter {
		r.note("no frontmatter header block")
	}

	return r
}

// skillClaimPattern matches documented skill counts like "65 specialized
// skills" in READMEs and plugin manifests, used for the consistency check.
var skillClaimPattern = regexp.MustCompile(`(?i)(\d+)\s*(?:specialized\s+)?skills`)

// classifySupportingDoc records a supporting document and harvests any
// documented skill-count claims for the report-time consistency check.
func classifySupportingDoc(s *Scan, relPath string, content []byte) Record {
	r := newRecord(KindSupportingDoc, relPath, content)
	s.harvestSkillClaims(relPath, content)
	return r
}

// classifyPluginBundle records a .claude-plugin manifest.
func classifyPluginBundle(s *Scan, relPath string, content []byte) Record {
	r := newRecord(KindPluginBundle, relPath, content)

	var manifest map[string]any
	if err := json.Unmarshal(content, &manifest); err != nil {
		r.warn("present but unparseable, invalid JSON")
		return r
	}
	s.harvestSkillClaims(relPath, content)

	return r
}

// harvestSkillClaims extracts the first documented skill count from a file.
func (s *Scan) harvestSkillClaims(relPath string, content []byte) {
	m := skillClaimPattern.FindSubmatch(content)
	if m == nil {
		return
	}
	n, err := strconv.Atoi(string(m[1]))
	if err != nil {
		return
	}
	s.SkillClaims = append(s.SkillClaims, SkillClaim{Source: relPath, Count: n})
}
