package audit

// classifySlashCommand records one command definition file. The header
// block is optional, so its absence is informational only.
func classifySlashCommand(s *Scan, relPath string, content []byte) Record {
	r := newRecord(KindSlashCommand, relPath, content)

	result := splitFrontmatter(content)
	if !result.HasFrontmatter {
		r.note("no frontmatter header block")
		return r
	}

	fm, err := parseYAMLFrontmatter(result.Frontmatter)
	if err != nil {
		r.note("frontmatter header block is not valid YAML")
		return r
	}
	if extractString(fm, "description") == "" {
		r.note("header block has no description")
	}

	return r
}
