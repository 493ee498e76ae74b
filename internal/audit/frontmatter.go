package audit

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// frontmatterResult contains the split frontmatter and remaining content.
type frontmatterResult struct {
	Frontmatter    []byte
	Content        string
	HasFrontmatter bool
}

// splitFrontmatter extracts a leading ----delimited YAML block from a
// markdown document. Handles both \n and \r\n line endings.
func splitFrontmatter(content []byte) frontmatterResult {
	if !bytes.HasPrefix(content, []byte("---\n")) && !bytes.HasPrefix(content, []byte("---\r\n")) {
		return frontmatterResult{Content: string(content)}
	}

	remaining := content[len("---"):]
	if bytes.HasPrefix(remaining, []byte("\r\n")) {
		remaining = remaining[2:]
	} else {
		remaining = remaining[1:]
	}

	var frontmatter []byte
	var bodyStart int
	switch {
	case bytes.HasPrefix(remaining, []byte("---")):
		// Empty frontmatter
		bodyStart = len("---")
	default:
		idx := bytes.Index(remaining, []byte("\n---"))
		if idx == -1 {
			// No closing delimiter, treat as plain content
			return frontmatterResult{Content: string(content)}
		}
		frontmatter = remaining[:idx]
		bodyStart = idx + len("\n---")
	}

	body := remaining[bodyStart:]
	if bytes.HasPrefix(body, []byte("\r\n")) {
		body = body[2:]
	} else if bytes.HasPrefix(body, []byte("\n")) {
		body = body[1:]
	}

	clean := bytes.ReplaceAll(frontmatter, []byte("\r\n"), []byte("\n"))
	return frontmatterResult{
		Frontmatter:    bytes.TrimRight(clean, "\r"),
		Content:        string(body),
		HasFrontmatter: true,
	}
}

// parseYAMLFrontmatter parses a frontmatter block into a map.
func parseYAMLFrontmatter(frontmatter []byte) (map[string]any, error) {
	if len(frontmatter) == 0 {
		return map[string]any{}, nil
	}
	var result map[string]any
	if err := yaml.Unmarshal(frontmatter, &result); err != nil {
		return nil, fmt.Errorf("failed to parse YAML frontmatter: %w", err)
	}
	return result, nil
}

// extractString extracts a string value from a frontmatter map.
func extractString(fm map[string]any, key string) string {
	if val, ok := fm[key]; ok {
		if strVal, ok := val.(string); ok {
			return strVal
		}
	}
	return ""
}

// extractBool extracts a boolean value from a frontmatter map.
func extractBool(fm map[string]any, key string) bool {
	if val, ok := fm[key]; ok {
		if boolVal, ok := val.(bool); ok {
			return boolVal
		}
	}
	return false
}
