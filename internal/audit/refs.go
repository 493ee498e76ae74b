package audit

import (
	"os"
	"path/filepath"
	"regexp"
)

// Reference is one @-style path token extracted from an instruction file.
// References are derived transiently during the scan and never persisted.
type Reference struct {
	SourceFile   string `json:"source_file"`
	RawToken     string `json:"raw_token"`
	ResolvedPath string `json:"resolved_path,omitempty"`
	Resolved     bool   `json:"resolved"`
}

// refPattern matches @relative/path tokens with a restricted extension
// set, the convention instruction files use to pull in other documents.
// The token must start a line or follow whitespace or an opening paren so
// that email addresses and handles are not picked up.
var refPattern = regexp.MustCompile(`(?m)(?:^|[\s(])@([A-Za-z0-9_][A-Za-z0-9_./~-]*\.(?:md|mdc|txt|json|yaml|yml|toml))`)

// ExtractReferences returns the raw path tokens referenced in content.
func ExtractReferences(content []byte) []string {
	matches := refPattern.FindAllSubmatch(content, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, string(m[1]))
	}
	return tokens
}

// ValidateReferences extracts every reference in content and resolves it
// against the repository root. A reference to an existing path is valid;
// anything else is dangling. No references means no findings.
func ValidateReferences(root, sourceRel string, content []byte) []Reference {
	tokens := ExtractReferences(content)
	refs := make([]Reference, 0, len(tokens))
	for _, token := range tokens {
		resolved := filepath.Join(root, filepath.FromSlash(token))
		_, err := os.Stat(resolved)
		refs = append(refs, Reference{
			SourceFile:   sourceRel,
			RawToken:     token,
			ResolvedPath: resolved,
			Resolved:     err == nil,
		})
	}
	return refs
}
