package audit

import "testing"

func TestSplitFrontmatter(t *testing.T) {
	tests := map[string]struct {
		content     string
		wantHas     bool
		wantFront   string
		wantContent string
	}{
		"no frontmatter": {
			content:     "# Title\nbody\n",
			wantHas:     false,
			wantContent: "# Title\nbody\n",
		},
		"simple frontmatter": {
			content:     "---\nname: test\n---\nbody\n",
			wantHas:     true,
			wantFront:   "name: test",
			wantContent: "body\n",
		},
		"crlf line endings": {
			content:     "---\r\nname: test\r\n---\r\nbody\r\n",
			wantHas:     true,
			wantFront:   "name: test",
			wantContent: "body\r\n",
		},
		"empty frontmatter": {
			content:     "---\n---\nbody\n",
			wantHas:     true,
			wantFront:   "",
			wantContent: "body\n",
		},
		"unclosed frontmatter": {
			content:     "---\nname: test\nbody without closing",
			wantHas:     false,
			wantContent: "---\nname: test\nbody without closing",
		},
		"dashes mid-document": {
			content:     "body first\n---\nname: test\n---\n",
			wantHas:     false,
			wantContent: "body first\n---\nname: test\n---\n",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := splitFrontmatter([]byte(tc.content))
			if got.HasFrontmatter != tc.wantHas {
				t.Fatalf("HasFrontmatter = %v, want %v", got.HasFrontmatter, tc.wantHas)
			}
			if string(got.Frontmatter) != tc.wantFront {
				t.Errorf("Frontmatter = %q, want %q", got.Frontmatter, tc.wantFront)
			}
			if got.Content != tc.wantContent {
				t.Errorf("Content = %q, want %q", got.Content, tc.wantContent)
			}
		})
	}
}

func TestParseYAMLFrontmatter(t *testing.T) {
	fm, err := parseYAMLFrontmatter([]byte("name: deploy\ncount: 3\nenabled: true\n"))
	if err != nil {
		t.Fatalf("parseYAMLFrontmatter() error = %v", err)
	}

	if got := extractString(fm, "name"); got != "deploy" {
		t.Errorf("extractString(name) = %q, want %q", got, "deploy")
	}
	if got := extractString(fm, "count"); got != "" {
		t.Errorf("extractString on non-string = %q, want empty", got)
	}
	if got := extractString(fm, "absent"); got != "" {
		t.Errorf("extractString(absent) = %q, want empty", got)
	}
	if !extractBool(fm, "enabled") {
		t.Error("extractBool(enabled) = false, want true")
	}
	if extractBool(fm, "name") {
		t.Error("extractBool on string = true, want false")
	}
}

func TestParseYAMLFrontmatterInvalid(t *testing.T) {
	if _, err := parseYAMLFrontmatter([]byte("name: [unclosed")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
