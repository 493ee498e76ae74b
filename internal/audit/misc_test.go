package audit

import "testing"

func TestClassifySubagent(t *testing.T) {
	s := newTestScan(t)

	r := classifySubagent(s, ".claude/agents/reviewer.md", []byte("---\nname: reviewer\n---\nbody\n"))
	if r.Kind != KindSubagent {
		t.Errorf("Kind = %v, want %v", r.Kind, KindSubagent)
	}
	if len(r.Flags) != 0 {
		t.Errorf("unexpected flags: %v", r.Flags)
	}

	r = classifySubagent(s, ".claude/agents/bare.md", []byte("just a prompt\n"))
	if !recordHasFlag(r, "no frontmatter header block") {
		t.Errorf("expected frontmatter note; flags: %v", r.Flags)
	}
}

func TestClassifyPluginBundle(t *testing.T) {
	tests := map[string]struct {
		content      string
		wantWarnings int
	}{
		"valid manifest":   {content: `{"name": "demo", "version": "1.0.0"}`},
		"invalid manifest": {content: `{broken`, wantWarnings: 1},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			s := newTestScan(t)
			r := classifyPluginBundle(s, ".claude-plugin/plugin.json", []byte(tc.content))

			if r.Kind != KindPluginBundle {
				t.Fatalf("Kind = %v, want %v", r.Kind, KindPluginBundle)
			}
			if got := r.Warnings(); got != tc.wantWarnings {
				t.Errorf("Warnings() = %d, want %d; flags: %v", got, tc.wantWarnings, r.Flags)
			}
		})
	}
}

func TestHarvestSkillClaims(t *testing.T) {
	tests := map[string]struct {
		content   string
		wantCount int
		wantClaim bool
	}{
		"specialized skills": {content: "ships 65 specialized skills", wantClaim: true, wantCount: 65},
		"plain skills":       {content: "there are 12 skills here", wantClaim: true, wantCount: 12},
		"case insensitive":   {content: "65 Specialized Skills", wantClaim: true, wantCount: 65},
		"no claim":           {content: "skills are useful", wantClaim: false},
		"no number":          {content: "many specialized skills", wantClaim: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			s := newTestScan(t)
			s.harvestSkillClaims("README.md", []byte(tc.content))

			if tc.wantClaim {
				if len(s.SkillClaims) != 1 {
					t.Fatalf("got %d claims, want 1", len(s.SkillClaims))
				}
				if s.SkillClaims[0].Count != tc.wantCount {
					t.Errorf("Count = %d, want %d", s.SkillClaims[0].Count, tc.wantCount)
				}
			} else if len(s.SkillClaims) != 0 {
				t.Errorf("got unexpected claims: %v", s.SkillClaims)
			}
		})
	}
}
