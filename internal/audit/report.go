package audit

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/klauern/ctxaudit/internal/ui"
)

// Report is the fully-derived outcome of a scan. Everything in it comes
// from one fold over the record list, so building a report twice from the
// same records yields identical content.
type Report struct {
	Root         string       `json:"root"`
	GeneratedAt  time.Time    `json:"generated_at"`
	VCSAvailable bool         `json:"vcs_available"`
	Partial      bool         `json:"partial,omitempty"`
	SkippedDirs  int          `json:"skipped_dirs,omitempty"`
	Records      []Record     `json:"records"`
	Missing      []Kind       `json:"missing"`
	References   []Reference  `json:"references,omitempty"`
	SkillClaims  []SkillClaim `json:"skill_claims,omitempty"`
	Budget       Budget       `json:"budget"`
	Tally        Tally        `json:"tally"`
	Verdict      Verdict      `json:"-"`
	VerdictText  string       `json:"verdict"`
}

// BuildReport folds the scan's records into the final report. It touches
// no filesystem state, so it is callable from tests with synthetic
// records.
func BuildReport(s *Scan) *Report {
	records := make([]Record, len(s.Records))
	copy(records, s.Records)
	sort.Slice(records, func(i, j int) bool {
		if records[i].Kind != records[j].Kind {
			return kindOrder(records[i].Kind) < kindOrder(records[j].Kind)
		}
		return records[i].Path < records[j].Path
	})

	tally := TallyRecords(records)
	verdict := Score(tally.Found, tally.Missing, tally.Warnings)

	return &Report{
		Root:         s.Root,
		GeneratedAt:  s.Now,
		VCSAvailable: s.History.Available(),
		Partial:      s.Partial,
		SkippedDirs:  s.SkippedDirs,
		Records:      records,
		Missing:      MissingKinds(records),
		References:   s.References,
		SkillClaims:  s.SkillClaims,
		Budget:       EstimateBudget(records, s.Policy.Budget),
		Tally:        tally,
		Verdict:      verdict,
		VerdictText:  verdict.String(),
	}
}

func kindOrder(k Kind) int {
	for i, candidate := range allKinds {
		if candidate == k {
			return i
		}
	}
	return len(allKinds)
}

// expectedPath names the conventional location of a missing artifact.
func expectedPath(k Kind) string {
	switch k {
	case KindRootConfig:
		return "CLAUDE.md"
	case KindHookConfig:
		return ".claude/settings.json"
	case KindSlashCommand:
		return ".claude/commands/"
	case KindSkill:
		return ".claude/skills/"
	default:
		return ""
	}
}

// Render writes the human-readable report. Output is deterministic modulo
// the generated-at line.
func (r *Report) Render(w io.Writer) {
	p := message.NewPrinter(language.English)

	fmt.Fprintf(w, "%s %s\n", ui.Bold("Context audit:"), r.Root)
	fmt.Fprintf(w, "%s\n\n", ui.Dim("generated "+r.GeneratedAt.Format(time.RFC3339)))

	if r.Partial {
		fmt.Fprintf(w, "%s\n\n", ui.StatusWarning("scan interrupted, results are partial"))
	}

	r.renderFound(w)
	r.renderMissing(w)
	r.renderReferences(w)
	r.renderConsistency(w)

	fmt.Fprintf(w, "%s ~%s tokens (%s bytes across %d auto-loaded files, %d skills): %s\n",
		ui.Bold("Context budget:"),
		p.Sprintf("%d", r.Budget.Tokens),
		p.Sprintf("%d", r.Budget.Bytes),
		r.Budget.AutoLoaded,
		r.Budget.Skills,
		r.Budget.Band.Describe())

	if !r.VCSAvailable {
		fmt.Fprintf(w, "%s\n", ui.StatusNote("not a git repository, staleness checks skipped"))
	}
	if r.SkippedDirs > 0 {
		fmt.Fprintf(w, "%s\n", ui.StatusNote(fmt.Sprintf("%d unreadable directories skipped", r.SkippedDirs)))
	}

	fmt.Fprintf(w, "\n%s %s  (%d found, %d missing, %d warnings)\n",
		ui.Bold("Verdict:"), verdictColor(r.Verdict),
		r.Tally.Found, r.Tally.Missing, r.Tally.Warnings)
}

func (r *Report) renderFound(w io.Writer) {
	fmt.Fprintf(w, "%s\n", ui.Bold(fmt.Sprintf("Found (%d artifacts)", len(r.Records))))
	if len(r.Records) == 0 {
		fmt.Fprintf(w, "  %s\n\n", ui.Dim("no context artifacts recognized"))
		return
	}

	var currentKind Kind
	counts := make(map[Kind]int)
	for _, rec := range r.Records {
		counts[rec.Kind]++
	}

	for _, rec := range r.Records {
		if rec.Kind != currentKind {
			currentKind = rec.Kind
			fmt.Fprintf(w, "  %s (%d)\n", ui.Info(rec.Kind.Label()), counts[rec.Kind])
		}

		line := fmt.Sprintf("%s (%d bytes, %d lines", rec.Path, rec.SizeBytes, rec.LineCount)
		if rec.LastModified != nil {
			line += fmt.Sprintf(", age %dd", rec.AgeDays)
		}
		line += ")"
		fmt.Fprintf(w, "    %s\n", ui.StatusSuccess(line))

		for _, f := range rec.Flags {
			if f.Severity == SeverityWarning {
				fmt.Fprintf(w, "        %s\n", ui.StatusWarning(f.Message))
			} else {
				fmt.Fprintf(w, "        %s\n", ui.StatusNote(f.Message))
			}
		}
	}
	fmt.Fprintln(w)
}

func (r *Report) renderMissing(w io.Writer) {
	if len(r.Missing) == 0 {
		return
	}
	fmt.Fprintf(w, "%s\n", ui.Bold("Missing"))
	for _, k := range r.Missing {
		fmt.Fprintf(w, "  %s\n", ui.StatusError(fmt.Sprintf("%s (%s)", k.Label(), expectedPath(k))))
	}
	fmt.Fprintln(w)
}

func (r *Report) renderReferences(w io.Writer) {
	if len(r.References) == 0 {
		return
	}
	dangling := 0
	for _, ref := range r.References {
		if !ref.Resolved {
			dangling++
		}
	}
	if dangling > 0 {
		fmt.Fprintf(w, "%s %d scanned, %s\n\n", ui.Bold("References:"),
			len(r.References), ui.Warning(fmt.Sprintf("%d dangling", dangling)))
	} else {
		fmt.Fprintf(w, "%s %d scanned, all resolved\n\n", ui.Bold("References:"), len(r.References))
	}
}

func (r *Report) renderConsistency(w io.Writer) {
	actual := 0
	for _, rec := range r.Records {
		if rec.Kind == KindSkill {
			actual++
		}
	}
	for _, claim := range r.SkillClaims {
		if claim.Count != actual {
			fmt.Fprintf(w, "%s\n", ui.StatusNote(fmt.Sprintf(
				"%s documents %d skills, actual count is %d", claim.Source, claim.Count, actual)))
		}
	}
}

func verdictColor(v Verdict) string {
	switch v {
	case VerdictStrong:
		return ui.Success(v.String())
	case VerdictGoodWithIssues:
		return ui.Warning(v.String())
	default:
		return ui.Error(v.String())
	}
}

// RenderJSON writes the machine-readable report.
func (r *Report) RenderJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}
