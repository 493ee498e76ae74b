package audit

// Verdict is the categorical maturity judgment for a scanned context layer.
type Verdict int

const (
	VerdictMinimal Verdict = iota
	VerdictDeveloping
	VerdictGoodWithIssues
	VerdictStrong
)

// String returns the report wording for the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictMinimal:
		return "Minimal"
	case VerdictDeveloping:
		return "Developing"
	case VerdictGoodWithIssues:
		return "Good (with issues)"
	case VerdictStrong:
		return "Strong"
	default:
		return "Unknown"
	}
}

// Score maps the tallied counters to a verdict. It is a pure function
// evaluated by fixed priority so the same triple always yields the same
// verdict, independent of the filesystem.
func Score(found, missing, warnings int) Verdict {
	switch {
	case missing > 3:
		return VerdictMinimal
	case missing > 1:
		return VerdictDeveloping
	case warnings > 2:
		return VerdictGoodWithIssues
	default:
		return VerdictStrong
	}
}
