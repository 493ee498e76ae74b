package audit

import "github.com/klauern/ctxaudit/internal/config"

// BudgetBand classifies the estimated context budget.
type BudgetBand int

const (
	BudgetVeryLow BudgetBand = iota
	BudgetNominal
	BudgetModerate
	BudgetHigh
)

// Describe returns the report wording for the band.
func (b BudgetBand) Describe() string {
	switch b {
	case BudgetVeryLow:
		return "very small, likely insufficient"
	case BudgetModerate:
		return "moderate, monitor growth"
	case BudgetHigh:
		return "attention dilution risk"
	default:
		return "nominal"
	}
}

// Budget is the estimated attention cost of the auto-loaded context layer
// at session start.
type Budget struct {
	Bytes      int64      `json:"bytes"`
	Tokens     int64      `json:"tokens"`
	Band       BudgetBand `json:"band"`
	AutoLoaded int        `json:"auto_loaded_artifacts"`
	Skills     int        `json:"skills"`
}

// EstimateBudget sums the byte size of every auto-loaded artifact (root
// and module configs), adds the fixed per-skill registration overhead,
// and converts bytes to tokens at the policy ratio.
func EstimateBudget(records []Record, pol config.BudgetPolicy) Budget {
	var b Budget
	for _, r := range records {
		switch r.Kind {
		case KindRootConfig, KindModuleConfig:
			b.Bytes += r.SizeBytes
			b.AutoLoaded++
		case KindSkill:
			b.Skills++
		}
	}
	b.Bytes += int64(b.Skills) * int64(pol.SkillOverheadBytes)

	bytesPerToken := pol.BytesPerToken
	if bytesPerToken <= 0 {
		bytesPerToken = 4
	}
	b.Tokens = b.Bytes / int64(bytesPerToken)

	switch {
	case b.Tokens < int64(pol.LowTokens):
		b.Band = BudgetVeryLow
	case b.Tokens < int64(pol.ModerateTokens):
		b.Band = BudgetNominal
	case b.Tokens < int64(pol.HighTokens):
		b.Band = BudgetModerate
	default:
		b.Band = BudgetHigh
	}
	return b
}
