package draw

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/osse101/FNTDWorld_Go/internal/domain"
)

// AuditRow is the per-outcome line of an audit report
type AuditRow struct {
	ID          string        `json:"id"`
	Rarity      domain.Rarity `json:"rarity"`
	Probability float64       `json:"probability"`
	Observed    int           `json:"observed"`
	Expected    float64       `json:"expected"`
}

// AuditReport summarizes a goodness-of-fit run of the draw engine
type AuditReport struct {
	Trials           int        `json:"trials"`
	Rows             []AuditRow `json:"rows"`
	ChiSquare        float64    `json:"chi_square"`
	DegreesOfFreedom int        `json:"degrees_of_freedom"`
	PValue           float64    `json:"p_value"`
}

// Passes reports whether the observed counts are consistent with the catalog
// weights at significance level alpha.
func (r AuditReport) Passes(alpha float64) bool {
	return r.PValue >= alpha
}

// ProgressFunc is called periodically while an audit runs with the number of
// trials completed so far.
type ProgressFunc func(done int)

// Audit draws trials times and compares the observed counts with weight/total
// using Pearson's chi-square test.
func Audit(catalog []domain.RewardOutcome, trials int, src Source) (AuditReport, error) {
	return AuditWithProgress(catalog, trials, src, nil)
}

// AuditWithProgress is Audit with a progress callback, invoked every
// AuditProgressStep trials and once at the end.
func AuditWithProgress(catalog []domain.RewardOutcome, trials int, src Source, progress ProgressFunc) (AuditReport, error) {
	if trials < MinAuditTrials {
		return AuditReport{}, fmt.Errorf("%w: trials must be at least %d, got %d", domain.ErrInvalidAmount, MinAuditTrials, trials)
	}
	engine, err := NewEngine(catalog, src)
	if err != nil {
		return AuditReport{}, err
	}

	index := make(map[string]int, len(catalog))
	for i, o := range catalog {
		// duplicate IDs are counted against their first position
		if _, ok := index[o.ID]; !ok {
			index[o.ID] = i
		}
	}

	observed := make([]int, len(catalog))
	for i := 1; i <= trials; i++ {
		observed[index[engine.Draw().ID]]++
		if progress != nil && (i%AuditProgressStep == 0 || i == trials) {
			progress(i)
		}
	}

	probs := Probabilities(catalog)
	report := AuditReport{Trials: trials, Rows: make([]AuditRow, len(catalog))}
	for i, o := range catalog {
		expected := probs[i] * float64(trials)
		report.Rows[i] = AuditRow{
			ID:          o.ID,
			Rarity:      o.Rarity,
			Probability: probs[i],
			Observed:    observed[i],
			Expected:    expected,
		}
		if expected > 0 {
			d := float64(observed[i]) - expected
			report.ChiSquare += d * d / expected
		}
	}

	report.DegreesOfFreedom = len(catalog) - 1
	if report.DegreesOfFreedom < 1 {
		// a single outcome always fits
		report.PValue = 1
		return report, nil
	}
	dist := distuv.ChiSquared{K: float64(report.DegreesOfFreedom)}
	report.PValue = dist.Survival(report.ChiSquare)
	return report, nil
}
