package calculation

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/drawplan/drawdown-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// RunMonteCarlo repeats the deterministic projection with randomized
// annual returns and aggregates percentile bands. Each trial is a
// pure function of (config, seed+trialIndex), so runs with the same
// seed are reproducible regardless of scheduling.
func (e *Engine) RunMonteCarlo(ctx context.Context, cfg *domain.SimulationConfig) (*domain.MonteCarloSummary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	seed := cfg.MonteCarlo.Seed
	if seed == 0 {
		seed = seedFunc()
	}
	numTrials := cfg.MonteCarlo.NumSimulations
	e.Logger.Infof("monte carlo run: %d trials, seed %d", numTrials, seed)

	results := make([]*domain.FullSimulationResult, numTrials)
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, 10) // Limit concurrent trials
	var completed int64

	for i := 0; i < numTrials; i++ {
		// Cooperative cancellation is checked between trials only;
		// a started trial always runs to completion.
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		go func(trial int) {
			defer wg.Done()
			semaphore <- struct{}{}        // Acquire semaphore
			defer func() { <-semaphore }() // Release semaphore

			results[trial] = runTrial(cfg, seed+int64(trial))

			done := atomic.AddInt64(&completed, 1)
			if e.OnTrialDone != nil {
				e.OnTrialDone(int(done), numTrials)
			}
		}(i)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("monte carlo run canceled: %w", err)
	}

	summary := aggregateTrials(cfg, results)
	summary.NumSimulations = numTrials
	summary.Seed = seed
	return summary, nil
}

// runTrial executes one projection with returns drawn fresh for every
// simulated year from the two configured normal distributions.
func runTrial(cfg *domain.SimulationConfig, seed int64) *domain.FullSimulationResult {
	rng := rand.New(rand.NewSource(seed))

	highMean, _ := cfg.HighRiskReturn.Float64()
	highStdDev, _ := cfg.MonteCarlo.HighRiskStdDev.Float64()
	lowMean, _ := cfg.LowRiskReturn.Float64()
	lowStdDev, _ := cfg.MonteCarlo.LowRiskStdDev.Float64()

	return runProjection(cfg, func(int) (decimal.Decimal, decimal.Decimal) {
		high := sampleNormal(rng, highMean, highStdDev)
		low := sampleNormal(rng, lowMean, lowStdDev)
		return decimal.NewFromFloat(high), decimal.NewFromFloat(low)
	})
}

// sampleNormal draws from N(mean, stdDev) using the Box-Muller
// transform.
func sampleNormal(rng *rand.Rand, mean, stdDev float64) float64 {
	u1 := rng.Float64()
	u2 := rng.Float64()
	if u1 < 1e-12 {
		u1 = 1e-12 // guard the log
	}
	z := math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
	return mean + stdDev*z
}

// aggregateTrials reduces the raw trial paths to per-age bands and the
// two scalar success rates. The raw paths are not retained.
func aggregateTrials(cfg *domain.SimulationConfig, results []*domain.FullSimulationResult) *domain.MonteCarloSummary {
	horizon := cfg.EndAge - cfg.RetirementAge + 1
	numTrials := len(results)
	trialCount := decimal.NewFromInt(int64(numTrials))

	bands := make([]domain.MonteCarloYearBand, 0, horizon)
	for offset := 0; offset < horizon; offset++ {
		balances := make([]decimal.Decimal, 0, numTrials)
		solvent := 0
		for _, r := range results {
			balance := r.Years[offset].TotalTSPBalance
			balances = append(balances, balance)
			if balance.GreaterThan(decimal.Zero) {
				solvent++
			}
		}
		sort.Slice(balances, func(i, j int) bool {
			return balances[i].LessThan(balances[j])
		})

		bands = append(bands, domain.MonteCarloYearBand{
			Age:         cfg.RetirementAge + offset,
			P10:         percentile(balances, 10),
			P25:         percentile(balances, 25),
			P50:         percentile(balances, 50),
			P75:         percentile(balances, 75),
			P90:         percentile(balances, 90),
			SuccessRate: decimal.NewFromInt(int64(solvent)).Div(trialCount),
		})
	}

	// Overall success counts trials never depleted; the milestone rate
	// is read from the age-85 band (or the final band when the horizon
	// ends earlier).
	neverDepleted := 0
	for _, r := range results {
		if r.DepletionAge == nil {
			neverDepleted++
		}
	}

	milestoneAge := 85
	if cfg.EndAge < milestoneAge {
		milestoneAge = cfg.EndAge
	}
	successAt85 := decimal.Zero
	for _, band := range bands {
		if band.Age == milestoneAge {
			successAt85 = band.SuccessRate
			break
		}
	}

	return &domain.MonteCarloSummary{
		Bands:              bands,
		OverallSuccessRate: decimal.NewFromInt(int64(neverDepleted)).Div(trialCount),
		SuccessRateAtAge85: successAt85,
	}
}

// percentile reads the p-th percentile from an ascending-sorted slice.
func percentile(sorted []decimal.Decimal, p int) decimal.Decimal {
	if len(sorted) == 0 {
		return decimal.Zero
	}
	idx := p * (len(sorted) - 1) / 100
	return sorted[idx]
}
