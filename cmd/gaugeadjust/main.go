package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"

	"gaugeadjust/pkg/adjust"
	"gaugeadjust/pkg/config"
	"gaugeadjust/pkg/spatial"
	"gaugeadjust/pkg/verify"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration file")
	model := flag.String("model", "", "Error model override: additive, multiply, mixed, mfb, gaugeonly, null")
	gridSize := flag.Int("grid", 50, "Side length of the synthetic raw field grid")
	numGauges := flag.Int("gauges", 30, "Number of synthetic gauges")
	bias := flag.Float64("bias", 1.4, "Multiplicative bias applied to the synthetic raw field")
	noise := flag.Float64("noise", 0.5, "Noise amplitude applied to the synthetic raw field")
	seed := flag.Int64("seed", 1, "Random seed for gauge placement and noise")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *model != "" {
		cfg.Adjustment.Model = *model
	}

	fmt.Println("================================")
	fmt.Println("GAUGE ADJUSTMENT OF A SYNTHETIC RAINFALL FIELD")
	fmt.Printf("Model: %s | Grid: %dx%d | Gauges: %d\n", cfg.Adjustment.Model, *gridSize, *gridSize, *numGauges)
	fmt.Println("================================")

	rawCoords, truth := syntheticField(*gridSize)
	rng := rand.New(rand.NewSource(*seed))
	raw := distortField(truth, *bias, *noise, rng)
	obsCoords, obs := sampleGauges(*numGauges, rng)

	adjuster, err := adjust.New(cfg.Model(), obsCoords, rawCoords, cfg.AdjustOptions())
	if err != nil {
		log.Fatalf("Failed to create adjuster: %v", err)
	}

	corrected, err := adjuster.Adjust(obs, raw)
	if err != nil {
		log.Fatalf("Adjustment failed: %v", err)
	}

	fmt.Printf("\nField error against ground truth:\n")
	fmt.Printf("=================================\n")
	report("Unadjusted", truth, raw)
	report("Adjusted", truth, corrected)

	observed, estimated, err := adjuster.CrossValidate(obs, raw)
	if err != nil {
		log.Fatalf("Cross-validation failed: %v", err)
	}
	metrics, err := verify.Evaluate(observed, estimated)
	if err != nil {
		log.Fatalf("Verification failed: %v", err)
	}

	fmt.Printf("\nLeave-one-out cross-validation (%d gauges scored):\n", metrics.N)
	fmt.Printf("==================================================\n")
	fmt.Printf("Bias: %+.4f\n", metrics.Bias)
	fmt.Printf("MAE: %.4f\n", metrics.MAE)
	fmt.Printf("RMSE: %.4f\n", metrics.RMSE)
	fmt.Printf("Correlation: %.4f\n", metrics.Correlation)

	if cfg.Output.Verbose {
		fmt.Printf("\nConfiguration: neighbors=%d statistic=%s minGauges=%d minValue=%.2f\n",
			cfg.Adjustment.Neighbors, cfg.Adjustment.Statistic,
			cfg.Adjustment.MinGauges, cfg.Adjustment.MinValue)
	}
}

// syntheticField builds a smooth rainfall-like field on a unit grid: two
// Gaussian rain cells over a light background.
func syntheticField(n int) ([]spatial.Point, []float64) {
	coords := make([]spatial.Point, 0, n*n)
	values := make([]float64, 0, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			px := float64(x) / float64(n-1)
			py := float64(y) / float64(n-1)
			coords = append(coords, spatial.Point{px, py})
			values = append(values, rainfall(px, py))
		}
	}
	return coords, values
}

func rainfall(x, y float64) float64 {
	cell := func(cx, cy, amp, sigma float64) float64 {
		dx, dy := x-cx, y-cy
		return amp * math.Exp(-(dx*dx+dy*dy)/(2*sigma*sigma))
	}
	return 0.5 + cell(0.3, 0.4, 12, 0.15) + cell(0.75, 0.7, 8, 0.12)
}

// distortField applies a multiplicative bias and additive noise, clamping at
// zero so the result remains a physical rainfall field.
func distortField(truth []float64, bias, noise float64, rng *rand.Rand) []float64 {
	out := make([]float64, len(truth))
	for i, v := range truth {
		d := v*bias + noise*rng.NormFloat64()
		if d < 0 {
			d = 0
		}
		out[i] = d
	}
	return out
}

// sampleGauges places gauges at random interior locations and reads the true
// field there, i.e. the gauges are trusted.
func sampleGauges(count int, rng *rand.Rand) ([]spatial.Point, []float64) {
	coords := make([]spatial.Point, count)
	values := make([]float64, count)
	for i := range coords {
		px := 0.05 + 0.9*rng.Float64()
		py := 0.05 + 0.9*rng.Float64()
		coords[i] = spatial.Point{px, py}
		values[i] = rainfall(px, py)
	}
	return coords, values
}

func report(label string, truth, field []float64) {
	m, err := verify.Evaluate(truth, field)
	if err != nil {
		log.Fatalf("Verification failed: %v", err)
	}
	fmt.Printf("%-12s bias=%+.4f rmse=%.4f corr=%.4f\n", label, m.Bias, m.RMSE, m.Correlation)
}
