package verify

import (
	"errors"
	"math"
	"testing"
)

func TestEvaluateKnownValues(t *testing.T) {
	observed := []float64{1, 2, 3, 4}
	estimated := []float64{1.5, 2.5, 3.5, 4.5}

	m, err := Evaluate(observed, estimated)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if m.N != 4 {
		t.Errorf("Expected 4 pairs, got %d", m.N)
	}
	if math.Abs(m.Bias-0.5) > 1e-12 {
		t.Errorf("Expected bias 0.5, got %f", m.Bias)
	}
	if math.Abs(m.MAE-0.5) > 1e-12 {
		t.Errorf("Expected MAE 0.5, got %f", m.MAE)
	}
	if math.Abs(m.RMSE-0.5) > 1e-12 {
		t.Errorf("Expected RMSE 0.5, got %f", m.RMSE)
	}
	if math.Abs(m.Correlation-1) > 1e-12 {
		t.Errorf("Expected correlation 1, got %f", m.Correlation)
	}
}

func TestEvaluateSkipsNonFinitePairs(t *testing.T) {
	observed := []float64{1, math.NaN(), 3, 4}
	estimated := []float64{1, 2, math.Inf(1), 4}

	m, err := Evaluate(observed, estimated)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if m.N != 2 {
		t.Errorf("Expected 2 scored pairs, got %d", m.N)
	}
	if m.Bias != 0 || m.RMSE != 0 {
		t.Errorf("Expected perfect agreement on remaining pairs, got bias=%f rmse=%f", m.Bias, m.RMSE)
	}
}

func TestEvaluateAllInvalid(t *testing.T) {
	m, err := Evaluate([]float64{math.NaN()}, []float64{1})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if m.N != 0 {
		t.Errorf("Expected 0 pairs, got %d", m.N)
	}
	if !math.IsNaN(m.RMSE) || !math.IsNaN(m.Correlation) {
		t.Errorf("Expected NaN metrics for empty score set, got %+v", m)
	}
}

func TestEvaluateLengthMismatch(t *testing.T) {
	_, err := Evaluate([]float64{1, 2}, []float64{1})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("Expected ErrLengthMismatch, got %v", err)
	}
}
