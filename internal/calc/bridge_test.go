package calc

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Greenkack/pvoffer-backend/pkg/config"
	pkgerrors "github.com/Greenkack/pvoffer-backend/pkg/errors"
	"github.com/Greenkack/pvoffer-backend/pkg/logger"
	"github.com/Greenkack/pvoffer-backend/pkg/metrics"
)

// newBridge wires the bridge to a throwaway shell script standing in for the
// real engine, so the tests need no python installation.
func newBridge(t *testing.T, script string, timeout time.Duration) *Bridge {
	t.Helper()
	path := filepath.Join(t.TempDir(), "engine.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755))

	logg := logger.New(logger.Options{ServiceName: "calc-test", Output: io.Discard})
	cfg := config.EngineConfig{Command: "sh", Script: path, Timeout: timeout}
	return NewBridge(cfg, logg, metrics.NewCalculationMetrics(nil))
}

func sampleProject() ProjectData {
	return ProjectData{
		CustomerData: CustomerData{
			CustomerName: "Familie Weber",
			Street:       "Lindenweg 4",
			City:         "Kiel",
			ZipCode:      "24103",
		},
		ProjectDetails: ProjectDetails{
			AnlageKwp:              8.9,
			ModuleQuantity:         20,
			RoofOrientation:        180,
			RoofTilt:               35,
			AnnualConsumptionKwhYr: 4200,
			ElectricityPriceKwh:    0.32,
		},
		EconomicData: EconomicData{
			CurrentElectricityPrice:     0.32,
			ElectricityPriceIncrease:    3,
			Einspeiseverguetung:         0.082,
			EinspeiseverguetungDuration: 20,
			DiscountRate:                2,
			AnalysisHorizon:             20,
			AnnualConsumptionKwh:        4200,
		},
	}
}

func TestCalculateHappyPath(t *testing.T) {
	b := newBridge(t, `cat >/dev/null; echo '{"success":true,"data":{"anlage_kwp":8.9,"annual_pv_production_kwh":8450,"autarky_percent":61.2}}'`, 10*time.Second)

	result, err := b.Calculate(context.Background(), sampleProject())
	require.NoError(t, err)
	assert.True(t, result.Success)
	require.NotNil(t, result.Data)
	assert.Equal(t, 8.9, result.Data.AnlageKwp)
	assert.Equal(t, 61.2, result.Data.AutarkyPercent)
	assert.False(t, b.Busy())
}

func TestCalculateReceivesProjectOnStdin(t *testing.T) {
	b := newBridge(t, `payload=$(cat); case "$payload" in *'"customer_data"'*'"anlage_kwp":8.9'*) echo '{"success":true}';; *) echo '{"success":false,"error":"bad payload"}';; esac`, 10*time.Second)

	result, err := b.Calculate(context.Background(), sampleProject())
	require.NoError(t, err)
	assert.True(t, result.Success, "engine did not receive the serialized project: %s", result.Error)
}

func TestCalculateEngineReportsFailure(t *testing.T) {
	b := newBridge(t, `cat >/dev/null; echo '{"success":false,"error":"module_quantity must be a positive number"}'`, 10*time.Second)

	result, err := b.Calculate(context.Background(), sampleProject())
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "module_quantity must be a positive number", result.Error)
}

func TestCalculateNonzeroExit(t *testing.T) {
	b := newBridge(t, `cat >/dev/null; echo "boom" >&2; exit 3`, 10*time.Second)

	result, err := b.Calculate(context.Background(), sampleProject())
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "exited with code 3")
	assert.Contains(t, result.Error, "boom")
}

func TestCalculateGarbageStdout(t *testing.T) {
	b := newBridge(t, `cat >/dev/null; echo "INFO: warming up"`, 10*time.Second)

	result, err := b.Calculate(context.Background(), sampleProject())
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Failed to parse calculation results", result.Error)
}

func TestCalculateLaunchFailure(t *testing.T) {
	logg := logger.New(logger.Options{ServiceName: "calc-test", Output: io.Discard})
	cfg := config.EngineConfig{Command: "definitely-not-a-real-binary", Timeout: 5 * time.Second}
	b := NewBridge(cfg, logg, metrics.NewCalculationMetrics(nil))

	result, err := b.Calculate(context.Background(), sampleProject())
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "engine process error")
}

func TestCalculateSingleFlight(t *testing.T) {
	b := newBridge(t, `cat >/dev/null; sleep 2; echo '{"success":true}'`, 10*time.Second)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = b.Calculate(context.Background(), sampleProject())
	}()

	// Give the first run a moment to grab the slot.
	require.Eventually(t, b.Busy, time.Second, 10*time.Millisecond)

	_, err := b.Calculate(context.Background(), sampleProject())
	require.Error(t, err)
	te := pkgerrors.As(err)
	require.NotNil(t, te)
	assert.Equal(t, pkgerrors.CodeCalculationBusy, te.Code())

	wg.Wait()
	assert.False(t, b.Busy())
}

func TestCalculateTimeout(t *testing.T) {
	b := newBridge(t, `cat >/dev/null; sleep 5; echo '{"success":true}'`, 300*time.Millisecond)

	result, err := b.Calculate(context.Background(), sampleProject())
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "timed out")
}

func TestKillResetsGuard(t *testing.T) {
	b := newBridge(t, `cat >/dev/null; sleep 10; echo '{"success":true}'`, 30*time.Second)

	done := make(chan *Result, 1)
	go func() {
		result, _ := b.Calculate(context.Background(), sampleProject())
		done <- result
	}()

	require.Eventually(t, b.Busy, time.Second, 10*time.Millisecond)
	assert.True(t, b.Kill())

	select {
	case result := <-done:
		require.NotNil(t, result)
		assert.False(t, result.Success)
	case <-time.After(5 * time.Second):
		t.Fatal("calculation did not stop after kill")
	}
	assert.False(t, b.Busy(), "kill must release the single-flight slot")
}

func TestKillDoesNotClobberNextCalculation(t *testing.T) {
	b := newBridge(t, `cat >/dev/null; sleep 10; echo '{"success":true}'`, 30*time.Second)

	// The killed run unwinds concurrently with the next one taking the slot;
	// repeat so both interleavings get exercised.
	for i := 0; i < 8; i++ {
		firstDone := make(chan struct{})
		go func() {
			_, _ = b.Calculate(context.Background(), sampleProject())
			close(firstDone)
		}()
		require.Eventually(t, b.Busy, time.Second, time.Millisecond)
		require.True(t, b.Kill())

		secondDone := make(chan *Result, 1)
		go func() {
			result, _ := b.Calculate(context.Background(), sampleProject())
			secondDone <- result
		}()
		require.Eventually(t, b.Busy, time.Second, time.Millisecond)

		select {
		case <-firstDone:
		case <-time.After(5 * time.Second):
			t.Fatal("killed calculation did not return")
		}

		// The first run has fully unwound; its cleanup must not have released
		// the slot the second run is holding.
		assert.True(t, b.Busy(), "iteration %d: slot released while a calculation is in flight", i)
		_, err := b.Calculate(context.Background(), sampleProject())
		require.Error(t, err, "iteration %d: a third calculation was admitted", i)

		require.True(t, b.Kill(), "iteration %d: kill lost track of the running process", i)
		select {
		case result := <-secondDone:
			require.NotNil(t, result)
			assert.False(t, result.Success)
		case <-time.After(5 * time.Second):
			t.Fatal("second calculation did not stop after kill")
		}
		require.Eventually(t, func() bool { return !b.Busy() }, time.Second, time.Millisecond)
	}
}

func TestKillWithoutRunningCalculation(t *testing.T) {
	b := newBridge(t, "true", time.Second)
	assert.False(t, b.Kill())
}
