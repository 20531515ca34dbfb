package calc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/Greenkack/pvoffer-backend/pkg/config"
	pkgerrors "github.com/Greenkack/pvoffer-backend/pkg/errors"
	"github.com/Greenkack/pvoffer-backend/pkg/logger"
	"github.com/Greenkack/pvoffer-backend/pkg/metrics"
)

// Bridge runs the external calculation engine as a subprocess, one run at a
// time. A second Calculate while one is in flight fails immediately instead
// of queueing.
type Bridge struct {
	cfg     config.EngineConfig
	logg    *logger.Logger
	metrics *metrics.CalculationMetrics

	mu      sync.Mutex
	running bool
	gen     uint64
	cancel  context.CancelFunc
	proc    *os.Process
}

// NewBridge builds a bridge for the configured engine command.
func NewBridge(cfg config.EngineConfig, logg *logger.Logger, m *metrics.CalculationMetrics) *Bridge {
	return &Bridge{cfg: cfg, logg: logg, metrics: m}
}

// ErrBusy is returned when a calculation is already in flight.
var ErrBusy = pkgerrors.New(pkgerrors.CodeCalculationBusy, "calculation already in progress")

// Calculate serializes the project, feeds it to the engine on stdin and
// returns the parsed stdout result. Engine failures (launch error, nonzero
// exit, unparseable output, timeout) come back as a failed Result, not as an
// error; the only error is ErrBusy.
func (b *Bridge) Calculate(ctx context.Context, project ProjectData) (*Result, error) {
	b.mu.Lock()
	if b.running {
		b.mu.Unlock()
		b.metrics.IncRejected()
		return nil, ErrBusy
	}
	b.running = true
	b.gen++
	gen := b.gen
	b.mu.Unlock()

	// Kill bumps the generation when it releases the slot, so a run that was
	// killed must not touch bookkeeping that now belongs to a later run.
	defer func() {
		b.mu.Lock()
		if b.gen == gen {
			b.running = false
			b.cancel = nil
			b.proc = nil
		}
		b.mu.Unlock()
	}()

	start := time.Now()
	result := b.run(ctx, gen, project)
	b.metrics.ObserveDuration(time.Since(start))
	if result.Success {
		b.metrics.IncSuccess()
	} else {
		b.metrics.IncFailure()
		b.logg.Warn(ctx, fmt.Sprintf("calculation failed: %s", result.Error))
	}
	return result, nil
}

func (b *Bridge) run(ctx context.Context, gen uint64, project ProjectData) *Result {
	payload, err := json.Marshal(project)
	if err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("failed to encode project data: %v", err)}
	}

	runCtx, cancel := context.WithTimeout(ctx, b.cfg.Timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, b.cfg.Command, b.cfg.Args()...)
	cmd.Stdin = bytes.NewReader(payload)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	b.logg.Info(ctx, "starting engine calculation")
	if err := cmd.Start(); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("engine process error: %v", err)}
	}

	b.mu.Lock()
	stale := b.gen != gen
	if !stale {
		b.cancel = cancel
		b.proc = cmd.Process
	}
	b.mu.Unlock()
	if stale {
		// Killed between acquiring the slot and registering the process; the
		// kill could not reach us, so stop the subprocess ourselves.
		cancel()
	}

	waitErr := cmd.Wait()

	switch runCtx.Err() {
	case context.DeadlineExceeded:
		return &Result{Success: false, Error: fmt.Sprintf("calculation timed out after %s", b.cfg.Timeout)}
	case context.Canceled:
		return &Result{Success: false, Error: "calculation was cancelled"}
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			msg := fmt.Sprintf("engine exited with code %d", exitErr.ExitCode())
			if diag := strings.TrimSpace(stderr.String()); diag != "" {
				msg = fmt.Sprintf("%s: %s", msg, diag)
			}
			return &Result{Success: false, Error: msg}
		}
		return &Result{Success: false, Error: fmt.Sprintf("engine process error: %v", waitErr)}
	}

	var result Result
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		return &Result{Success: false, Error: "Failed to parse calculation results"}
	}
	return &result
}

// Kill forcibly terminates an in-flight calculation and resets the
// single-flight guard. It reports whether a process was actually running.
func (b *Bridge) Kill() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.running {
		return false
	}
	if b.cancel != nil {
		b.cancel()
	}
	if b.proc != nil {
		_ = b.proc.Kill()
	}
	// Invalidate the killed run's generation so its cleanup cannot clobber
	// the bookkeeping of whichever calculation takes the slot next.
	b.gen++
	b.running = false
	b.cancel = nil
	b.proc = nil
	return true
}

// Busy reports whether a calculation is currently in flight.
func (b *Bridge) Busy() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.running
}
