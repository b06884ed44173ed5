package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("NewOutputManager(\"\"): %v", err)
	}
	if om != nil {
		t.Fatal("empty dir should disable output")
	}

	// Every method must be nil-safe.
	if err := om.WriteTelemetry(WindowStats{}); err != nil {
		t.Errorf("nil WriteTelemetry: %v", err)
	}
	if err := om.WritePerf(PerfStats{}, 0); err != nil {
		t.Errorf("nil WritePerf: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("nil Close: %v", err)
	}
}

func TestOutputManagerTelemetryHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	if err := om.WriteTelemetry(WindowStats{WindowEndTick: 300, ActiveSwarms: 2}); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := om.WriteTelemetry(WindowStats{WindowEndTick: 600, ActiveSwarms: 3}); err != nil {
		t.Fatalf("second write: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatalf("reading telemetry.csv: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("telemetry.csv has %d lines, want header plus 2 records", len(lines))
	}
	if !strings.HasPrefix(lines[0], "window_end") {
		t.Errorf("header = %q, want window_end first", lines[0])
	}
	if !strings.HasPrefix(lines[1], "300,") {
		t.Errorf("first record = %q, want tick 300 first", lines[1])
	}
	if !strings.HasPrefix(lines[2], "600,") {
		t.Errorf("second record = %q, want tick 600 first", lines[2])
	}
}

func TestOutputManagerPerfFile(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	if err := om.WritePerf(PerfStats{TicksPerSecond: 60}, 300); err != nil {
		t.Fatalf("WritePerf: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "perf.csv"))
	if err != nil {
		t.Fatalf("reading perf.csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("perf.csv has %d lines, want header plus 1 record", len(lines))
	}
	if !strings.Contains(lines[0], "avg_tick_us") {
		t.Errorf("header = %q, want avg_tick_us column", lines[0])
	}
}
