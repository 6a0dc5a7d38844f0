package core

import (
	"strings"
	"testing"
)

// TestRxCounterFileNames checks that every receive kind maps to a distinct
// statistics file name.
func TestRxCounterFileNames(t *testing.T) {
	kinds := AllRxCounters()
	if len(kinds) != 11 {
		t.Fatalf("Expected 11 receive counter kinds, got %d", len(kinds))
	}

	seen := make(map[string]bool)
	for _, kind := range kinds {
		name := kind.FileName()
		if name == "" {
			t.Errorf("Receive counter %d has no file name", int(kind))
			continue
		}
		if !strings.HasPrefix(name, "rx_") {
			t.Errorf("Expected rx_ prefix for %q", name)
		}
		if seen[name] {
			t.Errorf("Duplicate file name %q", name)
		}
		seen[name] = true
	}
}

// TestTxCounterFileNames checks that every transmit kind maps to a distinct
// statistics file name.
func TestTxCounterFileNames(t *testing.T) {
	kinds := AllTxCounters()
	if len(kinds) != 10 {
		t.Fatalf("Expected 10 transmit counter kinds, got %d", len(kinds))
	}

	seen := make(map[string]bool)
	for _, kind := range kinds {
		name := kind.FileName()
		if name == "" {
			t.Errorf("Transmit counter %d has no file name", int(kind))
			continue
		}
		if !strings.HasPrefix(name, "tx_") {
			t.Errorf("Expected tx_ prefix for %q", name)
		}
		if seen[name] {
			t.Errorf("Duplicate file name %q", name)
		}
		seen[name] = true
	}
}

// TestCounterString checks the String form for known and unknown values.
func TestCounterString(t *testing.T) {
	if got := RxBytes.String(); got != "rx_bytes" {
		t.Errorf("Expected 'rx_bytes', got %q", got)
	}
	if got := TxWindowErrors.String(); got != "tx_window_errors" {
		t.Errorf("Expected 'tx_window_errors', got %q", got)
	}
	if got := RxCounter(99).String(); got != "RxCounter(99)" {
		t.Errorf("Expected fallback form for unknown kind, got %q", got)
	}
	if got := TxCounter(-1).String(); got != "TxCounter(-1)" {
		t.Errorf("Expected fallback form for unknown kind, got %q", got)
	}
}

// TestParseRxCounter checks parsing round-trips, normalization and failures.
func TestParseRxCounter(t *testing.T) {
	for _, kind := range AllRxCounters() {
		parsed, err := ParseRxCounter(kind.FileName())
		if err != nil {
			t.Errorf("Failed to parse %q: %v", kind.FileName(), err)
			continue
		}
		if parsed != kind {
			t.Errorf("Expected %v, got %v", kind, parsed)
		}
	}

	// Case and surrounding space are ignored.
	if kind, err := ParseRxCounter("  RX_BYTES "); err != nil || kind != RxBytes {
		t.Errorf("Expected RxBytes for ' RX_BYTES ', got %v, %v", kind, err)
	}

	if _, err := ParseRxCounter("rx_nonsense"); err == nil {
		t.Errorf("Expected error for unknown counter name")
	}
	if _, err := ParseRxCounter("tx_bytes"); err == nil {
		t.Errorf("Expected error parsing a transmit name as receive")
	}
}

// TestParseTxCounter checks parsing round-trips and failures.
func TestParseTxCounter(t *testing.T) {
	for _, kind := range AllTxCounters() {
		parsed, err := ParseTxCounter(kind.FileName())
		if err != nil {
			t.Errorf("Failed to parse %q: %v", kind.FileName(), err)
			continue
		}
		if parsed != kind {
			t.Errorf("Expected %v, got %v", kind, parsed)
		}
	}

	if _, err := ParseTxCounter("rx_bytes"); err == nil {
		t.Errorf("Expected error parsing a receive name as transmit")
	}
}
