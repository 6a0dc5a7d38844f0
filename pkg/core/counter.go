package core

import (
	"fmt"
	"strings"
)

// RxCounter identifies one receive-side statistic of a network interface.
type RxCounter int

// Receive counter kinds.
const (
	RxBytes RxCounter = iota
	RxCompressed
	RxCRCErrors
	RxDropped
	RxErrors
	RxFIFOErrors
	RxFrameErrors
	RxLengthErrors
	RxMissedErrors
	RxOverErrors
	RxPackets
)

// TxCounter identifies one transmit-side statistic of a network interface.
type TxCounter int

// Transmit counter kinds.
const (
	TxAbortedErrors TxCounter = iota
	TxBytes
	TxCarrierErrors
	TxCompressed
	TxDropped
	TxErrors
	TxFIFOErrors
	TxHeartbeatErrors
	TxPackets
	TxWindowErrors
)

// rxFileNames maps each receive counter kind to the statistics file that holds
// its value. The tables are immutable after package load; nothing may write to
// them at runtime.
var rxFileNames = map[RxCounter]string{
	RxBytes:        "rx_bytes",
	RxCompressed:   "rx_compressed",
	RxCRCErrors:    "rx_crc_errors",
	RxDropped:      "rx_dropped",
	RxErrors:       "rx_errors",
	RxFIFOErrors:   "rx_fifo_errors",
	RxFrameErrors:  "rx_frame_errors",
	RxLengthErrors: "rx_length_errors",
	RxMissedErrors: "rx_missed_errors",
	RxOverErrors:   "rx_over_errors",
	RxPackets:      "rx_packets",
}

// txFileNames is the transmit-side counterpart of rxFileNames.
var txFileNames = map[TxCounter]string{
	TxAbortedErrors:   "tx_aborted_errors",
	TxBytes:           "tx_bytes",
	TxCarrierErrors:   "tx_carrier_errors",
	TxCompressed:      "tx_compressed",
	TxDropped:         "tx_dropped",
	TxErrors:          "tx_errors",
	TxFIFOErrors:      "tx_fifo_errors",
	TxHeartbeatErrors: "tx_heartbeat_errors",
	TxPackets:         "tx_packets",
	TxWindowErrors:    "tx_window_errors",
}

// FileName returns the name of the statistics file for this counter kind, or
// an empty string for values outside the known kinds.
func (r RxCounter) FileName() string {
	return rxFileNames[r]
}

// String returns the file-name form of the counter (e.g. "rx_bytes").
func (r RxCounter) String() string {
	if name, ok := rxFileNames[r]; ok {
		return name
	}
	return fmt.Sprintf("RxCounter(%d)", int(r))
}

// FileName returns the name of the statistics file for this counter kind, or
// an empty string for values outside the known kinds.
func (t TxCounter) FileName() string {
	return txFileNames[t]
}

// String returns the file-name form of the counter (e.g. "tx_bytes").
func (t TxCounter) String() string {
	if name, ok := txFileNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TxCounter(%d)", int(t))
}

// AllRxCounters returns every receive counter kind in a fixed order.
func AllRxCounters() []RxCounter {
	return []RxCounter{
		RxBytes, RxCompressed, RxCRCErrors, RxDropped, RxErrors,
		RxFIFOErrors, RxFrameErrors, RxLengthErrors, RxMissedErrors,
		RxOverErrors, RxPackets,
	}
}

// AllTxCounters returns every transmit counter kind in a fixed order.
func AllTxCounters() []TxCounter {
	return []TxCounter{
		TxAbortedErrors, TxBytes, TxCarrierErrors, TxCompressed, TxDropped,
		TxErrors, TxFIFOErrors, TxHeartbeatErrors, TxPackets, TxWindowErrors,
	}
}

// ParseRxCounter converts the file-name form (e.g. "rx_bytes") into a receive
// counter kind. Matching is case-insensitive and ignores surrounding space.
func ParseRxCounter(name string) (RxCounter, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for kind, file := range rxFileNames {
		if file == want {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown receive counter %q", name)
}

// ParseTxCounter converts the file-name form (e.g. "tx_bytes") into a transmit
// counter kind. Matching is case-insensitive and ignores surrounding space.
func ParseTxCounter(name string) (TxCounter, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for kind, file := range txFileNames {
		if file == want {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown transmit counter %q", name)
}
