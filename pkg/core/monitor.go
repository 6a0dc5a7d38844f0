package core

// NetworkMonitor reads the statistics counters of one network interface.
// Implementations hold an open handle per subscribed counter and re-read the
// handles on update; snapshots are served from cached values without I/O.
//
// A NetworkMonitor is not safe for concurrent use. Callers that share one
// across goroutines must serialize all access externally.
type NetworkMonitor interface {
	// Interface returns the name of the monitored network interface.
	Interface() string

	// SubscribeReceive starts tracking the given receive counters. Kinds
	// already tracked are skipped; each kind is opened at most once.
	SubscribeReceive(kinds ...RxCounter) error

	// SubscribeTransmit starts tracking the given transmit counters. Kinds
	// already tracked are skipped; each kind is opened at most once.
	SubscribeTransmit(kinds ...TxCounter) error

	// Update re-reads every tracked counter in both directions. A failure
	// reading any one counter aborts the whole call.
	Update() error

	// UpdateReceive re-reads only the tracked receive counters.
	UpdateReceive() error

	// UpdateTransmit re-reads only the tracked transmit counters.
	UpdateTransmit() error

	// ReceiveSnapshot returns the last-updated receive values. Untracked
	// kinds are zero. No I/O is performed.
	ReceiveSnapshot() ReceiveStats

	// TransmitSnapshot returns the last-updated transmit values. Untracked
	// kinds are zero. No I/O is performed.
	TransmitSnapshot() TransmitStats

	// RxBytes returns the cached rx_bytes value, zero if untracked.
	RxBytes() uint64

	// RxPackets returns the cached rx_packets value, zero if untracked.
	RxPackets() uint64

	// TxBytes returns the cached tx_bytes value, zero if untracked.
	TxBytes() uint64

	// TxPackets returns the cached tx_packets value, zero if untracked.
	TxPackets() uint64

	// Metrics returns operation metrics for the monitor.
	Metrics() MonitorMetrics

	// Close releases every open counter handle. All handles are attempted
	// even if some closes fail.
	Close() error
}

// MonitorMetrics contains operation metrics for a monitor.
type MonitorMetrics struct {
	// Updates is the number of completed update passes. A full update
	// contributes one receive and one transmit pass.
	Updates uint64

	// CountersRead is the number of counter values read successfully.
	CountersRead uint64

	// ReadFailures is the number of counter reads that failed at the I/O
	// layer.
	ReadFailures uint64

	// ParseFailures is the number of counter reads whose contents were not a
	// decimal value.
	ParseFailures uint64
}
