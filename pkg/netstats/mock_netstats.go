package netstats

import (
	"github.com/rcrocomb/network-interface-monitor/pkg/core"
)

// MockMonitor is a mock implementation of core.NetworkMonitor for testing.
// It performs no filesystem I/O: tests seed counter values with SetRxValue
// and SetTxValue, and Update copies the seeded values into the snapshot state
// the same way the real monitor copies file contents.
type MockMonitor struct {
	iface string

	// Seeded source values, standing in for statistics file contents.
	rxSource map[core.RxCounter]uint64
	txSource map[core.TxCounter]uint64

	// Cached values, populated from the source maps on update.
	rxValues map[core.RxCounter]uint64
	txValues map[core.TxCounter]uint64

	rxTracked map[core.RxCounter]bool
	txTracked map[core.TxCounter]bool

	updateCount int
	metrics     core.MonitorMetrics
	closed      bool

	// UpdateErr, when non-nil, is returned by every update call.
	UpdateErr error

	// CloseErr, when non-nil, is returned by Close.
	CloseErr error
}

// Ensure MockMonitor implements the monitor contract
var _ core.NetworkMonitor = (*MockMonitor)(nil)

// NewMockMonitor creates a new mock monitor for the named interface.
func NewMockMonitor(iface string) *MockMonitor {
	return &MockMonitor{
		iface:     iface,
		rxSource:  make(map[core.RxCounter]uint64),
		txSource:  make(map[core.TxCounter]uint64),
		rxValues:  make(map[core.RxCounter]uint64),
		txValues:  make(map[core.TxCounter]uint64),
		rxTracked: make(map[core.RxCounter]bool),
		txTracked: make(map[core.TxCounter]bool),
	}
}

// SetRxValue seeds the source value a tracked receive counter will show
// after the next update.
func (m *MockMonitor) SetRxValue(kind core.RxCounter, value uint64) {
	m.rxSource[kind] = value
}

// SetTxValue seeds the source value a tracked transmit counter will show
// after the next update.
func (m *MockMonitor) SetTxValue(kind core.TxCounter, value uint64) {
	m.txSource[kind] = value
}

// UpdateCount returns how many full Update calls have completed.
func (m *MockMonitor) UpdateCount() int {
	return m.updateCount
}

// Interface returns the name of the mock interface.
func (m *MockMonitor) Interface() string {
	return m.iface
}

// SubscribeReceive marks the given receive counters as tracked.
func (m *MockMonitor) SubscribeReceive(kinds ...core.RxCounter) error {
	if m.closed {
		return ErrMonitorClosed
	}
	for _, kind := range kinds {
		m.rxTracked[kind] = true
	}
	return nil
}

// SubscribeTransmit marks the given transmit counters as tracked.
func (m *MockMonitor) SubscribeTransmit(kinds ...core.TxCounter) error {
	if m.closed {
		return ErrMonitorClosed
	}
	for _, kind := range kinds {
		m.txTracked[kind] = true
	}
	return nil
}

// Update copies seeded source values into the snapshot state for every
// tracked counter.
func (m *MockMonitor) Update() error {
	if err := m.UpdateReceive(); err != nil {
		return err
	}
	if err := m.UpdateTransmit(); err != nil {
		return err
	}
	m.updateCount++
	return nil
}

// UpdateReceive copies seeded receive values for tracked kinds.
func (m *MockMonitor) UpdateReceive() error {
	if m.closed {
		return ErrMonitorClosed
	}
	if m.UpdateErr != nil {
		m.metrics.ReadFailures++
		return m.UpdateErr
	}
	for kind := range m.rxTracked {
		m.rxValues[kind] = m.rxSource[kind]
		m.metrics.CountersRead++
	}
	m.metrics.Updates++
	return nil
}

// UpdateTransmit copies seeded transmit values for tracked kinds.
func (m *MockMonitor) UpdateTransmit() error {
	if m.closed {
		return ErrMonitorClosed
	}
	if m.UpdateErr != nil {
		m.metrics.ReadFailures++
		return m.UpdateErr
	}
	for kind := range m.txTracked {
		m.txValues[kind] = m.txSource[kind]
		m.metrics.CountersRead++
	}
	m.metrics.Updates++
	return nil
}

// Metrics returns operation metrics mirroring the mock's update calls.
func (m *MockMonitor) Metrics() core.MonitorMetrics {
	return m.metrics
}

// ReceiveSnapshot returns the mock receive values, zero for untracked kinds.
func (m *MockMonitor) ReceiveSnapshot() core.ReceiveStats {
	return core.ReceiveStats{
		Bytes:        m.rxValues[core.RxBytes],
		Compressed:   m.rxValues[core.RxCompressed],
		CRCErrors:    m.rxValues[core.RxCRCErrors],
		Dropped:      m.rxValues[core.RxDropped],
		Errors:       m.rxValues[core.RxErrors],
		FIFOErrors:   m.rxValues[core.RxFIFOErrors],
		FrameErrors:  m.rxValues[core.RxFrameErrors],
		LengthErrors: m.rxValues[core.RxLengthErrors],
		MissedErrors: m.rxValues[core.RxMissedErrors],
		OverErrors:   m.rxValues[core.RxOverErrors],
		Packets:      m.rxValues[core.RxPackets],
	}
}

// TransmitSnapshot returns the mock transmit values, zero for untracked kinds.
func (m *MockMonitor) TransmitSnapshot() core.TransmitStats {
	return core.TransmitStats{
		AbortedErrors:   m.txValues[core.TxAbortedErrors],
		Bytes:           m.txValues[core.TxBytes],
		CarrierErrors:   m.txValues[core.TxCarrierErrors],
		Compressed:      m.txValues[core.TxCompressed],
		Dropped:         m.txValues[core.TxDropped],
		Errors:          m.txValues[core.TxErrors],
		FIFOErrors:      m.txValues[core.TxFIFOErrors],
		HeartbeatErrors: m.txValues[core.TxHeartbeatErrors],
		Packets:         m.txValues[core.TxPackets],
		WindowErrors:    m.txValues[core.TxWindowErrors],
	}
}

// RxBytes returns the mock rx_bytes value.
func (m *MockMonitor) RxBytes() uint64 {
	return m.rxValues[core.RxBytes]
}

// RxPackets returns the mock rx_packets value.
func (m *MockMonitor) RxPackets() uint64 {
	return m.rxValues[core.RxPackets]
}

// TxBytes returns the mock tx_bytes value.
func (m *MockMonitor) TxBytes() uint64 {
	return m.txValues[core.TxBytes]
}

// TxPackets returns the mock tx_packets value.
func (m *MockMonitor) TxPackets() uint64 {
	return m.txValues[core.TxPackets]
}

// Close marks the mock closed.
func (m *MockMonitor) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	return m.CloseErr
}
