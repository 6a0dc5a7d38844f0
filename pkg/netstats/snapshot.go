package netstats

import (
	"github.com/rcrocomb/network-interface-monitor/pkg/core"
)

// fetchRx returns the cached value for one receive kind, zero if untracked.
// The value is not refreshed here; only the update calls touch the files.
func (m *Monitor) fetchRx(kind core.RxCounter) uint64 {
	if tracked, ok := m.rxTracked[kind]; ok {
		return tracked.value
	}
	return 0
}

// fetchTx returns the cached value for one transmit kind, zero if untracked.
func (m *Monitor) fetchTx(kind core.TxCounter) uint64 {
	if tracked, ok := m.txTracked[kind]; ok {
		return tracked.value
	}
	return 0
}

// ReceiveSnapshot returns the last-updated receive values with zero filling
// every kind that was never subscribed to. No I/O is performed.
func (m *Monitor) ReceiveSnapshot() core.ReceiveStats {
	return core.ReceiveStats{
		Bytes:        m.fetchRx(core.RxBytes),
		Compressed:   m.fetchRx(core.RxCompressed),
		CRCErrors:    m.fetchRx(core.RxCRCErrors),
		Dropped:      m.fetchRx(core.RxDropped),
		Errors:       m.fetchRx(core.RxErrors),
		FIFOErrors:   m.fetchRx(core.RxFIFOErrors),
		FrameErrors:  m.fetchRx(core.RxFrameErrors),
		LengthErrors: m.fetchRx(core.RxLengthErrors),
		MissedErrors: m.fetchRx(core.RxMissedErrors),
		OverErrors:   m.fetchRx(core.RxOverErrors),
		Packets:      m.fetchRx(core.RxPackets),
	}
}

// TransmitSnapshot returns the last-updated transmit values with zero filling
// every kind that was never subscribed to. No I/O is performed.
func (m *Monitor) TransmitSnapshot() core.TransmitStats {
	return core.TransmitStats{
		AbortedErrors:   m.fetchTx(core.TxAbortedErrors),
		Bytes:           m.fetchTx(core.TxBytes),
		CarrierErrors:   m.fetchTx(core.TxCarrierErrors),
		Compressed:      m.fetchTx(core.TxCompressed),
		Dropped:         m.fetchTx(core.TxDropped),
		Errors:          m.fetchTx(core.TxErrors),
		FIFOErrors:      m.fetchTx(core.TxFIFOErrors),
		HeartbeatErrors: m.fetchTx(core.TxHeartbeatErrors),
		Packets:         m.fetchTx(core.TxPackets),
		WindowErrors:    m.fetchTx(core.TxWindowErrors),
	}
}

// RxBytes returns the cached rx_bytes value, zero if untracked.
func (m *Monitor) RxBytes() uint64 {
	return m.fetchRx(core.RxBytes)
}

// RxPackets returns the cached rx_packets value, zero if untracked.
func (m *Monitor) RxPackets() uint64 {
	return m.fetchRx(core.RxPackets)
}

// TxBytes returns the cached tx_bytes value, zero if untracked.
func (m *Monitor) TxBytes() uint64 {
	return m.fetchTx(core.TxBytes)
}

// TxPackets returns the cached tx_packets value, zero if untracked.
func (m *Monitor) TxPackets() uint64 {
	return m.fetchTx(core.TxPackets)
}
