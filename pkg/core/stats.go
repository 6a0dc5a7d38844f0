package core

// ReceiveStats aggregates the receive-side counter values of one interface.
// Counter kinds the monitor was never subscribed to read as zero.
type ReceiveStats struct {
	// Bytes is the total number of bytes received.
	Bytes uint64

	// Compressed is the number of compressed packets received.
	Compressed uint64

	// CRCErrors is the number of frames received with a CRC error.
	CRCErrors uint64

	// Dropped is the number of packets dropped by the device.
	Dropped uint64

	// Errors is the total number of receive errors.
	Errors uint64

	// FIFOErrors is the number of receive FIFO overruns.
	FIFOErrors uint64

	// FrameErrors is the number of frame alignment errors.
	FrameErrors uint64

	// LengthErrors is the number of frames with a bad length.
	LengthErrors uint64

	// MissedErrors is the number of frames missed for lack of buffers.
	MissedErrors uint64

	// OverErrors is the number of receive ring overflows.
	OverErrors uint64

	// Packets is the total number of packets received.
	Packets uint64
}

// Counter returns the value recorded for one receive counter kind.
func (s ReceiveStats) Counter(kind RxCounter) uint64 {
	switch kind {
	case RxBytes:
		return s.Bytes
	case RxCompressed:
		return s.Compressed
	case RxCRCErrors:
		return s.CRCErrors
	case RxDropped:
		return s.Dropped
	case RxErrors:
		return s.Errors
	case RxFIFOErrors:
		return s.FIFOErrors
	case RxFrameErrors:
		return s.FrameErrors
	case RxLengthErrors:
		return s.LengthErrors
	case RxMissedErrors:
		return s.MissedErrors
	case RxOverErrors:
		return s.OverErrors
	case RxPackets:
		return s.Packets
	}
	return 0
}

// TransmitStats aggregates the transmit-side counter values of one interface.
// Counter kinds the monitor was never subscribed to read as zero.
type TransmitStats struct {
	// AbortedErrors is the number of transmits aborted by the device.
	AbortedErrors uint64

	// Bytes is the total number of bytes transmitted.
	Bytes uint64

	// CarrierErrors is the number of transmits that lost carrier.
	CarrierErrors uint64

	// Compressed is the number of compressed packets transmitted.
	Compressed uint64

	// Dropped is the number of packets dropped on transmit.
	Dropped uint64

	// Errors is the total number of transmit errors.
	Errors uint64

	// FIFOErrors is the number of transmit FIFO underruns.
	FIFOErrors uint64

	// HeartbeatErrors is the number of heartbeat failures.
	HeartbeatErrors uint64

	// Packets is the total number of packets transmitted.
	Packets uint64

	// WindowErrors is the number of late-collision window errors.
	WindowErrors uint64
}

// Counter returns the value recorded for one transmit counter kind.
func (s TransmitStats) Counter(kind TxCounter) uint64 {
	switch kind {
	case TxAbortedErrors:
		return s.AbortedErrors
	case TxBytes:
		return s.Bytes
	case TxCarrierErrors:
		return s.CarrierErrors
	case TxCompressed:
		return s.Compressed
	case TxDropped:
		return s.Dropped
	case TxErrors:
		return s.Errors
	case TxFIFOErrors:
		return s.FIFOErrors
	case TxHeartbeatErrors:
		return s.HeartbeatErrors
	case TxPackets:
		return s.Packets
	case TxWindowErrors:
		return s.WindowErrors
	}
	return 0
}
