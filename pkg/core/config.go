package core

// MonitorConfig contains configuration for a network interface monitor.
type MonitorConfig struct {
	// Interface is the name of the network interface to monitor.
	Interface string `json:"interface" yaml:"interface"`

	// SysfsRoot overrides the directory interfaces are looked up under.
	// Empty means the platform default (/sys/class/net).
	SysfsRoot string `json:"sysfs_root" yaml:"sysfsRoot"`

	// ReceiveCounters lists the receive counters to track, by statistics
	// file name (e.g. "rx_bytes", "rx_packets").
	ReceiveCounters []string `json:"receive_counters" yaml:"receiveCounters"`

	// TransmitCounters lists the transmit counters to track, by statistics
	// file name (e.g. "tx_bytes", "tx_packets").
	TransmitCounters []string `json:"transmit_counters" yaml:"transmitCounters"`

	// Debug enables debug logging.
	Debug bool `json:"debug" yaml:"debug"`
}
