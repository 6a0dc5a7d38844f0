package netstats

// Config contains configuration for a Monitor
type Config struct {
	// Name of the network interface whose counters are read
	Interface string

	// Directory interfaces are looked up under. An override here lets
	// tests point the monitor at a fabricated tree.
	SysfsRoot string
}

// DefaultConfig returns the default configuration for a Monitor
func DefaultConfig() Config {
	return Config{
		Interface: "eth0",
		SysfsRoot: "/sys/class/net",
	}
}
