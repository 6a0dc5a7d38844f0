// netstats samples receive and transmit counters for one network interface
// from the sysfs statistics tree and reports them as text or JSON.
package main

import (
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rcrocomb/network-interface-monitor/pkg/config"
	"github.com/rcrocomb/network-interface-monitor/pkg/core"
	"github.com/rcrocomb/network-interface-monitor/pkg/logging"
	"github.com/rcrocomb/network-interface-monitor/pkg/netstats"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON or YAML config file")
	iface := flag.String("i", "", "network interface to monitor")
	rxNames := flag.String("rx", "", "comma-separated receive counters, or 'all'")
	txNames := flag.String("tx", "", "comma-separated transmit counters, or 'all'")
	samples := flag.Int("n", 1, "number of samples to take (0 = until interrupted)")
	interval := flag.Duration("interval", 5*time.Second, "delay between samples")
	format := flag.String("format", "text", "report format: text or json")
	writeConfig := flag.String("write-config", "", "write the effective config to this path and exit")
	flag.Parse()

	// A .env file supplies environment overrides when present.
	_ = godotenv.Load()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		if err := config.LoadFromFile(*configPath, cfg); err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	config.LoadFromEnv(cfg)

	// Flags win over the file and the environment.
	if *iface != "" {
		cfg.Monitor.Interface = *iface
	}
	if *rxNames != "" {
		cfg.Monitor.ReceiveCounters = counterList(*rxNames, receiveNames())
	}
	if *txNames != "" {
		cfg.Monitor.TransmitCounters = counterList(*txNames, transmitNames())
	}

	// Debug logging toggle via DEBUG env (truthy parser)
	dval := strings.ToLower(strings.TrimSpace(os.Getenv("DEBUG")))
	if dval == "1" || dval == "true" || dval == "yes" || dval == "on" {
		cfg.Monitor.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.ApplyLogging(); err != nil {
		log.Fatalf("logging: %v", err)
	}

	if *writeConfig != "" {
		if err := cfg.SaveToFile(*writeConfig); err != nil {
			log.Fatalf("write config: %v", err)
		}
		logging.Infof("Wrote configuration to %s", *writeConfig)
		return
	}

	rx, tx, err := resolveCounters(cfg.Monitor.ReceiveCounters, cfg.Monitor.TransmitCounters)
	if err != nil {
		log.Fatalf("counters: %v", err)
	}

	mon, err := netstats.NewMonitor(netstats.Config{
		Interface: cfg.Monitor.Interface,
		SysfsRoot: cfg.Monitor.SysfsRoot,
	})
	if err != nil {
		log.Fatalf("monitor: %v", err)
	}
	defer mon.Close()

	if err := mon.SubscribeReceive(rx...); err != nil {
		log.Fatalf("subscribe: %v", err)
	}
	if err := mon.SubscribeTransmit(tx...); err != nil {
		log.Fatalf("subscribe: %v", err)
	}

	logging.Infof("Monitoring %s: %d receive and %d transmit counters",
		mon.Interface(), len(rx), len(tx))

	if err := runSampler(mon, rx, tx, *samples, *interval, *format); err != nil {
		mon.Close()
		log.Fatalf("sample: %v", err)
	}
}

// counterList expands a -rx/-tx flag value into counter names.
func counterList(val string, all []string) []string {
	if strings.EqualFold(strings.TrimSpace(val), "all") {
		return all
	}
	parts := strings.Split(val, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func receiveNames() []string {
	kinds := core.AllRxCounters()
	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = kind.FileName()
	}
	return names
}

func transmitNames() []string {
	kinds := core.AllTxCounters()
	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = kind.FileName()
	}
	return names
}

// resolveCounters converts configured counter names into kinds.
func resolveCounters(rxNames, txNames []string) ([]core.RxCounter, []core.TxCounter, error) {
	rx := make([]core.RxCounter, 0, len(rxNames))
	for _, name := range rxNames {
		kind, err := core.ParseRxCounter(name)
		if err != nil {
			return nil, nil, err
		}
		rx = append(rx, kind)
	}
	tx := make([]core.TxCounter, 0, len(txNames))
	for _, name := range txNames {
		kind, err := core.ParseTxCounter(name)
		if err != nil {
			return nil, nil, err
		}
		tx = append(tx, kind)
	}
	return rx, tx, nil
}
