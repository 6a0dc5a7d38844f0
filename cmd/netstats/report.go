package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rcrocomb/network-interface-monitor/pkg/core"
	"github.com/rcrocomb/network-interface-monitor/pkg/logging"
)

// counterReport is one sample of the tracked counters in both directions,
// plus the change since the previous sample once there is one.
type counterReport struct {
	Timestamp string            `json:"ts"`
	Interface string            `json:"interface"`
	Sample    int               `json:"sample"`
	RX        map[string]uint64 `json:"rx"`
	TX        map[string]uint64 `json:"tx"`
	RXDelta   map[string]uint64 `json:"rx_delta,omitempty"`
	TXDelta   map[string]uint64 `json:"tx_delta,omitempty"`
}

// runSampler drives the monitor: one update per sample, a report after each.
// samples <= 0 means sample until interrupted.
func runSampler(mon core.NetworkMonitor, rx []core.RxCounter, tx []core.TxCounter, samples int, interval time.Duration, format string) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	defer func() {
		om := mon.Metrics()
		logging.Debugf("monitor: updates=%d reads=%d read_failures=%d parse_failures=%d",
			om.Updates, om.CountersRead, om.ReadFailures, om.ParseFailures)
	}()

	rxOrder := make([]string, len(rx))
	for i, kind := range rx {
		rxOrder[i] = kind.FileName()
	}
	txOrder := make([]string, len(tx))
	for i, kind := range tx {
		txOrder[i] = kind.FileName()
	}

	var prev *counterReport
	for taken := 0; samples <= 0 || taken < samples; taken++ {
		if taken > 0 {
			select {
			case <-stop:
				logging.Infof("Interrupted after %d samples", taken)
				return nil
			case <-time.After(interval):
			}
		}

		if err := mon.Update(); err != nil {
			return err
		}

		rep := buildReport(mon, rx, tx, taken+1)
		if prev != nil {
			rep.RXDelta = deltaMap(rep.RX, prev.RX)
			rep.TXDelta = deltaMap(rep.TX, prev.TX)
		}
		emitReport(rep, rxOrder, txOrder, format)
		prev = &rep
	}
	return nil
}

// buildReport copies the tracked counter values out of the snapshots.
func buildReport(mon core.NetworkMonitor, rx []core.RxCounter, tx []core.TxCounter, sample int) counterReport {
	rxSnap := mon.ReceiveSnapshot()
	txSnap := mon.TransmitSnapshot()

	rep := counterReport{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Interface: mon.Interface(),
		Sample:    sample,
		RX:        make(map[string]uint64, len(rx)),
		TX:        make(map[string]uint64, len(tx)),
	}
	for _, kind := range rx {
		rep.RX[kind.FileName()] = rxSnap.Counter(kind)
	}
	for _, kind := range tx {
		rep.TX[kind.FileName()] = txSnap.Counter(kind)
	}
	return rep
}

// deltaMap returns cur minus prev per counter. Counters are monotonic, so the
// unsigned subtraction only wraps if the kernel resets one underneath us.
func deltaMap(cur, prev map[string]uint64) map[string]uint64 {
	out := make(map[string]uint64, len(cur))
	for name, v := range cur {
		out[name] = v - prev[name]
	}
	return out
}

func emitReport(rep counterReport, rxOrder, txOrder []string, format string) {
	switch format {
	case "json":
		b, _ := json.Marshal(rep)
		logging.Infof("stats: %s", string(b))
	default:
		line := fmt.Sprintf("stats: ts=%s iface=%s n=%d | rx: %s | tx: %s",
			rep.Timestamp, rep.Interface, rep.Sample,
			formatCounters(rep.RX, rxOrder), formatCounters(rep.TX, txOrder))
		if rep.RXDelta != nil || rep.TXDelta != nil {
			line += fmt.Sprintf(" | drx: %s | dtx: %s",
				formatCounters(rep.RXDelta, rxOrder), formatCounters(rep.TXDelta, txOrder))
		}
		logging.Infof("%s", line)
	}
}

// formatCounters renders name=value pairs in a stable order.
func formatCounters(values map[string]uint64, order []string) string {
	parts := make([]string, 0, len(order))
	for _, name := range order {
		parts = append(parts, fmt.Sprintf("%s=%d", name, values[name]))
	}
	return strings.Join(parts, " ")
}
