package netstats

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rcrocomb/network-interface-monitor/pkg/core"
	"github.com/rcrocomb/network-interface-monitor/pkg/logging"
)

// readSize bounds a single read from any statistics file. This is far more
// than any real counter needs, so a read that fills the whole buffer is
// treated as malformed input rather than truncated.
const readSize = 32

// statsDir is the directory under an interface's sysfs entry that holds one
// file per counter.
const statsDir = "statistics"

var log = logging.Component("netstats")

// Monitor reads the statistics counters of one network interface. It opens a
// read handle per subscribed counter once and re-reads the handles on update.
// It implements core.NetworkMonitor.
//
// A Monitor owns open OS handles and must not be copied; go vet flags copies.
// It is not safe for concurrent use.
type Monitor struct {
	noCopy noCopy

	iface     string
	statsPath string

	// Tracked counters, keyed by kind. Entries exist only for kinds the
	// caller subscribed to, and the set never shrinks while the monitor
	// lives.
	rxTracked map[core.RxCounter]*trackedCounter
	txTracked map[core.TxCounter]*trackedCounter

	// openStat opens one statistics file. Tests substitute this to hand
	// out fake handles.
	openStat func(path string) (io.ReadSeekCloser, error)

	metrics core.MonitorMetrics
	closed  bool
}

// Ensure Monitor implements the monitor contract
var _ core.NetworkMonitor = (*Monitor)(nil)

// trackedCounter pairs the open handle of one statistics file with the value
// most recently read from it.
type trackedCounter struct {
	path  string
	file  io.ReadSeekCloser
	value uint64
}

// noCopy makes go vet's copylocks check reject copies of the enclosing type.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

func openStatFile(path string) (io.ReadSeekCloser, error) {
	return os.Open(path)
}

// NewMonitor resolves the statistics directory for the configured interface
// and verifies the interface exists. No counter files are opened here; the
// caller picks counters via SubscribeReceive and SubscribeTransmit first.
func NewMonitor(cfg Config) (*Monitor, error) {
	defaults := DefaultConfig()
	if cfg.Interface == "" {
		cfg.Interface = defaults.Interface
	}
	if cfg.SysfsRoot == "" {
		cfg.SysfsRoot = defaults.SysfsRoot
	}

	ifacePath := filepath.Join(cfg.SysfsRoot, cfg.Interface)
	fi, err := os.Stat(ifacePath)
	if err != nil {
		return nil, fmt.Errorf("interface %q: cannot access %q: %w: %w",
			cfg.Interface, ifacePath, ErrInterfaceNotFound, err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("interface %q: %q is not a directory: %w",
			cfg.Interface, ifacePath, ErrInterfaceNotFound)
	}

	m := &Monitor{
		iface:     cfg.Interface,
		statsPath: filepath.Join(ifacePath, statsDir),
		rxTracked: make(map[core.RxCounter]*trackedCounter),
		txTracked: make(map[core.TxCounter]*trackedCounter),
		openStat:  openStatFile,
	}
	log.Debugf("interface %q stats path is %q", m.iface, m.statsPath)
	return m, nil
}

// Interface returns the name of the monitored network interface.
func (m *Monitor) Interface() string {
	return m.iface
}

// SubscribeReceive opens a read handle for each receive counter not already
// tracked. Kinds already tracked are skipped without error. An open failure
// aborts the call and leaves that kind untracked.
func (m *Monitor) SubscribeReceive(kinds ...core.RxCounter) error {
	if m.closed {
		return ErrMonitorClosed
	}
	for _, kind := range kinds {
		if _, ok := m.rxTracked[kind]; ok {
			log.Debugf("for %s: already monitoring, ignoring request", kind)
			continue
		}
		name := kind.FileName()
		if name == "" {
			return fmt.Errorf("unknown receive counter kind %d", int(kind))
		}

		path := filepath.Join(m.statsPath, name)
		log.Debugf("for %s: opening stats file %q", kind, path)
		file, err := m.openStat(path)
		if err != nil {
			return fmt.Errorf("for %s: opening stats file %q: %w: %w",
				kind, path, ErrStatIO, err)
		}
		log.Debugf("for %s: now tracking", kind)
		m.rxTracked[kind] = &trackedCounter{path: path, file: file}
	}
	return nil
}

// SubscribeTransmit is the transmit-side counterpart of SubscribeReceive.
func (m *Monitor) SubscribeTransmit(kinds ...core.TxCounter) error {
	if m.closed {
		return ErrMonitorClosed
	}
	for _, kind := range kinds {
		if _, ok := m.txTracked[kind]; ok {
			log.Debugf("for %s: already monitoring, ignoring request", kind)
			continue
		}
		name := kind.FileName()
		if name == "" {
			return fmt.Errorf("unknown transmit counter kind %d", int(kind))
		}

		path := filepath.Join(m.statsPath, name)
		log.Debugf("for %s: opening stats file %q", kind, path)
		file, err := m.openStat(path)
		if err != nil {
			return fmt.Errorf("for %s: opening stats file %q: %w: %w",
				kind, path, ErrStatIO, err)
		}
		log.Debugf("for %s: now tracking", kind)
		m.txTracked[kind] = &trackedCounter{path: path, file: file}
	}
	return nil
}

// Update re-reads every tracked counter in both directions and overwrites the
// cached values. A failure reading any one counter aborts the whole call; the
// caller may retry by calling Update again.
func (m *Monitor) Update() error {
	if err := m.UpdateReceive(); err != nil {
		return err
	}
	return m.UpdateTransmit()
}

// UpdateReceive re-reads only the tracked receive counters.
func (m *Monitor) UpdateReceive() error {
	if m.closed {
		return ErrMonitorClosed
	}
	for kind, tracked := range m.rxTracked {
		value, err := readCounter(tracked.file)
		if err != nil {
			m.countReadFailure(err)
			return fmt.Errorf("for %s: reading %q: %w", kind, tracked.path, err)
		}
		m.metrics.CountersRead++
		tracked.value = value
	}
	m.metrics.Updates++
	return nil
}

// UpdateTransmit re-reads only the tracked transmit counters.
func (m *Monitor) UpdateTransmit() error {
	if m.closed {
		return ErrMonitorClosed
	}
	for kind, tracked := range m.txTracked {
		value, err := readCounter(tracked.file)
		if err != nil {
			m.countReadFailure(err)
			return fmt.Errorf("for %s: reading %q: %w", kind, tracked.path, err)
		}
		m.metrics.CountersRead++
		tracked.value = value
	}
	m.metrics.Updates++
	return nil
}

// Metrics returns operation metrics for the monitor.
func (m *Monitor) Metrics() core.MonitorMetrics {
	return m.metrics
}

func (m *Monitor) countReadFailure(err error) {
	if errors.Is(err, ErrBadStatValue) {
		m.metrics.ParseFailures++
		return
	}
	m.metrics.ReadFailures++
}

// readCounter pulls the current value from an open statistics file. The
// handle is rewound first: handles are reused across calls, never reopened.
func readCounter(file io.ReadSeekCloser) (uint64, error) {
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("%w: seek: %w", ErrStatIO, err)
	}

	buf := make([]byte, readSize)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("%w: read: %w", ErrStatIO, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: read %d bytes", ErrStatIO, n)
	}
	if n == readSize {
		return 0, fmt.Errorf("%w: read filled all %d bytes", ErrBadStatValue, readSize)
	}

	return parseCounterValue(buf[:n])
}

// parseCounterValue converts the ASCII content of a statistics file into a
// number. Parsing stops at the first non-digit byte, typically the trailing
// newline; content with no leading digits is rejected.
func parseCounterValue(buf []byte) (uint64, error) {
	digits := 0
	for digits < len(buf) && buf[digits] >= '0' && buf[digits] <= '9' {
		digits++
	}
	if digits == 0 {
		return 0, fmt.Errorf("%w: %q is not a decimal counter", ErrBadStatValue, string(buf))
	}

	value, err := strconv.ParseUint(string(buf[:digits]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrBadStatValue, string(buf), err)
	}
	return value, nil
}

// Close releases every open counter handle. Every handle is attempted even if
// some closes fail; failures are logged and returned joined. Further
// subscribe and update calls fail with ErrMonitorClosed, while snapshots keep
// serving the last cached values.
func (m *Monitor) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	log.Debugf("shutting down monitor for %q", m.iface)

	var errs []error
	for kind, tracked := range m.rxTracked {
		if err := tracked.file.Close(); err != nil {
			log.Warnf("for %s: closing stats file %q: %v", kind, tracked.path, err)
			errs = append(errs, fmt.Errorf("for %s: close %q: %w", kind, tracked.path, err))
		}
	}
	for kind, tracked := range m.txTracked {
		if err := tracked.file.Close(); err != nil {
			log.Warnf("for %s: closing stats file %q: %v", kind, tracked.path, err)
			errs = append(errs, fmt.Errorf("for %s: close %q: %w", kind, tracked.path, err))
		}
	}
	return errors.Join(errs...)
}
