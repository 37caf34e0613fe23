// Package observability aggregates submission counters and process
// stats for the debug endpoint. Counters are atomics so the debug
// handler never blocks ingestion.
package observability

import (
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Stats is the JSON snapshot served on /debug/stats.
type Stats struct {
	Accepted          uint64  `json:"accepted"`
	RejectedInvalid   uint64  `json:"rejected_invalid"`
	RejectedBlocklist uint64  `json:"rejected_blocklist"`
	RejectedRateLimit uint64  `json:"rejected_rate_limit"`
	RejectedVerdict   uint64  `json:"rejected_verdict"`
	ClassifierErrors  uint64  `json:"classifier_errors"`
	StoreErrors       uint64  `json:"store_errors"`
	StoredTotal       int     `json:"stored_total"`
	AllocMemMb        uint64  `json:"alloc_mem_mb"`
	NumGC             uint32  `json:"num_gc"`
	CPUPercent        float64 `json:"cpu_percent"`
	RSSMb             uint64  `json:"rss_mb"`
	UptimeSeconds     int64   `json:"uptime_seconds"`
}

// Monitor collects ingestion telemetry in real time.
type Monitor struct {
	log     *slog.Logger
	proc    *process.Process
	started time.Time

	accepted          uint64
	rejectedInvalid   uint64
	rejectedBlocklist uint64
	rejectedRateLimit uint64
	rejectedVerdict   uint64
	classifierErrors  uint64
	storeErrors       uint64
}

func NewMonitor(log *slog.Logger) *Monitor {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Warn("Process stats unavailable", "error", err)
	}
	return &Monitor{log: log, proc: proc, started: time.Now()}
}

func (m *Monitor) Accepted()          { atomic.AddUint64(&m.accepted, 1) }
func (m *Monitor) RejectedInvalid()   { atomic.AddUint64(&m.rejectedInvalid, 1) }
func (m *Monitor) RejectedBlocklist() { atomic.AddUint64(&m.rejectedBlocklist, 1) }
func (m *Monitor) RejectedRateLimit() { atomic.AddUint64(&m.rejectedRateLimit, 1) }
func (m *Monitor) RejectedVerdict()   { atomic.AddUint64(&m.rejectedVerdict, 1) }
func (m *Monitor) ClassifierError()   { atomic.AddUint64(&m.classifierErrors, 1) }
func (m *Monitor) StoreError()        { atomic.AddUint64(&m.storeErrors, 1) }

// Snapshot builds the current stats view. storedTotal is supplied by
// the caller because the store count lives in the repository.
func (m *Monitor) Snapshot(storedTotal int) Stats {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	stats := Stats{
		Accepted:          atomic.LoadUint64(&m.accepted),
		RejectedInvalid:   atomic.LoadUint64(&m.rejectedInvalid),
		RejectedBlocklist: atomic.LoadUint64(&m.rejectedBlocklist),
		RejectedRateLimit: atomic.LoadUint64(&m.rejectedRateLimit),
		RejectedVerdict:   atomic.LoadUint64(&m.rejectedVerdict),
		ClassifierErrors:  atomic.LoadUint64(&m.classifierErrors),
		StoreErrors:       atomic.LoadUint64(&m.storeErrors),
		StoredTotal:       storedTotal,
		AllocMemMb:        memStats.Alloc / 1024 / 1024,
		NumGC:             memStats.NumGC,
		UptimeSeconds:     int64(time.Since(m.started).Seconds()),
	}

	if m.proc != nil {
		if cpu, err := m.proc.CPUPercent(); err == nil {
			stats.CPUPercent = cpu
		}
		if mem, err := m.proc.MemoryInfo(); err == nil {
			stats.RSSMb = mem.RSS / 1024 / 1024
		}
	}
	return stats
}
