package observability

import (
	"log/slog"
	"sync"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestMonitor_CountersLandInSnapshot(t *testing.T) {
	req := require.New(t)
	monitor := NewMonitor(logs.GetLoggerFromLevel(slog.LevelDebug))

	monitor.Accepted()
	monitor.Accepted()
	monitor.RejectedRateLimit()
	monitor.ClassifierError()

	stats := monitor.Snapshot(42)
	req.Equal(uint64(2), stats.Accepted)
	req.Equal(uint64(1), stats.RejectedRateLimit)
	req.Equal(uint64(1), stats.ClassifierErrors)
	req.Zero(stats.StoreErrors)
	req.Equal(42, stats.StoredTotal)
}

func TestMonitor_ConcurrentCountingAndSnapshot(t *testing.T) {
	req := require.New(t)
	monitor := NewMonitor(logs.GetLoggerFromLevel(slog.LevelDebug))

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			monitor.Accepted()
			monitor.RejectedVerdict()
		}()
		go func() {
			defer wg.Done()
			_ = monitor.Snapshot(0)
		}()
	}
	wg.Wait()

	stats := monitor.Snapshot(0)
	req.Equal(uint64(50), stats.Accepted)
	req.Equal(uint64(50), stats.RejectedVerdict)
}
