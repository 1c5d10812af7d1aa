package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Ping checks that the pool is initialized and responsive within 5 seconds
func (db *PostgresDB) Ping(ctx context.Context) error {
	pool := db.Pool()
	if pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// Close shuts the pool down. Safe to call more than once and before Dial.
func (db *PostgresDB) Close() error {
	pool := db.pool.Swap(nil)
	if pool == nil {
		log.Debug().Msg("[DATABASE] Pool is already closed or was never initialized")
		return nil
	}

	log.Info().Msg("[DATABASE] Closing database connection pool...")
	pool.Close()
	log.Info().Msg("[DATABASE] Connection pool closed successfully")

	return nil
}

// PoolStats is a snapshot of pool counters used for monitoring
type PoolStats struct {
	AcquireCount         int64
	AcquireDuration      time.Duration
	AcquiredConns        int32
	CanceledAcquireCount int64
	ConstructingConns    int32
	EmptyAcquireCount    int64
	IdleConns            int32
	MaxConns             int32
	TotalConns           int32
	NewConnsCount        int64
}

// Stats returns a snapshot of the pool statistics
func (db *PostgresDB) Stats() (*PoolStats, error) {
	pool := db.Pool()
	if pool == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}

	raw := pool.Stat()
	return &PoolStats{
		AcquiredConns:        raw.AcquiredConns(),
		ConstructingConns:    raw.ConstructingConns(),
		IdleConns:            raw.IdleConns(),
		TotalConns:           raw.TotalConns(),
		MaxConns:             raw.MaxConns(),
		AcquireCount:         raw.AcquireCount(),
		AcquireDuration:      raw.AcquireDuration(),
		CanceledAcquireCount: raw.CanceledAcquireCount(),
		EmptyAcquireCount:    raw.EmptyAcquireCount(),
		NewConnsCount:        raw.NewConnsCount(),
	}, nil
}

// AvgAcquireDuration is the mean time spent waiting for a pooled connection
func (s *PoolStats) AvgAcquireDuration() time.Duration {
	return calculateAvgDuration(s.AcquireDuration, s.AcquireCount)
}

func calculateAvgDuration(totalDuration time.Duration, count int64) time.Duration {
	if count == 0 {
		return 0
	}
	return totalDuration / time.Duration(count)
}

// MonitorPoolHealth logs pool pressure every interval until ctx is done.
// Ticks before the pool exists are skipped quietly.
func (db *PostgresDB) MonitorPoolHealth(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if db.Pool() == nil {
				continue
			}
			stats, err := db.Stats()
			if err != nil {
				log.Warn().Err(err).Msg("[MONITOR] Failed to get stats")
				continue
			}

			if stats.MaxConns > 0 {
				utilizationPct := float64(stats.AcquiredConns) / float64(stats.MaxConns) * 100
				if utilizationPct > 80 {
					log.Warn().
						Float64("utilization_pct", utilizationPct).
						Int32("acquired", stats.AcquiredConns).
						Int32("max", stats.MaxConns).
						Msg("[MONITOR] High pool utilization")
				}
			}

			if avg := stats.AvgAcquireDuration(); avg > 100*time.Millisecond {
				log.Warn().Dur("avg_acquire", avg).Msg("[MONITOR] High acquire latency")
			}

		case <-ctx.Done():
			log.Info().Msg("[MONITOR] Stopping pool health monitoring")
			return
		}
	}
}
