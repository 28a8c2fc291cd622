/*

This file contains the in-memory snapshot store. Each refresh cycle publishes
a complete pool set as a new snapshot; readers always see the latest fully
published snapshot and never a partially updated one.

*/

package state

import (
	"sync"
	"time"

	"github.com/clementfrmd/safeyield/internal/types"
)

// Summary holds the aggregate statistics over one snapshot's pool set.
type Summary struct {
	TotalTvlUSD      float64 `json:"total_tvl_usd"`
	AvgAPY           float64 `json:"avg_apy"`
	AvgSecurityScore float64 `json:"avg_security_score"`
	PoolCount        int     `json:"pool_count"`
	ProtocolCount    int     `json:"protocol_count"`
	ChainCount       int     `json:"chain_count"`
}

// Snapshot is one complete published pool set.
type Snapshot struct {
	CycleNumber uint64       `json:"cycle_number"`
	CycleID     string       `json:"cycle_id"`
	Timestamp   time.Time    `json:"timestamp"`
	Pools       []types.Pool `json:"pools"`
	Summary     Summary      `json:"summary"`
}

// SnapshotStore holds the latest snapshot behind a read-write lock.
type SnapshotStore struct {
	mu      sync.RWMutex
	current *Snapshot
	cycles  uint64
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Publish replaces the current snapshot wholesale with the given pool set.
// Pools absent from the new set are gone after this call.
func (s *SnapshotStore) Publish(cycleID string, pools []types.Pool) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cycles++
	snapshot := Snapshot{
		CycleNumber: s.cycles,
		CycleID:     cycleID,
		Timestamp:   time.Now().UTC(),
		Pools:       pools,
		Summary:     BuildSummary(pools),
	}
	s.current = &snapshot
	return snapshot
}

// Latest returns the most recently published snapshot. The second return
// value is false until the first cycle has published.
func (s *SnapshotStore) Latest() (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return Snapshot{}, false
	}
	return *s.current, true
}

// CurrentCycle returns the number of cycles published so far.
func (s *SnapshotStore) CurrentCycle() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cycles
}

// BuildSummary computes the aggregate statistics for a pool set.
func BuildSummary(pools []types.Pool) Summary {
	summary := Summary{PoolCount: len(pools)}
	if len(pools) == 0 {
		return summary
	}

	protocols := make(map[string]struct{})
	chains := make(map[string]struct{})
	for _, pool := range pools {
		summary.TotalTvlUSD += pool.TvlUSD
		summary.AvgAPY += pool.APY
		summary.AvgSecurityScore += pool.SecurityScore
		protocols[pool.Protocol] = struct{}{}
		chains[pool.Chain] = struct{}{}
	}
	summary.AvgAPY /= float64(len(pools))
	summary.AvgSecurityScore /= float64(len(pools))
	summary.ProtocolCount = len(protocols)
	summary.ChainCount = len(chains)
	return summary
}
