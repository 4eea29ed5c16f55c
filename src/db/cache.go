package db

import (
	"fmt"
	"log"

	"github.com/dgraph-io/ristretto"
)

// Cache holds per-user dashboard and report payloads so the
// aggregation queries only rerun after a write. Keys are
// deterministic per user, so invalidation on write is a pair of
// deletes rather than a key registry.
var Cache *ristretto.Cache

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

func statsKey(userID int) string {
	return fmt.Sprintf("stats:%d", userID)
}

func reportKey(userID int) string {
	return fmt.Sprintf("report:%d", userID)
}

func GetStatsCache(userID int) (interface{}, bool) {
	if Cache == nil {
		return nil, false
	}
	return Cache.Get(statsKey(userID))
}

func SetStatsCache(userID int, value interface{}) {
	if Cache == nil {
		return
	}
	Cache.Set(statsKey(userID), value, 1)
	// Flush the set buffer so a later invalidation cannot race a
	// pending write and resurrect a stale payload.
	Cache.Wait()
}

func GetReportCache(userID int) (interface{}, bool) {
	if Cache == nil {
		return nil, false
	}
	return Cache.Get(reportKey(userID))
}

func SetReportCache(userID int, value interface{}) {
	if Cache == nil {
		return
	}
	Cache.Set(reportKey(userID), value, 1)
	Cache.Wait()
}

// InvalidateUser drops a user's cached aggregates. Called by every
// budget, expense and transaction write handler.
func InvalidateUser(userID int) {
	if Cache == nil {
		return
	}
	Cache.Del(statsKey(userID))
	Cache.Del(reportKey(userID))
}
