// file: internals/features/finance/billing/service/lock.go
package service

import (
	"fmt"
	"sync"
)

// periodLocks serialisasi generate/rollback per (month, year) dalam satu
// proses. Dua operator memicu generate periode yang sama → yang kedua
// ditolak, bukan balapan find-or-create. Lintas proses, unique index
// (client, month, year, type) di payments jadi jaring pengaman.
type periodLocks struct {
	mu   sync.Mutex
	held map[string]struct{}
}

var locks = &periodLocks{held: make(map[string]struct{})}

// AcquirePeriodLock coba kunci periode; false kalau run lain masih jalan.
func AcquirePeriodLock(p Period) bool {
	key := fmt.Sprintf("%04d-%02d", p.Year, p.Month)
	locks.mu.Lock()
	defer locks.mu.Unlock()
	if _, busy := locks.held[key]; busy {
		return false
	}
	locks.held[key] = struct{}{}
	return true
}

func ReleasePeriodLock(p Period) {
	key := fmt.Sprintf("%04d-%02d", p.Year, p.Month)
	locks.mu.Lock()
	defer locks.mu.Unlock()
	delete(locks.held, key)
}
