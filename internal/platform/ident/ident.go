// Package ident generates external business keys for domain entities.
// Keys have the form <prefix><base36 millisecond timestamp><6 base36 chars>,
// upper-cased, e.g. PTLX2K81AB3F9K for a patient.
package ident

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// New returns a fresh business key for the given prefix. Uniqueness is only
// probabilistic; callers that need a guarantee use Unique.
func New(prefix string) string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)

	var b strings.Builder
	b.Grow(len(prefix) + len(ts) + 6)
	b.WriteString(prefix)
	b.WriteString(ts)

	rngMu.Lock()
	for i := 0; i < 6; i++ {
		b.WriteByte(base36[rng.Intn(len(base36))])
	}
	rngMu.Unlock()

	return strings.ToUpper(b.String())
}

// Unique generates keys until one passes the taken check. The random suffix
// makes more than a couple of rounds practically unreachable, but the loop
// closes the residual collision window when callers hold their store lock
// across the check.
func Unique(prefix string, taken func(string) bool) string {
	for {
		key := New(prefix)
		if !taken(key) {
			return key
		}
	}
}
