// Package suspects maps clue text to the suspect it incriminates.
//
// The ledger is a fixed-size hash table with separate chaining. The hash is the sum of the clue's bytes modulo the
// bucket count, so collisions are common and chains longer than one are expected. The table is filled once while a
// case is loaded and only read afterwards, which makes it safe to share between sessions without locking.
package suspects

import (
	"log/slog"
)

// DefaultBuckets is the bucket count of a ledger created with New.
const DefaultBuckets = 7

// Unknown is returned by Suspect for clues nobody registered.
const Unknown = "UNKNOWN"

// Association links a clue to a suspect.
type Association struct {
	Clue    string
	Suspect string
}

type entry struct {
	Association
	next *entry
}

type Ledger struct {
	buckets []*entry
	size    int
	logger  *slog.Logger
}

// New creates an empty ledger with DefaultBuckets buckets.
func New(logger *slog.Logger) *Ledger {
	return NewWithBuckets(DefaultBuckets, logger)
}

// NewWithBuckets creates an empty ledger with n buckets. n below 1 is treated as 1.
func NewWithBuckets(n int, logger *slog.Logger) *Ledger {
	if n < 1 {
		n = 1
	}
	return &Ledger{
		buckets: make([]*entry, n),
		logger:  logger.With("source", "SuspectLedger"),
	}
}

// Hash sums the bytes of clue and reduces the sum modulo buckets.
func Hash(clue string, buckets int) int {
	sum := 0
	for i := 0; i < len(clue); i++ {
		sum += int(clue[i])
	}
	return sum % buckets
}

// Bucket returns the index of the chain clue is stored in.
func (l *Ledger) Bucket(clue string) int {
	return Hash(clue, len(l.buckets))
}

// Register prepends the association to its bucket's chain. Registering the same clue again shadows the earlier
// suspect without removing it.
func (l *Ledger) Register(clue, suspect string) {
	idx := l.Bucket(clue)
	l.buckets[idx] = &entry{
		Association: Association{Clue: clue, Suspect: suspect},
		next:        l.buckets[idx],
	}
	l.size++
	l.logger.Debug("registered clue", slog.String("suspect", suspect), slog.Int("bucket", idx))
}

// Lookup returns the most recently registered suspect for clue.
func (l *Ledger) Lookup(clue string) (string, bool) {
	for e := l.buckets[l.Bucket(clue)]; e != nil; e = e.next {
		if e.Clue == clue {
			return e.Suspect, true
		}
	}
	return "", false
}

// Suspect is Lookup with Unknown in place of a miss.
func (l *Ledger) Suspect(clue string) string {
	if suspect, ok := l.Lookup(clue); ok {
		return suspect
	}
	return Unknown
}

// Chain returns the associations stored in bucket i, most recent first.
func (l *Ledger) Chain(i int) []Association {
	if i < 0 || i >= len(l.buckets) {
		return nil
	}
	var chain []Association
	for e := l.buckets[i]; e != nil; e = e.next {
		chain = append(chain, e.Association)
	}
	return chain
}

// Buckets returns the number of buckets.
func (l *Ledger) Buckets() int {
	return len(l.buckets)
}

// Len returns the number of registrations, shadowed ones included.
func (l *Ledger) Len() int {
	return l.size
}
