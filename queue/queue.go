package queue

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/tsawler/folio/filter"
)

// Origin records how an image entered the queue.
type Origin int

const (
	// Capture marks images acquired from a live source such as a camera.
	Capture Origin = iota

	// Import marks images loaded from existing files.
	Import
)

// String returns the origin name.
func (o Origin) String() string {
	switch o {
	case Capture:
		return "capture"
	case Import:
		return "import"
	default:
		return fmt.Sprintf("unknown(%d)", int(o))
	}
}

// Entry is one queued image awaiting assembly.
type Entry struct {
	// ID uniquely identifies the entry within the queue.
	ID string

	// Payload is the encoded (JPEG or PNG) filtered image.
	Payload []byte

	// Origin records how the image was acquired.
	Origin Origin

	// Filter is the kind applied when the entry was confirmed.
	Filter filter.Kind
}

var entrySeq atomic.Uint64

// NewEntry builds an Entry with a fresh unique id. Ids combine a
// process-wide monotonic counter with a random hex suffix.
func NewEntry(payload []byte, origin Origin, kind filter.Kind) Entry {
	var b [4]byte
	rand.Read(b[:]) // never returns an error as of Go 1.24
	return Entry{
		ID:      strconv.FormatUint(entrySeq.Add(1), 10) + "-" + hex.EncodeToString(b[:]),
		Payload: payload,
		Origin:  origin,
		Filter:  kind,
	}
}

// Queue is an ordered collection of entries. Queue order is page order in
// the assembled document. All methods are safe for concurrent use.
type Queue struct {
	mu      sync.Mutex
	entries []Entry
}

// New returns an empty queue.
func New() *Queue {
	return &Queue{}
}

// Append adds an entry to the end of the queue.
func (q *Queue) Append(e Entry) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries = append(q.entries, e)
}

// RemoveByID removes the entry with the given id, preserving the order of
// the remaining entries. Removing an id that is not present is a no-op.
func (q *Queue) RemoveByID(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, e := range q.entries {
		if e.ID == id {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return
		}
	}
}

// List returns the entries in insertion order. The returned slice is a copy.
func (q *Queue) List() []Entry {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Entry, len(q.entries))
	copy(out, q.entries)
	return out
}

// Clear removes all entries.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries = nil
}

// Len reports the number of queued entries.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}
