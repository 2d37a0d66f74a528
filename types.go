package ripple

import (
	"errors"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// ChangeKind classifies a write reported to Trigger. Structural kinds
// (add, delete, clear) reach subscribers of the iteration key in addition
// to subscribers of the written key.
type ChangeKind uint8

const (
	ChangeUpdate ChangeKind = iota
	ChangeAdd
	ChangeDelete
	ChangeClear
	ChangeIterate
)

// OnErrorFunc receives every error produced by a subscriber, watcher
// callback, or the flush loop. from is the value whose execution failed.
type OnErrorFunc func(from any, err error)

// ErrFlushOverflow is reported when a flush keeps producing new work for
// more passes than maxFlushPasses allows. It almost always means two jobs
// are re-triggering each other.
var ErrFlushOverflow = errors.New("ripple: flush queue did not settle, jobs keep re-enqueueing each other")

// Readable is any cell that can be read reactively.
type Readable[T any] interface {
	Value() T
}

// DeepTrackable is implemented by containers that can register a read
// dependency on their whole structure. Deep watchers call TrackEntries to
// subscribe to mutations anywhere inside nested containers.
type DeepTrackable interface {
	// TrackEntries records dependencies on the container's structure and on
	// every entry, passing each entry value to visit so nested containers
	// are traversed too.
	TrackEntries(visit func(value any))
}

// symbolKey is the type of reserved store keys. A distinct type keeps the
// reserved keys from ever colliding with user-supplied uint64 keys.
type symbolKey uint64

var (
	iterationKey = symbolKey(xxhash.Sum64String("ripple.iteration"))
	cellValueKey = symbolKey(xxhash.Sum64String("ripple.cell.value"))
)

var idCounter uint64

func nextID() uint64 {
	return atomic.AddUint64(&idCounter, 1)
}
