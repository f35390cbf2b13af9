// Package queue holds the ordered set of images waiting to be assembled
// into a document.
//
// Entries are appended in the order images are confirmed, and queue order is
// page order in the final output. Each entry carries an encoded image
// payload, the filter that produced it, and a unique id minted by [NewEntry]:
//
//	q := queue.New()
//	q.Append(queue.NewEntry(payload, queue.Import, filter.Grayscale))
//
// All queue operations are safe for concurrent use. [Queue.List] returns a
// copy, so iterating hosts cannot perturb queue order, and removing an id
// that was already removed is a no-op.
package queue
