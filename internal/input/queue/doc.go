// Package queue implements the circular input-event buffer at the center
// of the terminal host: a fixed-capacity, growable ring of event records
// shared by input producers and blocking readers.
//
// The ring keeps exactly one slot unused so that equal read and write
// cursors always mean "empty", never "full". Writes coalesce redundant
// events (mouse movement position updates, key repeat merges) and grow the
// backing store on demand; reads support peeking, streamed single-event
// delivery, and a narrow mode where full-width characters cost two slots
// of the caller's budget.
//
// Buffer performs no locking of its own. Every method requires the caller
// to hold the host's console lock; see the host package. The only
// concurrency primitive here is the notify channel used to wake blocked
// readers, which is safe to wait on after releasing the lock.
package queue
