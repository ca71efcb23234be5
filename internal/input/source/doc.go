// Package source translates terminal events into input records. The
// Translator maps tcell events onto the record types the queue stores,
// tracking pointer state across calls so that motion, clicks, and wheel
// rotations come out as distinct records.
package source
