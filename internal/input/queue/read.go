package queue

import "github.com/dshills/termhost/internal/input/record"

// ReadOptions controls a read from the buffer.
type ReadOptions struct {
	// Peek copies records without removing them.
	Peek bool

	// Stream returns exactly one record per call when the next queued
	// record is a key event, regardless of the destination size. Stream
	// reads always consume; Peek is ignored.
	Stream bool

	// Narrow switches the destination budget from records to character
	// cells: a key record carrying a full-width rune costs two slots of
	// len(dst), every other record costs one. The default counts records
	// one to one.
	Narrow bool
}

// Read transfers up to len(dst) records from the buffer into dst and
// returns the number of records copied. Unless peeking, the read cursor
// advances past everything transferred and the wait signal is cleared if
// the buffer drained.
func (b *Buffer) Read(dst []record.Record, opts ReadOptions) int {
	n := b.read(dst, opts)
	if b.isEmpty() {
		b.signaled = false
	}
	return n
}

// read is the cursor protocol shared by Read, Resize, and
// FlushAllButKeys. It does not touch the wait signal.
func (b *Buffer) read(dst []record.Record, opts ReadOptions) int {
	if len(dst) == 0 || b.isEmpty() {
		return 0
	}

	// A stream read of a key event delivers the whole record, repeat
	// count intact; the caller expands repeats one keystroke at a time.
	if opts.Stream && b.records[b.out].Kind == record.KindKey {
		dst[0] = b.records[b.out]
		b.out = (b.out + 1) % len(b.records)
		return 1
	}

	budget := len(dst)
	used := 0
	n := 0
	idx := b.out
	for used < budget && idx != b.in {
		rec := b.records[idx]
		dst[n] = rec
		n++

		// In narrow mode a full-width character fills two destination
		// cells. The last record may overshoot the budget; it is still
		// delivered whole.
		if opts.Narrow && rec.Kind == record.KindKey && record.IsFullWidth(rec.Key.Rune) {
			used += 2
		} else {
			used++
		}

		idx = (idx + 1) % len(b.records)
	}

	if !opts.Peek {
		b.out = idx
	}
	return n
}
