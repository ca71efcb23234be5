package host

import "github.com/dshills/termhost/internal/input/record"

// preprocess filters special key strokes out of an incoming batch before
// it reaches the buffer. While output is suspended, any non-system key
// press resumes it and is swallowed; under line-input mode, a pause key
// suspends output and is swallowed. The caller's slice is filtered in
// place. Caller holds the console lock.
func (c *Console) preprocess(recs []record.Record) []record.Record {
	kept := recs[:0]
	for _, r := range recs {
		if r.IsKeyDown() {
			if c.outputSuspended && !record.IsSystemKey(r.Key.VirtualKey) {
				c.outputSuspended = false
				c.log.Debug("output resumed by key press")
				continue
			}
			if c.mode.Has(ModeLineInput) && record.IsPauseKey(r.Key) {
				c.outputSuspended = true
				c.log.Debug("output suspended by pause key")
				continue
			}
		}
		kept = append(kept, r)
	}
	return kept
}
