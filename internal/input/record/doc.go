// Package record defines the input event record types shared by the
// producer and consumer sides of the input pipeline. A Record is a small,
// fixed-size, value-copyable tagged union covering keyboard, mouse,
// buffer-resize, focus, and menu events, together with the predicates the
// write path uses to decide whether two adjacent records may be coalesced.
package record
