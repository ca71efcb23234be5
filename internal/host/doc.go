// Package host ties the input pipeline together: it owns the console
// lock, the circular input-event buffer, the invalidation tracker, and the
// console-wide flags that the write path consults. All buffer access goes
// through a Console, which acquires the lock on entry and releases it on
// every exit path; blocked readers release the lock for the duration of
// their suspension and reacquire it before returning.
package host
