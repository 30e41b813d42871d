// Package cache memoizes the native gg resources a backend derives from
// graphics values.
//
// # Resources
//
//   - Solid brush: one per Color value.
//   - Pen: per Color, a list of widths. A requested width reuses a pen whose
//     width is within [WidthTolerance] of it, relative to the larger of the
//     two, so jittery float widths do not grow the list without bound.
//   - Gradient brush: one per *graphics.Gradient, keyed by pointer.
//
// Entries are created on first request and never evicted or invalidated;
// the cache lives as long as the backend that owns it.
//
// # Thread Safety
//
// Cache is not safe for concurrent use. It belongs to the backend's
// goroutine, like the gg.Context it feeds.
package cache
