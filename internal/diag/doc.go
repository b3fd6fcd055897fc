// Package diag carries diagnostics from analysis phases to output layers.
//
// Phases report through the Reporter interface; BagReporter collects into a
// Bag, DedupReporter filters duplicates, and a nil Reporter swallows
// everything (used for the best-effort lint token pre-scan, where lexical
// errors are not surfaced).
package diag
