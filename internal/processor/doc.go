// Package processor drives a translation sweep over the document x language
// matrix. It creates language directories, skips tasks whose output already
// exists, calls the translation client through a throttle gate, persists the
// results, and returns a typed result for every task. A failing task never
// aborts the sweep.
package processor
