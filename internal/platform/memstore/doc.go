// Package memstore provides the in-memory implementations of the store
// interfaces. All state lives in process memory and vanishes on
// restart; every process start is implicitly an account reset. Each
// store guards its maps with a mutex so concurrent HTTP handlers can
// share them safely.
package memstore
