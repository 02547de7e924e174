// Package store defines interfaces for session-state access. These
// interfaces abstract the state container from the application's core
// logic. The only implementation is in-memory by design: every list
// (users, posts, progress, circles) is reset when the process restarts,
// and nothing in this application may durably store state.
package store
