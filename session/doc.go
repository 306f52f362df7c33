// Package session provides transcript persistence for chain runs. The
// in-memory implementation is safe for concurrent access and suited to tests
// and ephemeral demos; durable deployments supply their own
// core.TranscriptStore.
package session
