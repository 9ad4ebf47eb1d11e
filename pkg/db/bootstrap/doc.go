// Package bootstrap establishes the persisted-entity schema.
//
// EnsureSchema is idempotent: it only issues guarded create statements and
// never drops, truncates or alters what already exists, so it is safe to run
// any number of times against a live store. A statement that fails for any
// reason other than "already exists" aborts the whole run; a half-created
// schema is worse than a visible failure.
package bootstrap
