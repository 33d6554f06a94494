// Package tokens persists the single durable piece of client state: the
// session token. The SQLite implementation keeps it in a one-row key-value
// table so a restart can restore the previous session.
package tokens
