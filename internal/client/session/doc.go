// Package session holds the client's authenticated identity and its
// lifecycle: restore on startup, login/register, profile updates, logout.
// It is the single owner of the API client's default credential and the
// single source of truth for IsAuthenticated.
package session
