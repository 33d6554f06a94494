// Package cli provides the interactive placement-experience command-line
// client.
//
// It wires configuration, the local token database, the API client, the
// session store and the search controller into an interactive REPL. Typical
// flow: restore the persisted session, then execute user commands.
//
// Key features:
//   - Login / Register / Logout / Profile editing
//   - Browse, search and filter shared interview experiences
//   - Create and edit posts with their interview rounds
//   - Like, comment, and a personal dashboard
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
