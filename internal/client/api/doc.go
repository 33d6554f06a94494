// Package api contains the client-side building blocks for talking to the
// placement-interview platform backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the whole REST surface the views consume: auth, posts, likes, comments,
//     profiles, dashboards and stats.
//  2. A concrete HTTP implementation (see HTTPClient) that owns a base URL
//     with the /api prefix, a cookie jar, and the default bearer header.
//     Token installation and request issuing are serialized so requests never
//     race with stale credentials.
//
// # Error Handling
//
// Transport failures wrap common.ErrUnavailable. Backend rejections are
// returned as *Error values carrying the HTTP status and the backend message;
// *Error unwraps to common.ErrUnauthorized and common.ErrNotFound for the
// corresponding statuses, so both errors.Is matching and user-facing message
// extraction (UserMessage) work on the same value.
//
// See Also
//
//   - Interface: Client
//   - HTTP impl: HTTPClient
//   - Errors:    Error, UserMessage
package api
