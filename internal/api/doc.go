// Package api provides the HTTP client for the wallpaper platform.
//
// Two remote endpoints are consumed: the authentication endpoint
// (login/register, returns a bearer token and user record) and the
// wallpaper endpoint (listing plus rate/comment/download/upload/view
// actions). Both speak JSON; action-style POST bodies carry an "action"
// discriminator, matching the platform's request shapes.
//
// Non-2xx responses with an {"error": ...} body become *RemoteError so
// callers can surface the service message verbatim. Transport failures
// are wrapped and reported as generic failures.
package api
