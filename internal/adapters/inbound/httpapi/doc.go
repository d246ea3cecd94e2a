// Package httpapi exposes the session service over HTTP.
//
// Routes:
//
//	GET  /healthz              liveness probe, "ok"
//	GET  /variants             wired variants
//	GET  /sessions/{variant}   run one session
//	POST /sessions             run a batch: {"variants": ["1", "2"]}
//
// The variant is always named by the caller (URL segment or request body).
// Malformed variants answer 400, unwired ones 404.
package httpapi
