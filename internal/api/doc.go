// Package api provides the HTTP transport for the CFPTime API. It
// resolves relative endpoint paths against a fixed base URL, attaches
// JSON headers, and decodes responses into caller-supplied values.
//
// # Retry Behavior
//
// Requests that fail to send, or that receive a transient status
// (408, 429, or any 5xx), are retried with exponential backoff, by
// default up to 3 times after the initial attempt. The backoff schedule
// is context-aware: cancelling the request context aborts any pending
// wait. Non-transient statuses and malformed response bodies are never
// retried.
//
// # Error Taxonomy
//
// The transport reports exactly three failure kinds:
//
//   - [NetworkError]: the request could not be built or could not be
//     sent after exhausting retries.
//   - [APIError]: the server answered with a non-200 status; carries
//     the status code and the raw body text.
//   - [DecodeError]: a 200 response whose body could not be decoded
//     into the expected shape.
//
// # Thread Safety
//
// [Client] is immutable after construction and safe for concurrent use.
package api
