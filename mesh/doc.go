// Package mesh implements the request/response correlation engine of the
// access layer and the model façades built on top of it.
//
// The engine turns the one-way send/receive of a Transport into call-shaped
// operations over a medium that may drop, duplicate or reorder messages:
//
//   - Query sends one request and awaits the first inbound message matching a
//     Filter, bounded by a timeout. A timeout is an expected outcome and
//     yields a nil message, not an error.
//   - BulkQuery fans a request out to many nodes with a minimum send-pacing
//     interval and a shared deadline; each node resolves independently.
//   - Repeat retransmits an unacknowledged payload a fixed number of times at
//     a pacing interval, under one transaction identifier per logical action.
//
// Model façades (OnOffClient, LightnessClient, SensorClient, ...) expose the
// typed get/set/set-unacknowledged operations of each model family using only
// the opcode registry and the engine; they never touch the transport
// directly.
package mesh
