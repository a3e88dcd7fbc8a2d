// Package requestservice implements the request lifecycle inside the
// household-coordination context.
//
// A request is a household task posted into a pool. It moves from open to
// claimed to completed, each transition writing the request and an outbox
// event in one transaction, appending a pool notification, and reporting the
// transition to the scoring engine. A relay worker drains the outbox onto the
// message bus.
package requestservice
