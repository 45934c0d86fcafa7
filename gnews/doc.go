// Package gnews is a minimal client for the GNews v4 search API.
//
// Only the /search operation is implemented; it is the single entry point
// the ingestion front-end needs. Failures are scoped per request so a bad
// query or quota error fails one topic without taking down a batch.
package gnews
