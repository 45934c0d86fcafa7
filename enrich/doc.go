// Package enrich drives the enrichment pipeline over staged articles.
//
// A Driver walks every object under a date prefix in the source bucket,
// filters eligible keys, and produces derived artifacts in the destination
// bucket: extracted text for the original stage, chunked summaries for the
// summarized stage. Failures are isolated per object and per chunk; only
// listing failures and an unavailable model endpoint abort a run.
package enrich
