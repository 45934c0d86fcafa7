// Package ingest stages raw news articles into the staging bucket.
//
// An Ingester queries the search API once per registered topic for a
// single calendar day and writes each article as a JSON object keyed by
// {date}/{topic}/{title}.json. Topic and upload failures are isolated:
// one failing topic or article never aborts the run.
package ingest
