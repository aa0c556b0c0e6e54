// Package domain models situational crisis reports and the records derived
// from them.
//
// # Data Sources
//
// Reports arrive from heterogeneous feeds: social posts (tweets, reddit
// threads) and machine feeds (weather alerts). Each feed delivers RawInput
// records in its own cadence; an upstream collector is responsible for the
// actual transport. The core only consumes the normalized contract.
//
// # Conventions
//
// Time format:
//
//	RFC 3339 UTC strings, e.g. "2025-11-24T10:12:00Z". Raw inputs carry the
//	report time as published by the source; IngestedAt is stamped when the
//	record is normalized.
//
// Coordinates:
//
//	WGS-84 latitude/longitude pairs. Distances between points use the
//	haversine great-circle formula with an Earth radius of 6371.0 km.
//
// Priority:
//
//	Three-level urgency tier (low, medium, high) derived from the evidence
//	confidence score by the scoring engine. Thresholds are half-open on the
//	upper bound: a confidence of exactly 0.7 is medium, not high.
//
// # ID Generation
//
// Event IDs are random UUIDs generated at normalization time. Crisis reports
// have no stable natural key (two posts with the same text and time are
// distinct observations), so IDs are collision-free random identifiers rather
// than content hashes. The source's own ID is preserved in OrigID for
// provenance.
package domain
