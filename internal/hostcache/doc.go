// Package hostcache implements the host-side scalar cache surface mappers
// use to carry small values across records and batches.
//
// # Overview
//
// The cache stores the closed Scalar type under string keys with a TTL.
// Writes clamp the requested TTL to the configured maximum and substitute
// the default when none is given. Expiry is lazy: a stale entry is
// deleted on the read that finds it. Entries persist in Pebble under the
// "cache/" keyspace as: expires_at(8B BE) | kind(1B) | payload |
// crc32c(all prior bytes).
package hostcache
