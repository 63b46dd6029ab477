// Package mapper defines the contract between the host and its mapper
// plugins and the registry that routes records to them.
//
// # Overview
//
// A mapper declares a static identity (Metadata), a routing probe (an
// ordered list of selectors, compiled once at registration), and a
// ProcessLogs step in one of two flavors: RawMapper emits bytes (NDJSON
// per input record by convention), FrameMapper emits one Frame per
// extracted record. A record is routed to a mapper iff at least one of
// its probe selectors matches.
//
//	h, err := reg.Register(m)
//	if err != nil { /* bad probe */ }
//	out, err := reg.Process(h, records)
//	if err != nil { /* whole batch discarded */ }
//
// Process opens one view per record and releases every view on all exit
// paths; outputs preserve input order. A ProcessLogs error is a unit
// failure: the batch's output is discarded as a whole.
package mapper
