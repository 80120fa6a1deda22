// Package ocsf defines the audit event record model emitted for SIEM
// ingestion, shaped after the Open Cybersecurity Schema Framework.
//
// The package provides:
//   - The shared type vocabulary (User, NetworkEndpoint, HTTPRequest, ...)
//   - Three concrete event classes: APIActivity, Authentication and
//     ApplicationLifecycle
//   - A content-addressed fingerprint (Event.Key) over the identifying
//     fields of each event, excluding time and duplicate counters
//   - Canonical JSON serialization with a fixed, class-specific key order
//
// Events are plain per-shard values. Callers construct an event, probe a
// deduplication table with Key(), and either insert the event or fold the
// duplicate into the existing entry with Increment. Serialization is pure
// and never fails for constructed values.
package ocsf
