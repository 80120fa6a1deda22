// Package audit implements the deduplicating emission path for OCSF audit
// events.
//
// Events flow through a bounded per-shard Queue: Submit probes the queue by
// the event's content fingerprint and either inserts the event or folds the
// duplicate into the existing entry, bounding audit traffic under load.
// Flush serializes the coalesced entries and ships them to a Sink. Entries
// evicted when the queue is at capacity are serialized immediately and
// shipped with the next flush, so a full queue degrades to more records,
// never to lost ones.
package audit
