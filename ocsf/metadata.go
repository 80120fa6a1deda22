package ocsf

import (
	"sync"

	"kaudit/version"
)

// Vendor identity stamped on every emitted event.
const (
	VendorName  = "Redpanda Data, Inc."
	ProductName = "Redpanda"

	// schemaVersion is the OCSF schema version the records conform to.
	schemaVersion = "1.0.0"
)

var (
	metadataOnce sync.Once
	metadata     *Metadata
)

// EventMetadata returns the process-wide metadata block. It is built once
// from the build stamp and shared by reference across all events; callers
// must treat it as read-only.
func EventMetadata() *Metadata {
	metadataOnce.Do(func() {
		metadata = &Metadata{
			Product: Product{
				Name:       ProductName,
				VendorName: VendorName,
				Version:    version.Build(),
			},
			Version: schemaVersion,
		}
	})
	return metadata
}
