// Package version exposes the build stamp injected at link time.
//
// The values are set through -ldflags, e.g.:
//
//	go build -ldflags "-X kaudit/version.version=v24.1.3 -X kaudit/version.gitSHA=ab12cd3"
package version

var (
	version = "dev"
	gitSHA  = ""
)

// Build returns the full build stamp used in audit event metadata.
// The value is fixed for the lifetime of the process.
func Build() string {
	if gitSHA == "" {
		return version
	}
	return version + "-" + gitSHA
}
