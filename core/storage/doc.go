// Package storage provides the filesystem abstraction used by the exporter.
//
// It wraps an afero filesystem to expose the handful of operations the
// catalog loader, diff engine and export executor need: existence checks,
// recursive directory creation, non-overwriting copies, symbolic links and
// reading the metadata file.
//
// # Client Interface
//
// The Client interface keeps the exporter independent of the host. Production
// code uses NewOSClient; tests use an in-memory afero filesystem or the
// testify mock in core/storage/mocks to inject failures.
//
// # Symlinks
//
// Exists follows links and answers "is there data to read"; Occupied does
// not and answers "is the name taken". Sources are checked with Exists and
// destinations with Occupied, so a dangling source link counts as missing
// while a dangling destination link is never replaced.
//
// SupportsSymlinks is the capability flag callers consult before asking for
// link mode. It is false on Windows and on filesystems without link support,
// in which case callers fall back to copying.
//
// # Usage
//
//	client := storage.NewOSClient()
//	if client.Exists(src) && !client.Occupied(dst) {
//	    n, err := client.Copy(src, dst)
//	}
package storage
