// Package fileutil provides shared file permission constants.
package fileutil

import "os"

// OwnerReadWrite is the file permission mode for scratch files that may
// hold potentially sensitive API data (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// ReadableByAll is the file permission mode for emitted schema files,
// which are meant to be consumed by editors, validators, and build tools.
const ReadableByAll os.FileMode = 0o644
