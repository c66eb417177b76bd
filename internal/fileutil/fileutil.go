// Package fileutil holds file permission modes shared by the CLI and the generator.
package fileutil

import "os"

// OwnerReadWrite is the file permission mode for converted text written by the
// CLI, which may contain values the user considers private.
const OwnerReadWrite os.FileMode = 0o600

// ReadableByAll is the file permission mode for generated Go source files
// intended to be read by build tools and other users.
const ReadableByAll os.FileMode = 0o644

// DirMode is the permission mode for directories created for generated output.
const DirMode os.FileMode = 0o755
