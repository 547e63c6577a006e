// File: api/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package api defines the public contracts of the overring library:
// the overwrite ring interface and the common error values. The package
// depends only on the standard library so every implementation package
// can import it without cycles.
package api
