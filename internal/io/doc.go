// Package ioutils provides file system utilities for cdinventory.
//
// This package contains functions for:
//   - Whole-file atomic replacement
//   - Directory creation
//
// # File Operations
//
//	// Replace a file's contents in one step
//	err := ioutils.WriteFileAtomic("/path/to/CDInventory.dat", data)
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/path/to/new/directory")
package ioutils
