// Package filesystem provides filesystem implementations for wincross.
//
// Everything that touches disk (spec existence checks, the build config
// store, generated scripts, diagnostics) goes through the FS interface so
// tests can run against an in-memory afero filesystem.
package filesystem
