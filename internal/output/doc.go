// Package output maps translation tasks to files in per-language
// subdirectories of an output root and persists translated documents.
package output
