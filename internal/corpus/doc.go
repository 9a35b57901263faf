// Package corpus enumerates the source documents of a translation sweep.
// Only regular files directly inside the source directory whose names match
// the document pattern and are not in the exclusion set are eligible.
package corpus
