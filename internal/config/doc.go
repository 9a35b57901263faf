// Package config holds the resolved run configuration for htmltrans. A Config
// is built once at start-up by the cli package and passed by value or pointer
// into the processor; nothing in this package reads global state.
package config
