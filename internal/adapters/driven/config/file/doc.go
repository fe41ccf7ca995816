// Package file provides a TOML file-backed configuration store.
// Settings live in config.toml inside the tally config directory.
package file
