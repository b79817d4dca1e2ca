// Package config builds a numeric.Config via functional options, in the
// teacher's builder-package style (functional option constructors that
// validate and panic on meaningless inputs, never on the hot path), and
// loads one from a YAML file on disk in the gazed-vu/load style (decode
// into a small private wire struct, then translate into the typed
// configuration the rest of the program uses).
package config
