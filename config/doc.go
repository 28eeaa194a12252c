// Package config loads the YAML compile profile a run of dmap starts
// from: default content flags, default block size, and epsilon
// overrides. Values are CLI-overridable; cmd/dmap applies flags on top
// of whatever Load returns.
package config
