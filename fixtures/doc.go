// Package fixtures builds the deterministic brush/world scenarios named
// in spec §8's concrete-scenario list, for compiler and bsp tests and
// for manual exercising of cmd/dmap. Every factory follows the same
// shape as the teacher's builder package: a plain constructor function
// returning ready-to-compile data, no hidden state, same input always
// produces the same output.
package fixtures
