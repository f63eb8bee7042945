// Package kval provides the value model exchanged with the database bridge.
//
// This package contains the tagged value representation, the per-type
// sentinel table, and the list concatenation engine. All other internal
// packages import kval; kval imports nothing internal.
//
// Key design constraints:
//   - Value is sealed: only the types in this package implement it
//   - A List's element Type is authoritative; sentinels stand in for "no value"
//   - Values are never mutated after construction; operations return fresh values
//   - Floats compare bit-for-bit so the null NaN equals itself
//   - Enum atoms reference their Domain, they never own or copy it
package kval
