// Package harness provides conformance testing for value-model bridges.
//
// The harness runs suites of cases against a bridge.Bridge and records each
// outcome in an explicitly threaded Ledger.
//
// # Suite Format
//
// Suites are defined in YAML files with the following structure:
//
//	name: suite_name
//	description: "What this suite validates"
//	cases:
//	  - label: concat long lists
//	    call: concat
//	    args:
//	      - {long: [1, 2, 3]}
//	      - {long: [4, 5]}
//	    expect: {long: [1, 2, 3, 4, 5]}
//	  - label: modify short list
//	    call: modify_long_list_a_bit
//	    args: [{long: [1]}]
//	    error: this list is not long enough
//
// Every case has exactly one of expect (the returned value must be equal,
// bit-for-bit on floats) or error (the diagnostic must match verbatim).
// See Literal for the value notation.
//
// # Resolution
//
// Run resolves every case's symbol before executing anything. A missing
// symbol or wrong arity is a load error and the ledger stays untouched.
//
// # Reports
//
// A Report renders as ✓/✗ text lines or as canonical JSON (RFC 8785 key
// order, NFC strings) so golden snapshots compare byte-for-byte.
package harness
