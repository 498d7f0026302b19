// Package genconfig parses and validates the YAML-or-JSON configuration
// surfaces for the generator and the evaluator: a struct with yaml/json
// tags, a LoadXFromBytes that fills in defaults before validating, and a
// Validate that rejects the first out-of-range field it finds.
package genconfig
