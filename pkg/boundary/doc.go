// Package boundary implements the core's public function boundary: seven
// entry points, each accepting and returning serialized JSON values, with
// every error reported as a JSON {"error": {...}} envelope rather than a
// language-level panic escaping to the host.
//
// Every entry point is a pure function: it deserializes its JSON arguments,
// delegates to the appropriate pkg/rules, pkg/generator, or pkg/evaluator
// call, and serializes the result. No entry point retains state across
// calls: the package is a narrow, explicit interface in front of an
// internally staged pipeline, executable directly by any host process (CLI,
// server, FFI shim) that needs JSON in, JSON out.
package boundary
