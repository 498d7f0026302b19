// Package rules implements the Azul core rules engine: legal-action
// enumeration, action application, and end-of-round resolution.
//
// Every exported function clones its input state before mutating anything;
// callers always receive a fresh value and their own state is left
// untouched, matching the immutability contract in pkg/model. This also
// makes the engine safe to call concurrently from independent rollouts,
// since no state is shared across calls.
package rules
