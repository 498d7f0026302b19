// Package rng provides deterministic random number generation for the Azul
// practice core.
//
// # Overview
//
// The RNG type ensures reproducible scenario generation, rollouts, and
// evaluator sampling by deriving stage-specific seeds from a master seed.
// This allows each consumer (the scenario generator's round loop, a rollout's
// policy choices, one evaluator candidate's sample batch) to have an
// independent random sequence while the whole call tree stays deterministic
// from a single root seed.
//
// # Sub-Seed Derivation
//
// Each RNG derives its seed using SHA-256:
//
//	seed_stage = H(masterSeed, stageName, configHash)
//
// where:
//   - masterSeed: the caller's root seed (scenario_seed or evaluator_seed)
//   - stageName: a stable identifier for the consumer (e.g. "generator.round",
//     "rollout", or "evaluator.candidate.3")
//   - configHash: hash of the parameters the consumer was invoked with
//
// This ensures:
//  1. Same inputs always produce same RNG sequence (determinism)
//  2. Different consumers get independent random sequences (isolation)
//  3. Parameter changes result in different sequences (sensitivity)
//
// # Usage
//
//	configHash := sha256.Sum256([]byte(paramsJSON))
//	roundRNG := rng.NewRNG(scenarioSeed, "generator.round", configHash[:])
//	candidateRNG := rng.NewRNG(evaluatorSeed, fmt.Sprintf("evaluator.candidate.%d", idx), configHash[:])
//
// # Thread Safety
//
// RNG instances are NOT thread-safe. Each goroutine should use its own RNG
// instance. The evaluator's bounded concurrent rollout fan-out, for example,
// builds each candidate's RNG inside the goroutine that uses it.
//
// # Performance
//
// The underlying math/rand.Rand is efficient (a few ns per call); creating a
// new RNG costs roughly a microsecond due to the SHA-256 derivation. Reuse an
// RNG instance across all decisions within one rollout or one round.
package rng
