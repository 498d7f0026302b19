// Package evaluator ranks legal actions by Monte-Carlo rollout sampling and
// grades a user's chosen action against the best one found. It has no
// cancellation channel of its own — callers bound the work with an optional
// time budget instead — but reuses pkg/rollout's context-aware loop
// internally with context.Background().
package evaluator
