// Package generator builds practice scenarios by self-play, retrying across
// seeds until a snapshot matches the requested stage targets and passes the
// quality filters. The pipeline derives stage RNGs from a master seed and a
// config hash, checks context cancellation between stages, and accumulates
// a result as the pipeline advances.
package generator
