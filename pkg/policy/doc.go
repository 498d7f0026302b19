// Package policy implements the self-play move choosers used by rollouts
// and the generator: random, greedy, and mixed. A Policy is a pure function
// of state, legal actions, and an RNG — no inheritance hierarchy, just a
// small tagged interface with three implementations. Random and greedy are
// registered in a package-level registry guarded by sync.RWMutex; mixed is
// built with NewMixed.
package policy
