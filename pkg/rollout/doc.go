// Package rollout simulates self-play games forward from a state using a
// pair of policies, one per player, until the game ends or a safety bound on
// the number of actions is reached. It is a bounded loop, checked for
// context cancellation on each iteration, accumulating a result as it goes.
package rollout
