package policy

import (
	"fmt"
	"sync"

	"github.com/azul-practice/core/pkg/model"
	"github.com/azul-practice/core/pkg/rng"
)

// Policy chooses one action from a set of legal actions for a given state.
// Implementations must be deterministic given the same state, legal-action
// set, and RNG sequence.
type Policy interface {
	// Choose picks one of legal, which is guaranteed non-empty.
	Choose(state *model.State, legal []model.DraftAction, r *rng.RNG) model.DraftAction

	// Name returns the policy's registered identifier.
	Name() string
}

var (
	mu       sync.RWMutex
	policies = make(map[string]Policy)
)

// Register adds a policy to the global registry. Panics if name is already
// registered.
func Register(name string, p Policy) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := policies[name]; exists {
		panic(fmt.Sprintf("policy: %q already registered", name))
	}
	policies[name] = p
}

// Get retrieves a registered policy by name. Returns nil if not found.
func Get(name string) Policy {
	mu.RLock()
	defer mu.RUnlock()
	return policies[name]
}

// List returns every registered policy name.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(policies))
	for name := range policies {
		names = append(names, name)
	}
	return names
}

func init() {
	Register("random", Random{})
	Register("greedy", Greedy{})
}
