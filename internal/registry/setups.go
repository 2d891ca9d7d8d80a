package registry

import (
	"fmt"
	"sort"

	"github.com/kinesra/simscene/api/schemas"
)

// SetupManager stores experimental setups by name with strict insert
// semantics.
type SetupManager struct {
	byName map[string]schemas.Setup
}

// NewSetupManager builds a manager preloaded with the given setups. A
// duplicate name among them fails the construction.
func NewSetupManager(setups ...schemas.Setup) (*SetupManager, error) {
	m := &SetupManager{byName: make(map[string]schemas.Setup, len(setups))}
	for _, s := range setups {
		if err := m.Add(s); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Add stores a setup under its name. Re-adding an existing name is an error.
func (m *SetupManager) Add(setup schemas.Setup) error {
	if _, exists := m.byName[setup.Name()]; exists {
		return fmt.Errorf("%w: a setup is already registered under %q", schemas.ErrValidation, setup.Name())
	}
	m.byName[setup.Name()] = setup
	return nil
}

// Get returns the setup registered under name.
func (m *SetupManager) Get(name string) (schemas.Setup, error) {
	setup, ok := m.byName[name]
	if !ok {
		return schemas.Setup{}, fmt.Errorf("%w: no setup registered under %q", schemas.ErrNotFound, name)
	}
	return setup, nil
}

// Names lists the registered setup names, sorted.
func (m *SetupManager) Names() []string {
	names := make([]string, 0, len(m.byName))
	for name := range m.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
