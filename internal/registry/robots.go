package registry

import (
	"fmt"
	"sort"

	"github.com/kinesra/simscene/api/schemas"
)

// RobotManager stores robot descriptions by name, same contract as the setup
// manager.
type RobotManager struct {
	byName map[string]schemas.Robot
}

// NewRobotManager builds a manager preloaded with the given robots. A
// duplicate name among them fails the construction.
func NewRobotManager(robots ...schemas.Robot) (*RobotManager, error) {
	m := &RobotManager{byName: make(map[string]schemas.Robot, len(robots))}
	for _, r := range robots {
		if err := m.Add(r); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Add stores a robot under its name. Re-adding an existing name is an error.
func (m *RobotManager) Add(robot schemas.Robot) error {
	if _, exists := m.byName[robot.Name()]; exists {
		return fmt.Errorf("%w: a robot is already registered under %q", schemas.ErrValidation, robot.Name())
	}
	m.byName[robot.Name()] = robot
	return nil
}

// Get returns the robot registered under name.
func (m *RobotManager) Get(name string) (schemas.Robot, error) {
	robot, ok := m.byName[name]
	if !ok {
		return schemas.Robot{}, fmt.Errorf("%w: no robot registered under %q", schemas.ErrNotFound, name)
	}
	return robot, nil
}

// Names lists the registered robot names, sorted.
func (m *RobotManager) Names() []string {
	names := make([]string, 0, len(m.byName))
	for name := range m.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
