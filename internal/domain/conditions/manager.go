package conditions

import (
	"log"
	"sort"
	"sync"
)

// Manager tracks the timed conditions of one entity
type Manager struct {
	mu       sync.RWMutex
	timers   map[ConditionType]int
	entityID string
}

// NewManager creates a new condition manager
func NewManager(entityID string) *Manager {
	return &Manager{
		timers:   make(map[ConditionType]int),
		entityID: entityID,
	}
}

// Increase extends a timer by amount. It reports whether the timer changed:
// a non-cumulative condition that is already active, a timer at the cap, or
// a non-positive amount all leave the timer untouched.
func (m *Manager) Increase(condType ConditionType, amount int) bool {
	def := GetDefinition(condType)
	if def == nil || amount <= 0 {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.timers[condType]
	if def.NonCumulative && current > 0 {
		return false
	}

	return m.set(condType, current+amount)
}

// Set forces a timer to an exact value, reporting whether it changed
func (m *Manager) Set(condType ConditionType, value int) bool {
	if GetDefinition(condType) == nil {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.set(condType, value)
}

// Decrease shortens a timer, reporting whether it changed
func (m *Manager) Decrease(condType ConditionType, amount int) bool {
	if amount <= 0 {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.set(condType, m.timers[condType]-amount)
}

func (m *Manager) set(condType ConditionType, value int) bool {
	if value < 0 {
		value = 0
	}
	if value > MaxDuration {
		value = MaxDuration
	}

	current := m.timers[condType]
	if value == current {
		return false
	}

	if value == 0 {
		delete(m.timers, condType)
		log.Printf("[CONDITIONS] %s ended on entity %s", condType, m.entityID)
		return true
	}

	m.timers[condType] = value
	if current == 0 {
		log.Printf("[CONDITIONS] Applied %s to entity %s (duration: %d)", condType, m.entityID, value)
	}
	return true
}

// Remaining returns the turns left on a condition
func (m *Manager) Remaining(condType ConditionType) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.timers[condType]
}

// HasCondition checks if the entity is currently under a condition
func (m *Manager) HasCondition(condType ConditionType) bool {
	return m.Remaining(condType) > 0
}

// GetConditions returns the active condition types in a stable order
func (m *Manager) GetConditions() []ConditionType {
	m.mu.RLock()
	defer m.mu.RUnlock()

	active := make([]ConditionType, 0, len(m.timers))
	for condType := range m.timers {
		active = append(active, condType)
	}
	sort.Slice(active, func(i, j int) bool { return active[i] < active[j] })
	return active
}

// ProcessTurn counts every timer down by one and returns the conditions
// that ran out
func (m *Manager) ProcessTurn() []ConditionType {
	m.mu.Lock()
	defer m.mu.Unlock()

	var expired []ConditionType
	for condType, remaining := range m.timers {
		if remaining <= 1 {
			expired = append(expired, condType)
			continue
		}
		m.timers[condType] = remaining - 1
	}

	for _, condType := range expired {
		delete(m.timers, condType)
		log.Printf("[CONDITIONS] %s expired on entity %s", condType, m.entityID)
	}
	sort.Slice(expired, func(i, j int) bool { return expired[i] < expired[j] })
	return expired
}
