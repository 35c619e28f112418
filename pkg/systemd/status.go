package systemd

import "math"

// Status is the subset of unit state surfaced to the operator.
type Status struct {
	Name          string `json:"name" yaml:"name"`
	Description   string `json:"description,omitempty" yaml:"description,omitempty"`
	LoadState     string `json:"loadState" yaml:"loadState"`
	ActiveState   string `json:"activeState" yaml:"activeState"`
	SubState      string `json:"subState" yaml:"subState"`
	UnitFileState string `json:"unitFileState" yaml:"unitFileState"`
	MainPID       uint32 `json:"mainPid,omitempty" yaml:"mainPid,omitempty"`
	MemoryCurrent uint64 `json:"memoryBytes,omitempty" yaml:"memoryBytes,omitempty"`
}

// Active reports whether the unit is currently active.
func (s *Status) Active() bool {
	return s.ActiveState == "active"
}

// Enabled reports whether the unit is enabled for boot-time activation.
func (s *Status) Enabled() bool {
	return s.UnitFileState == "enabled"
}

// statusFromProperties maps the D-Bus property bag onto a Status.
// Properties travel as dbus variants; a missing or oddly typed property
// leaves the field zero.
func statusFromProperties(name string, props map[string]interface{}) *Status {
	s := &Status{Name: name}
	if v, ok := props["Description"].(string); ok {
		s.Description = v
	}
	if v, ok := props["LoadState"].(string); ok {
		s.LoadState = v
	}
	if v, ok := props["ActiveState"].(string); ok {
		s.ActiveState = v
	}
	if v, ok := props["SubState"].(string); ok {
		s.SubState = v
	}
	if v, ok := props["UnitFileState"].(string); ok {
		s.UnitFileState = v
	}
	if v, ok := props["MainPID"].(uint32); ok {
		s.MainPID = v
	}
	// MemoryCurrent reads MaxUint64 when accounting is off.
	if v, ok := props["MemoryCurrent"].(uint64); ok && v != math.MaxUint64 {
		s.MemoryCurrent = v
	}
	return s
}
