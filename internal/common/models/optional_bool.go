package models

import "fmt"

// OptionalBool is a tri-state boolean for filter payloads. The dashboard
// sends booleans, quoted booleans or empty strings interchangeably; an empty
// or missing value means "no filter".
type OptionalBool struct {
	Set   bool
	Value bool
}

func (b *OptionalBool) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "null", `""`:
		b.Set = false
	case "true", `"true"`:
		b.Set = true
		b.Value = true
	case "false", `"false"`:
		b.Set = true
		b.Value = false
	default:
		return fmt.Errorf("invalid boolean filter value: %s", data)
	}
	return nil
}

func (b OptionalBool) MarshalJSON() ([]byte, error) {
	if !b.Set {
		return []byte("null"), nil
	}
	if b.Value {
		return []byte("true"), nil
	}
	return []byte("false"), nil
}
