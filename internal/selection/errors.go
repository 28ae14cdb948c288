package selection

import (
	"fmt"
	"strings"
)

// ConfigError reports a search parameter that does not occur in the base
// tables. Valid lists the accepted values.
type ConfigError struct {
	Field string
	Value string
	Valid []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("selection: unknown %s %q (%d valid values)", e.Field, e.Value, len(e.Valid))
}

// ValidList renders the accepted values one per line.
func (e *ConfigError) ValidList() string {
	return strings.Join(e.Valid, "\n")
}
