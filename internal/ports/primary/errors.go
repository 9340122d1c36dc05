package primary

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPrerequisitesNotMet is the sentinel for rejected completion attempts.
// Callers match it with errors.Is to distinguish the rejection from
// infrastructure failures (HTTP maps it to 400, the CLI to a plain message).
var ErrPrerequisitesNotMet = errors.New("prerequisites not met")

// PrerequisitesNotMetError carries the blocking prerequisites of a rejected
// completion attempt.
type PrerequisitesNotMetError struct {
	ItemID string
	Unmet  []UnmetPrerequisite
}

func (e *PrerequisitesNotMetError) Error() string {
	if len(e.Unmet) == 0 {
		return "Prerequisites not met"
	}
	parts := make([]string, len(e.Unmet))
	for i, u := range e.Unmet {
		parts[i] = u.Description
	}
	return fmt.Sprintf("Prerequisites not met: %s", strings.Join(parts, "; "))
}

func (e *PrerequisitesNotMetError) Unwrap() error {
	return ErrPrerequisitesNotMet
}
