package profile

import (
	"strings"
	"time"

	"github.com/nextsteps/nextsteps-cli/api"
	"github.com/nextsteps/nextsteps-cli/internal/utils"
)

// Placeholder texts the screen shows instead of empty containers.
// Tests assert on these, so empty and absent stay distinguishable.
const (
	NamePlaceholder      = "User"
	GoalPlaceholder      = "No career goal set yet"
	SkillsPlaceholder    = "No skills added yet"
	InterestsPlaceholder = "No interests added yet"
)

// DisplayName joins first name and surname with a single space,
// skipping absent parts. Both absent yields the generic placeholder.
func DisplayName(p *api.Profile) string {
	if p == nil {
		return NamePlaceholder
	}
	parts := make([]string, 0, 2)
	for _, part := range []string{p.FirstName, p.Surname} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return NamePlaceholder
	}
	return strings.Join(parts, " ")
}

// Goal returns the goal title, or the placeholder when unset.
func Goal(p *api.Profile) string {
	if p == nil || utils.Value(p.GoalTitle) == "" {
		return GoalPlaceholder
	}
	return *p.GoalTitle
}

// Tags returns the trimmed tag collection and whether it is non-empty.
// Callers render the matching placeholder when ok is false.
func Tags(values []string) (tags []string, ok bool) {
	if len(values) == 0 {
		return nil, false
	}
	return utils.TrimAll(values), true
}

// LastUpdated formats the updatedAt footer line, or "" when absent.
func LastUpdated(p *api.Profile) string {
	if p == nil || p.UpdatedAt == nil {
		return ""
	}
	return "Last updated: " + p.UpdatedAt.Format(time.DateOnly)
}
