// Package actionplan converts intervention labels into discrete, assignable,
// dated care-plan items.
package actionplan

import (
	"time"

	"github.com/google/uuid"

	"github.com/carelink/carelink/internal/scoring"
)

// Priority is the urgency band of an action item.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Status is the workflow state of an action item.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// ValidStatus reports whether s is a known workflow state.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// DefaultAssigneeRole receives newly created items until the care team
// reassigns them.
const DefaultAssigneeRole = "nurse"

// Item is a single assignable task derived from a clinical intervention.
type Item struct {
	ID           uuid.UUID  `json:"id"`
	Description  string     `json:"description"`
	Priority     Priority   `json:"priority"`
	AssigneeRole string     `json:"assignee_role"`
	DueAt        *time.Time `json:"due_at,omitempty"`
	Status       Status     `json:"status"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
}

// PriorityForLevel scales item priority with assessment severity. Unknown
// levels fall back to medium.
func PriorityForLevel(level scoring.RiskLevel) Priority {
	switch level {
	case scoring.RiskVeryHigh:
		return PriorityUrgent
	case scoring.RiskHigh:
		return PriorityHigh
	case scoring.RiskModerate:
		return PriorityMedium
	case scoring.RiskLow:
		return PriorityLow
	default:
		return PriorityMedium
	}
}

// Build wraps each intervention into a pending item due 24 hours from now.
// The intervention text is preserved verbatim as the item description.
func Build(interventions []string, level scoring.RiskLevel, now time.Time) []Item {
	due := now.Add(24 * time.Hour)
	priority := PriorityForLevel(level)

	items := make([]Item, 0, len(interventions))
	for _, intervention := range interventions {
		items = append(items, Item{
			ID:           uuid.New(),
			Description:  intervention,
			Priority:     priority,
			AssigneeRole: DefaultAssigneeRole,
			DueAt:        &due,
			Status:       StatusPending,
		})
	}
	return items
}
