package models

import (
	"fmt"
	"strings"
	"time"
)

// Status is a ticket's lifecycle state. RESOLVED is terminal.
type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusResolved   Status = "RESOLVED"
)

// ParseStatus rejects anything outside the closed OPEN/IN_PROGRESS/RESOLVED
// set (the legacy CLOSED value included).
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusOpen:
		return StatusOpen, nil
	case StatusInProgress:
		return StatusInProgress, nil
	case StatusResolved:
		return StatusResolved, nil
	default:
		return "", fmt.Errorf("unknown status %q", s)
	}
}

// CanTransitionTo reports whether moving from s to next is legal. The graph
// is exactly OPEN→IN_PROGRESS, OPEN→RESOLVED, IN_PROGRESS→RESOLVED, plus
// identity transitions; nothing moves backward.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	switch s {
	case StatusOpen:
		return next == StatusInProgress || next == StatusResolved
	case StatusInProgress:
		return next == StatusResolved
	default: // RESOLVED is terminal
		return false
	}
}

// Priority enumerates ticket urgency.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// ParsePriority uppercases the wire value; empty defaults to LOW.
func ParsePriority(s string) (Priority, error) {
	switch Priority(strings.ToUpper(strings.TrimSpace(s))) {
	case PriorityLow:
		return PriorityLow, nil
	case PriorityMedium:
		return PriorityMedium, nil
	case PriorityHigh:
		return PriorityHigh, nil
	case PriorityUrgent:
		return PriorityUrgent, nil
	case "":
		return PriorityLow, nil
	default:
		return "", fmt.Errorf("unknown priority %q", s)
	}
}

// Category enumerates what a ticket is about.
type Category string

const (
	CategoryHardware Category = "hardware"
	CategorySoftware Category = "software"
	CategoryNetwork  Category = "network"
	CategoryOther    Category = "other"
)

// ParseCategory lowercases the wire value.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryHardware:
		return CategoryHardware, nil
	case CategorySoftware:
		return CategorySoftware, nil
	case CategoryNetwork:
		return CategoryNetwork, nil
	case CategoryOther:
		return CategoryOther, nil
	default:
		return "", fmt.Errorf("unknown category %q", s)
	}
}

// Ticket is the aggregate. Status and Notes are the only fields mutated
// after creation, and only through the ticket service.
type Ticket struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	OwnerID     string    `json:"ownerId"`
	Notes       []Note    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Note is an append-only, attributed entry on a ticket. Insertion order is
// the only order; existing notes are never edited or removed.
type Note struct {
	ID       string    `json:"id"`
	AuthorID string    `json:"authorId"`
	Text     string    `json:"text"`
	At       time.Time `json:"at"`
}
