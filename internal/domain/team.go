package domain

import "time"

// Team is the squad a plan or fixture belongs to.
type Team struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
