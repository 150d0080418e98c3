package model

import "time"

// Project groups related dashboard work (content batches, reworks).
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProjectMember links a user to a project with a role.
type ProjectMember struct {
	ProjectID string `json:"project_id"`
	UUID      string `json:"uuid"`
	Role      string `json:"role"`
}

// ProjectItem is one work item inside a project, keyed by an item sequence
// local to the project.
type ProjectItem struct {
	ProjectID   string `json:"project_id"`
	ItemID      int    `json:"item_id"`
	Type        string `json:"type"`
	Target      string `json:"target"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
}
