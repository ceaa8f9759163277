package entities

import "time"

// DefaultNoteAuthor is used when a note has no author.
const DefaultNoteAuthor = "System"

// Note is one immutable entry of an order's note history.
type Note struct {
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Author    string    `json:"author"`
}

// Material is a canonical catalog entry.
//
// Storage model (DynamoDB):
//   - PK: id
type Material struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand,omitempty"`
	Code  string `json:"code,omitempty"`
	Unit  string `json:"unit,omitempty"`
}

// MaterialSelection pairs a catalog material with a positive quantity.
type MaterialSelection struct {
	Material Material `json:"material"`
	Quantity int      `json:"quantity"`
}

type Technician struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Sector Sector `json:"sector,omitempty"`
	Active bool   `json:"active"`
}

type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// Role of the current user.
type Role string

const (
	// RoleAdmin sees every sector; sector and technician become plain filters.
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "supervisor"
	RoleTechnician Role = "tecnico"
)

// Viewer is the identity of the authenticated user looking at orders.
type Viewer struct {
	TechnicianID string `json:"technician_id"`
	DisplayName  string `json:"display_name"`
	Role         Role   `json:"role"`
	Sector       Sector `json:"sector"`
}

func (v Viewer) IsAdmin() bool {
	return v.Role == RoleAdmin
}
