package entity

import "time"

// Empresa representa una organización/tenant del sistema (empresa de grúas o traslados).
type Empresa struct {
	ID        string
	Nombre    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
