package entity

import "time"

// Invitacion código de un solo uso para que un chofer se una a una empresa.
type Invitacion struct {
	ID        string
	EmpresaID string
	Codigo    string
	Usado     bool
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Vigente informa si la invitación puede canjearse en el instante dado.
func (i *Invitacion) Vigente(now time.Time) bool {
	return !i.Usado && now.Before(i.ExpiresAt)
}
