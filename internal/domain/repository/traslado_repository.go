package repository

import "github.com/viagrua/viagrua-api/internal/domain/entity"

// TrasladoRepository define el puerto de persistencia para Traslado (DIP).
type TrasladoRepository interface {
	Create(traslado *entity.Traslado) error
	GetByID(id string) (*entity.Traslado, error)
	// ListByEmpresa lista traslados de la empresa; estado vacío = todos.
	ListByEmpresa(empresaID, estado string, limit, offset int) ([]*entity.Traslado, error)
	// ListByChofer lista los traslados asignados a un chofer; estado vacío = todos.
	ListByChofer(choferID, estado string, limit, offset int) ([]*entity.Traslado, error)
	UpdateEstado(id, estado string) error
	UpdateEstadoPago(id, estadoPago string) error
	// UpdateFoto guarda la URL pública de una foto (tipo: frontal|lateral|trasera|interior).
	UpdateFoto(id, tipo, url string) error
	// ReasignarActivos mueve los traslados no completados de un chofer a otro perfil.
	// Se usa al expulsar un chofer para no dejar trabajos huérfanos.
	ReasignarActivos(deChoferID, aPerfilID string) (int64, error)
	Delete(id string) error
	Resumen(empresaID string) (*entity.ResumenTraslados, error)
}
