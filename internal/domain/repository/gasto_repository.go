package repository

import "github.com/viagrua/viagrua-api/internal/domain/entity"

// GastoRepository define el puerto de persistencia para Gasto (DIP).
type GastoRepository interface {
	Create(gasto *entity.Gasto) error
	GetByID(id string) (*entity.Gasto, error)
	// ListByEmpresa lista gastos de la empresa ordenados por fecha descendente.
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Gasto, error)
	Delete(id string) error
}
