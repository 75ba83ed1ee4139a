package repository

import "github.com/viagrua/viagrua-api/internal/domain/entity"

// EmpresaRepository define el puerto de persistencia para Empresa (DIP).
type EmpresaRepository interface {
	Create(empresa *entity.Empresa) error
	GetByID(id string) (*entity.Empresa, error)
	Update(empresa *entity.Empresa) error
}
