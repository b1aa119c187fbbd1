package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists  = errors.New("el email ya está registrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicateName       = errors.New("el nombre de la categoría ya existe")
	ErrInvalidHierarchy    = errors.New("la categoría padre no puede ser a su vez una subcategoría")
	ErrInUse               = errors.New("la categoría está referenciada por otros registros")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrOrderNotCancellable = errors.New("la orden no se puede cancelar en su estado actual")
)
