package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/domain"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
	"github.com/tu-usuario/catalogo-api/pkg/logger"
	"github.com/tu-usuario/catalogo-api/pkg/slug"
)

// CommandService orquesta las mutaciones de categorías: crear, actualizar y
// borrar con archivado. La autorización (admin) la resuelve la capa HTTP.
type CommandService struct {
	catRepo   repository.CategoryRepository
	validator *TreeValidator
	tx        TxRunner
	blobs     BlobStorage
	log       *logger.Logger
}

// NewCommandService construye el servicio de comandos.
func NewCommandService(catRepo repository.CategoryRepository, validator *TreeValidator, tx TxRunner, blobs BlobStorage, log *logger.Logger) *CommandService {
	return &CommandService{catRepo: catRepo, validator: validator, tx: tx, blobs: blobs, log: log}
}

// Create crea una categoría. El chequeo de nombre es global (cualquier
// categoría activa con ese nombre bloquea la creación); el slug se deriva
// siempre del nombre.
func (s *CommandService) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := s.validator.ValidateUniqueNameGlobal(in.Name); err != nil {
		return nil, err
	}

	image := ""
	if in.Image != nil {
		uri, err := s.blobs.Save(in.Image.Filename, in.Image.Data)
		if err != nil {
			return nil, err
		}
		image = uri
	}

	if err := s.validator.ValidateParent(in.ParentID); err != nil {
		return nil, err
	}

	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Slug:      slug.Make(in.Name),
		Image:     image,
		ParentID:  in.ParentID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.catRepo.Create(category); err != nil {
		return nil, err
	}
	out := dto.ToCategoryResponse(category)
	return &out, nil
}

// Update actualiza una categoría. El chequeo de nombre es por grupo de
// hermanas; el slug explícito tiene prioridad sobre el derivado del nombre.
// Si llega imagen nueva, la anterior se borra después del update (best-effort).
func (s *CommandService) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := s.catRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}

	if err := s.validator.ValidateUniqueName(in.Name, in.ParentID, id); err != nil {
		return nil, err
	}
	if in.ParentID != "" {
		if err := s.validator.ValidateParent(in.ParentID); err != nil {
			return nil, err
		}
	}

	if in.Slug != nil {
		category.Slug = slug.Make(*in.Slug)
	} else {
		category.Slug = slug.Make(in.Name)
	}

	oldImage := ""
	if in.Image != nil {
		uri, err := s.blobs.Save(in.Image.Filename, in.Image.Data)
		if err != nil {
			return nil, err
		}
		oldImage = category.Image
		category.Image = uri
	}

	category.Name = in.Name
	category.ParentID = in.ParentID
	category.UpdatedAt = time.Now()
	if err := s.catRepo.Update(category); err != nil {
		return nil, err
	}

	// El update ya fue persistido: el fallo al borrar la imagen anterior
	// solo se registra, nunca se propaga.
	if oldImage != "" {
		if err := s.blobs.Delete(oldImage); err != nil {
			s.log.Warn().Err(err).Str("category_id", id).Str("image", oldImage).
				Msg("no se pudo borrar la imagen anterior de la categoría")
		}
	}
	out := dto.ToCategoryResponse(category)
	return &out, nil
}

// Delete borra una categoría de forma atómica: resuelve la rama de archivo,
// re-apunta productos y subcategorías a la hija de archivo y aplica el soft
// delete, todo dentro de una única transacción. Un fallo de integridad
// referencial se reporta como ErrInUse con la transacción revertida. La
// propia rama de archivo no es borrable: es el destino de todo borrado.
func (s *CommandService) Delete(ctx context.Context, id string) (*dto.DeleteCategoryResponse, error) {
	category, err := s.catRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if category.Slug == entity.ArchiveRootSlug || category.Slug == entity.ArchiveChildSlug {
		return nil, domain.ErrInvalidInput
	}

	var out dto.DeleteCategoryResponse
	err = s.tx.Run(ctx, func(catRepo repository.CategoryRepository, prodRepo repository.ProductRepository) error {
		root, child, err := ResolveArchiveBranch(catRepo)
		if err != nil {
			return err
		}
		if _, err := prodRepo.ReassignCategory(id, child.ID); err != nil {
			return err
		}
		if _, err := catRepo.ReparentChildren(id, child.ID); err != nil {
			return err
		}
		if err := catRepo.SoftDelete(id); err != nil {
			return err
		}
		out = dto.DeleteCategoryResponse{ArchiveParentID: root.ID, ArchiveChildID: child.ID}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Tras el commit: la imagen se borra best-effort (un rollback de archivo
	// no existe, así que nunca se borra antes de confirmar la transacción).
	if category.Image != "" {
		if err := s.blobs.Delete(category.Image); err != nil {
			s.log.Warn().Err(err).Str("category_id", id).Str("image", category.Image).
				Msg("no se pudo borrar la imagen de la categoría eliminada")
		}
	}

	s.log.Info().Str("category_id", id).Str("name", category.Name).
		Str("archive_child_id", out.ArchiveChildID).
		Msg("categoría eliminada; productos y subcategorías movidos a la rama de archivo")
	return &out, nil
}
