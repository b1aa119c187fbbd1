package http

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/catalogo-api/internal/application/catalog"
	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/pkg/logger"
)

// Restricciones de la imagen de categoría.
var allowedImageExt = map[string]bool{
	".jpeg": true, ".jpg": true, ".png": true, ".svg": true, ".webp": true,
}

const maxImageBytes = 1500 * 1024

// CategoryHandler maneja las peticiones HTTP del catálogo de categorías.
type CategoryHandler struct {
	commands *catalog.CommandService
	queries  *catalog.QueryService
	log      *logger.Logger
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(commands *catalog.CommandService, queries *catalog.QueryService, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{commands: commands, queries: queries, log: log}
}

// List godoc
// @Summary      Listar categorías
// @Description  Con ?search= devuelve coincidencias planas por nombre o slug; sin búsqueda, raíces con sus hijas.
// @Tags         categories
// @Produce      json
// @Param        search  query  string  false  "Término de búsqueda"
// @Success      200  {object}  dto.Response
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.queries.ListTree(c.Query("search"))
	if err != nil {
		return respondDomainError(c, h.log, "categories.list", "", err)
	}
	return c.JSON(dto.OK("categorías obtenidas", out))
}

// Parents godoc
// @Summary      Listar categorías raíz con hijas
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /api/categories/parents [get]
func (h *CategoryHandler) Parents(c *fiber.Ctx) error {
	out, err := h.queries.ListParentsWithChildren()
	if err != nil {
		return respondDomainError(c, h.log, "categories.parents", "", err)
	}
	return c.JSON(dto.OK("categorías obtenidas", out))
}

// Children godoc
// @Summary      Listar solo subcategorías
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /api/categories/children [get]
func (h *CategoryHandler) Children(c *fiber.Ctx) error {
	out, err := h.queries.ListChildrenOnly()
	if err != nil {
		return respondDomainError(c, h.log, "categories.children", "", err)
	}
	return c.JSON(dto.OK("subcategorías obtenidas", out))
}

// GetByID godoc
// @Summary      Obtener categoría por ID con sus hijas
// @Tags         categories
// @Produce      json
// @Param        id  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.queries.GetByID(id, true)
	if err != nil {
		return respondDomainError(c, h.log, "categories.get", id, err)
	}
	return c.JSON(dto.OK("categoría obtenida", out))
}

// Products godoc
// @Summary      Listar productos activos de una subcategoría
// @Tags         categories
// @Produce      json
// @Param        id  path  string  true  "ID de la subcategoría"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/products [get]
func (h *CategoryHandler) Products(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.queries.ListProducts(id)
	if err != nil {
		return respondDomainError(c, h.log, "categories.products", id, err)
	}
	return c.JSON(dto.OK("productos obtenidos", fiber.Map{"products": out}))
}

// Create godoc
// @Summary      Crear categoría
// @Tags         admin/categories
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        name       formData  string  true   "Nombre"
// @Param        parent_id  formData  string  false  "ID de la categoría padre"
// @Param        image      formData  file    false  "Imagen (jpeg, jpg, png, svg, webp; máx. 1500 KB)"
// @Success      201  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if isMultipart(c) {
		in.Name = strings.TrimSpace(c.FormValue("name"))
		in.ParentID = c.FormValue("parent_id")
		image, err := readImage(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_IMAGE", err.Error()))
		}
		in.Image = image
	} else if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "name es requerido (máx. 255) y parent_id debe ser un UUID"))
	}
	out, err := h.commands.Create(in)
	if err != nil {
		return respondDomainError(c, h.log, "categories.create", "", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("categoría creada", fiber.Map{"category": out}))
}

// Update godoc
// @Summary      Actualizar categoría
// @Tags         admin/categories
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        id         path      string  true   "ID de la categoría"
// @Param        name       formData  string  true   "Nombre"
// @Param        slug       formData  string  false  "Slug explícito (prioridad sobre el derivado)"
// @Param        parent_id  formData  string  false  "ID de la categoría padre"
// @Param        image      formData  file    false  "Imagen nueva"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateCategoryRequest
	if isMultipart(c) {
		in.Name = strings.TrimSpace(c.FormValue("name"))
		in.ParentID = c.FormValue("parent_id")
		if s := c.FormValue("slug"); s != "" {
			in.Slug = &s
		}
		image, err := readImage(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_IMAGE", err.Error()))
		}
		in.Image = image
	} else if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "name es requerido (máx. 255) y parent_id debe ser un UUID"))
	}
	out, err := h.commands.Update(id, in)
	if err != nil {
		return respondDomainError(c, h.log, "categories.update", id, err)
	}
	return c.JSON(dto.OK("categoría actualizada", fiber.Map{"category": out}))
}

// Delete godoc
// @Summary      Borrar categoría (archivando productos y subcategorías)
// @Tags         admin/categories
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.commands.Delete(c.Context(), id)
	if err != nil {
		return respondDomainError(c, h.log, "categories.delete", id, err)
	}
	return c.JSON(dto.OK("categoría borrada; los productos fueron movidos a la rama de archivo", out))
}

// Trashed godoc
// @Summary      Listar categorías soft-deleted
// @Tags         admin/categories
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/admin/categories/trashed [get]
func (h *CategoryHandler) Trashed(c *fiber.Ctx) error {
	out, err := h.queries.ListTrashed()
	if err != nil {
		return respondDomainError(c, h.log, "categories.trashed", "", err)
	}
	return c.JSON(dto.OK("categorías borradas obtenidas", out))
}

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm)
}

// readImage lee el archivo "image" del multipart si existe, validando
// extensión y tamaño máximo.
func readImage(c *fiber.Ctx) (*dto.ImageUpload, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, nil // sin imagen
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedImageExt[ext] {
		return nil, fiber.NewError(fiber.StatusBadRequest, "formato de imagen no soportado (jpeg, jpg, png, svg, webp)")
	}
	if fh.Size > maxImageBytes {
		return nil, fiber.NewError(fiber.StatusBadRequest, "la imagen supera el máximo de 1500 KB")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &dto.ImageUpload{Filename: fh.Filename, Data: data}, nil
}
