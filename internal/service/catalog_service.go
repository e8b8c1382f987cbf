package service

import (
	"context"

	"github.com/Javier-GarciaP/sunbody/internal/apierror"
	"github.com/Javier-GarciaP/sunbody/internal/dto"
	"github.com/Javier-GarciaP/sunbody/internal/model"
	"github.com/Javier-GarciaP/sunbody/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogoService covers colors, products and their per-color variants.
type CatalogoService interface {
	CrearColor(ctx context.Context, req dto.ColorRequest) (*model.Color, error)
	ActualizarColor(ctx context.Context, id uuid.UUID, req dto.ColorRequest) (*model.Color, error)
	EliminarColor(ctx context.Context, id uuid.UUID) error
	ListarColores(ctx context.Context) ([]model.Color, error)

	CrearProducto(ctx context.Context, req dto.CrearProductoRequest) (*model.Producto, error)
	ActualizarProducto(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*model.Producto, error)
	EliminarProducto(ctx context.Context, id uuid.UUID) error
	ObtenerProducto(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	ListarProductos(ctx context.Context) ([]model.Producto, error)

	CrearVariante(ctx context.Context, productoID uuid.UUID, req dto.VarianteRequest) (*model.Variante, error)
	EliminarVariante(ctx context.Context, productoID, varianteID uuid.UUID) error
	AjustarStock(ctx context.Context, productoID uuid.UUID, req dto.AjustarStockRequest) (*model.Variante, error)
}

type catalogoService struct {
	colorRepo    repository.ColorRepository
	productoRepo repository.ProductoRepository
	movRepo      repository.MovimientoStockRepository
}

func NewCatalogoService(
	colorRepo repository.ColorRepository,
	productoRepo repository.ProductoRepository,
	movRepo repository.MovimientoStockRepository,
) CatalogoService {
	return &catalogoService{colorRepo: colorRepo, productoRepo: productoRepo, movRepo: movRepo}
}

// ─── Colores ─────────────────────────────────────────────────────────────────

func (s *catalogoService) CrearColor(ctx context.Context, req dto.ColorRequest) (*model.Color, error) {
	color := model.Color{Nombre: req.Nombre, Hex: req.Hex}
	if err := s.colorRepo.Create(ctx, &color); err != nil {
		return nil, apierror.Conflict("Ya existe un color con ese nombre")
	}
	return &color, nil
}

func (s *catalogoService) ActualizarColor(ctx context.Context, id uuid.UUID, req dto.ColorRequest) (*model.Color, error) {
	color, err := s.colorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Color no encontrado")
	}
	color.Nombre = req.Nombre
	color.Hex = req.Hex
	if err := s.colorRepo.Update(ctx, color); err != nil {
		return nil, err
	}
	return color, nil
}

func (s *catalogoService) EliminarColor(ctx context.Context, id uuid.UUID) error {
	if _, err := s.colorRepo.FindByID(ctx, id); err != nil {
		return apierror.NotFound("Color no encontrado")
	}
	refs, err := s.colorRepo.CountReferences(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return apierror.Conflict("El color está en uso por variantes o items")
	}
	return s.colorRepo.Delete(ctx, id)
}

func (s *catalogoService) ListarColores(ctx context.Context) ([]model.Color, error) {
	return s.colorRepo.List(ctx)
}

// ─── Productos ───────────────────────────────────────────────────────────────

func (s *catalogoService) CrearProducto(ctx context.Context, req dto.CrearProductoRequest) (*model.Producto, error) {
	producto := model.Producto{
		Nombre:    req.Nombre,
		PrecioCop: req.PrecioCop,
		ImagenURL: req.ImagenURL,
	}
	for _, v := range req.Variantes {
		colorID, err := parseID(v.ColorID, "color_id")
		if err != nil {
			return nil, err
		}
		if _, err := s.colorRepo.FindByID(ctx, colorID); err != nil {
			return nil, apierror.NotFound("Color no encontrado")
		}
		producto.Variantes = append(producto.Variantes, model.Variante{
			ColorID: colorID,
			Stock:   v.Stock,
		})
	}
	if err := s.productoRepo.Create(ctx, &producto); err != nil {
		return nil, err
	}
	return s.productoRepo.FindByID(ctx, producto.ID)
}

func (s *catalogoService) ActualizarProducto(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*model.Producto, error) {
	producto, err := s.productoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Producto no encontrado")
	}
	producto.Nombre = req.Nombre
	producto.PrecioCop = req.PrecioCop
	producto.ImagenURL = req.ImagenURL
	if err := s.productoRepo.Update(ctx, producto); err != nil {
		return nil, err
	}
	return producto, nil
}

func (s *catalogoService) EliminarProducto(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productoRepo.FindByID(ctx, id); err != nil {
		return apierror.NotFound("Producto no encontrado")
	}
	refs, err := s.productoRepo.CountReferences(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return apierror.Conflict("El producto tiene movimientos asociados")
	}
	return s.productoRepo.Delete(ctx, id)
}

func (s *catalogoService) ObtenerProducto(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	producto, err := s.productoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Producto no encontrado")
	}
	return producto, nil
}

func (s *catalogoService) ListarProductos(ctx context.Context) ([]model.Producto, error) {
	return s.productoRepo.List(ctx)
}

// ─── Variantes ───────────────────────────────────────────────────────────────

func (s *catalogoService) CrearVariante(ctx context.Context, productoID uuid.UUID, req dto.VarianteRequest) (*model.Variante, error) {
	colorID, err := parseID(req.ColorID, "color_id")
	if err != nil {
		return nil, err
	}
	if _, err := s.productoRepo.FindByID(ctx, productoID); err != nil {
		return nil, apierror.NotFound("Producto no encontrado")
	}
	if _, err := s.colorRepo.FindByID(ctx, colorID); err != nil {
		return nil, apierror.NotFound("Color no encontrado")
	}
	if _, err := s.productoRepo.FindVariante(ctx, productoID, colorID); err == nil {
		return nil, apierror.Conflict("El producto ya tiene una variante en ese color")
	}
	variante := model.Variante{ProductoID: productoID, ColorID: colorID, Stock: req.Stock}
	if err := s.productoRepo.CreateVariante(ctx, &variante); err != nil {
		return nil, err
	}
	return &variante, nil
}

func (s *catalogoService) EliminarVariante(ctx context.Context, productoID, varianteID uuid.UUID) error {
	producto, err := s.productoRepo.FindByID(ctx, productoID)
	if err != nil {
		return apierror.NotFound("Producto no encontrado")
	}
	for _, v := range producto.Variantes {
		if v.ID == varianteID {
			return s.productoRepo.DeleteVariante(ctx, varianteID)
		}
	}
	return apierror.NotFound("Variante no encontrada")
}

// AjustarStock aplica un delta manual con firma. El delta puede dejar el stock
// negativo; queda registrado en el journal de movimientos como ajuste_manual.
func (s *catalogoService) AjustarStock(ctx context.Context, productoID uuid.UUID, req dto.AjustarStockRequest) (*model.Variante, error) {
	colorID, err := parseID(req.ColorID, "color_id")
	if err != nil {
		return nil, err
	}
	if req.Delta == 0 {
		return nil, apierror.InvalidInput("El delta no puede ser cero")
	}

	var variante *model.Variante
	txErr := runTx(ctx, s.productoRepo.DB(), func(tx *gorm.DB) error {
		variante, err = s.productoRepo.EnsureVarianteTx(tx, productoID, colorID)
		if err != nil {
			return err
		}
		if err := s.productoRepo.UpdateStockTx(tx, variante.ID, req.Delta); err != nil {
			return err
		}
		motivo := req.Motivo
		if motivo == "" {
			motivo = "Ajuste manual"
		}
		return s.movRepo.CreateTx(tx, &model.MovimientoStock{
			VarianteID:    variante.ID,
			Tipo:          "ajuste_manual",
			Cantidad:      req.Delta,
			StockAnterior: variante.Stock,
			StockNuevo:    variante.Stock + req.Delta,
			Motivo:        motivo,
		})
	})
	if txErr != nil {
		return nil, txErr
	}
	variante.Stock += req.Delta
	return variante, nil
}
