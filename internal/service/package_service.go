package service

import (
	"context"
	"fmt"

	"github.com/Javier-GarciaP/sunbody/internal/apierror"
	"github.com/Javier-GarciaP/sunbody/internal/dto"
	"github.com/Javier-GarciaP/sunbody/internal/model"
	"github.com/Javier-GarciaP/sunbody/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaqueteService implements supplier package consolidation. It is the only
// component that injects stock into the catalog, on crossing the Entregado
// state boundary.
type PaqueteService interface {
	Crear(ctx context.Context, req dto.CrearPaqueteRequest) (*model.Paquete, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPaqueteRequest) (*model.Paquete, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	Obtener(ctx context.Context, id uuid.UUID) (*model.Paquete, error)
	Listar(ctx context.Context) ([]model.Paquete, error)
	ReporteStock(ctx context.Context) (*dto.ReporteStockPaquetes, error)
}

type paqueteService struct {
	repo         repository.PaqueteRepository
	productoRepo repository.ProductoRepository
	ventaRepo    repository.VentaRepository
	movRepo      repository.MovimientoStockRepository
}

func NewPaqueteService(
	repo repository.PaqueteRepository,
	productoRepo repository.ProductoRepository,
	ventaRepo repository.VentaRepository,
	movRepo repository.MovimientoStockRepository,
) PaqueteService {
	return &paqueteService{repo: repo, productoRepo: productoRepo, ventaRepo: ventaRepo, movRepo: movRepo}
}

func (s *paqueteService) Crear(ctx context.Context, req dto.CrearPaqueteRequest) (*model.Paquete, error) {
	estado := req.Estado
	if estado == "" {
		estado = model.PaqueteArmado
	}
	if !model.EsEstadoPaqueteValido(estado) {
		return nil, apierror.InvalidInput("Estado de paquete desconocido: " + estado)
	}

	paquete := model.Paquete{
		Nombre:   req.Nombre,
		Estado:   estado,
		TotalVes: req.TotalVes,
	}
	for _, item := range req.Items {
		pid, err := parseID(item.ProductoID, "producto_id")
		if err != nil {
			return nil, err
		}
		cid, err := parseID(item.ColorID, "color_id")
		if err != nil {
			return nil, err
		}
		if _, err := s.productoRepo.FindByID(ctx, pid); err != nil {
			return nil, apierror.NotFound("Producto no encontrado")
		}
		paquete.Items = append(paquete.Items, model.PaqueteItem{
			ProductoID: pid,
			ColorID:    cid,
			Cantidad:   item.Cantidad,
		})
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, &paquete); err != nil {
			return err
		}
		// Crear directamente en Entregado inyecta stock igual que la transición.
		if estado == model.PaqueteEntregado {
			return s.aplicarEfectoStock(tx, &paquete, paquete.Items, 1)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.repo.FindByID(ctx, paquete.ID)
}

// ── Actualizar ────────────────────────────────────────────────────────────────
// El orden de operaciones importa y es deliberado:
//  1. efecto de stock evaluado sobre los items VIEJOS según el cambio de estado
//     (hacia Entregado: asegurar variante y sumar; desde Entregado: restar)
//  2. reemplazo total de items si vino una lista nueva
//  3. persistir el estado nuevo

func (s *paqueteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPaqueteRequest) (*model.Paquete, error) {
	paquete, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Paquete no encontrado")
	}

	estadoNuevo := paquete.Estado
	if req.Estado != nil {
		if !model.EsEstadoPaqueteValido(*req.Estado) {
			return nil, apierror.InvalidInput("Estado de paquete desconocido: " + *req.Estado)
		}
		estadoNuevo = *req.Estado
	}

	var itemsNuevos []model.PaqueteItem
	if req.Items != nil {
		for _, item := range *req.Items {
			pid, err := parseID(item.ProductoID, "producto_id")
			if err != nil {
				return nil, err
			}
			cid, err := parseID(item.ColorID, "color_id")
			if err != nil {
				return nil, err
			}
			itemsNuevos = append(itemsNuevos, model.PaqueteItem{
				ProductoID: pid,
				ColorID:    cid,
				Cantidad:   item.Cantidad,
			})
		}
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		recibiendo := paquete.Estado != model.PaqueteEntregado && estadoNuevo == model.PaqueteEntregado
		revirtiendo := paquete.Estado == model.PaqueteEntregado && estadoNuevo != model.PaqueteEntregado

		if recibiendo {
			if err := s.aplicarEfectoStock(tx, paquete, paquete.Items, 1); err != nil {
				return err
			}
		}
		if revirtiendo {
			if err := s.aplicarEfectoStock(tx, paquete, paquete.Items, -1); err != nil {
				return err
			}
		}

		if req.Items != nil {
			if err := s.repo.ReplaceItemsTx(tx, id, itemsNuevos); err != nil {
				return err
			}
		}

		campos := map[string]interface{}{"estado": estadoNuevo}
		if req.Nombre != nil {
			campos["nombre"] = *req.Nombre
		}
		if req.TotalVes != nil {
			campos["total_ves"] = *req.TotalVes
		}
		return s.repo.UpdateTx(tx, id, campos)
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.repo.FindByID(ctx, id)
}

// aplicarEfectoStock suma (signo=1) o resta (signo=-1) las cantidades de los
// items sobre las variantes, creándolas con stock 0 cuando no existen. La
// reversa puede dejar stock negativo: es señal de diagnóstico, no error.
func (s *paqueteService) aplicarEfectoStock(tx *gorm.DB, paquete *model.Paquete, items []model.PaqueteItem, signo int) error {
	tipo := "recepcion_paquete"
	motivo := fmt.Sprintf("Recepción de paquete %s", paquete.Nombre)
	if signo < 0 {
		tipo = "reversa_paquete"
		motivo = fmt.Sprintf("Reversa de paquete %s", paquete.Nombre)
	}
	for _, item := range items {
		variante, err := s.productoRepo.EnsureVarianteTx(tx, item.ProductoID, item.ColorID)
		if err != nil {
			return err
		}
		delta := signo * item.Cantidad
		if err := s.productoRepo.UpdateStockTx(tx, variante.ID, delta); err != nil {
			return err
		}
		paqueteRef := paquete.ID
		mov := &model.MovimientoStock{
			VarianteID:    variante.ID,
			Tipo:          tipo,
			Cantidad:      delta,
			StockAnterior: variante.Stock,
			StockNuevo:    variante.Stock + delta,
			Motivo:        motivo,
			ReferenciaID:  &paqueteRef,
		}
		if err := s.movRepo.CreateTx(tx, mov); err != nil {
			return err
		}
	}
	return nil
}

func (s *paqueteService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFound("Paquete no encontrado")
	}
	refs, err := s.repo.CountReferences(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return apierror.Conflict("El paquete tiene ventas asociadas")
	}
	return s.repo.Delete(ctx, id)
}

func (s *paqueteService) Obtener(ctx context.Context, id uuid.UUID) (*model.Paquete, error) {
	paquete, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Paquete no encontrado")
	}
	return paquete, nil
}

func (s *paqueteService) Listar(ctx context.Context) ([]model.Paquete, error) {
	return s.repo.List(ctx)
}

// ── ReporteStock ──────────────────────────────────────────────────────────────
// Vista derivada, solo lectura: por (producto, color) compara lo recibido vía
// paquetes Entregados contra lo vendido con proveniencia de paquete, junto al
// stock vivo de la variante. Aquí se hacen visibles los desvíos que dejan el
// unlink y la edición de items de un paquete ya recibido.

func (s *paqueteService) ReporteStock(ctx context.Context) (*dto.ReporteStockPaquetes, error) {
	entregados, err := s.repo.ListEntregados(ctx)
	if err != nil {
		return nil, err
	}
	vendidos, err := s.ventaRepo.ListItemsConPaquete(ctx)
	if err != nil {
		return nil, err
	}

	type clave struct{ producto, color uuid.UUID }
	recibido := make(map[clave]int)
	entregado := make(map[clave]int)
	orden := make([]clave, 0)
	visto := make(map[clave]bool)

	gasto := decimal.Zero
	for _, p := range entregados {
		gasto = gasto.Add(p.TotalVes)
		for _, item := range p.Items {
			k := clave{item.ProductoID, item.ColorID}
			if !visto[k] {
				visto[k] = true
				orden = append(orden, k)
			}
			recibido[k] += item.Cantidad
		}
	}
	for _, item := range vendidos {
		k := clave{item.ProductoID, item.ColorID}
		if !visto[k] {
			visto[k] = true
			orden = append(orden, k)
		}
		entregado[k] += item.Cantidad
	}

	reporte := &dto.ReporteStockPaquetes{GastoTotalVes: gasto}
	for _, k := range orden {
		stock := 0
		if v, err := s.productoRepo.FindVariante(ctx, k.producto, k.color); err == nil {
			stock = v.Stock
		}
		reporte.Filas = append(reporte.Filas, dto.FilaStockPaquete{
			ProductoID:  k.producto.String(),
			ColorID:     k.color.String(),
			Recibido:    recibido[k],
			Entregado:   entregado[k],
			NetoPaquete: recibido[k] - entregado[k],
			StockActual: stock,
		})
	}
	return reporte, nil
}
