package service

import (
	"context"

	"github.com/Javier-GarciaP/sunbody/internal/apierror"
	"github.com/Javier-GarciaP/sunbody/internal/dto"
	"github.com/Javier-GarciaP/sunbody/internal/model"
	"github.com/Javier-GarciaP/sunbody/internal/repository"

	"github.com/google/uuid"
)

// ClienteService manages customers. balance_cop is never written here:
// it only moves through sales, payments and deliveries.
type ClienteService interface {
	Crear(ctx context.Context, req dto.ClienteRequest) (*model.Cliente, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ClienteRequest) (*model.Cliente, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	Obtener(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	Listar(ctx context.Context) ([]model.Cliente, error)
	// Estado returns the customer with their sales and payment journal,
	// the data the account screen renders.
	Estado(ctx context.Context, id uuid.UUID) (*dto.EstadoCliente, error)
}

type clienteService struct {
	repo      repository.ClienteRepository
	ventaRepo repository.VentaRepository
	pagoRepo  repository.PagoRepository
}

func NewClienteService(
	repo repository.ClienteRepository,
	ventaRepo repository.VentaRepository,
	pagoRepo repository.PagoRepository,
) ClienteService {
	return &clienteService{repo: repo, ventaRepo: ventaRepo, pagoRepo: pagoRepo}
}

func (s *clienteService) Crear(ctx context.Context, req dto.ClienteRequest) (*model.Cliente, error) {
	cliente := model.Cliente{Nombre: req.Nombre, Telefono: req.Telefono}
	if err := s.repo.Create(ctx, &cliente); err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ClienteRequest) (*model.Cliente, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Cliente no encontrado")
	}
	cliente.Nombre = req.Nombre
	cliente.Telefono = req.Telefono
	if err := s.repo.Update(ctx, cliente); err != nil {
		return nil, err
	}
	return cliente, nil
}

func (s *clienteService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFound("Cliente no encontrado")
	}
	refs, err := s.repo.CountReferences(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return apierror.Conflict("El cliente tiene ventas, pagos o pedidos asociados")
	}
	return s.repo.Delete(ctx, id)
}

func (s *clienteService) Obtener(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Cliente no encontrado")
	}
	return cliente, nil
}

func (s *clienteService) Listar(ctx context.Context) ([]model.Cliente, error) {
	return s.repo.List(ctx)
}

func (s *clienteService) Estado(ctx context.Context, id uuid.UUID) (*dto.EstadoCliente, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Cliente no encontrado")
	}
	ventas, err := s.ventaRepo.ListByCliente(ctx, id)
	if err != nil {
		return nil, err
	}
	pagos, err := s.pagoRepo.ListByCliente(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.EstadoCliente{Cliente: *cliente, Ventas: ventas, Pagos: pagos}, nil
}
