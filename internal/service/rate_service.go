package service

import (
	"context"

	"github.com/Javier-GarciaP/sunbody/internal/apierror"
	"github.com/Javier-GarciaP/sunbody/internal/dto"
	"github.com/Javier-GarciaP/sunbody/internal/model"
	"github.com/Javier-GarciaP/sunbody/internal/repository"
)

// TasaService exposes the live COP→VES rate. The register is append-only:
// updating never rewrites history, it inserts a new row that becomes latest.
type TasaService interface {
	Actual(ctx context.Context) (*model.TasaCambio, error)
	Actualizar(ctx context.Context, req dto.ActualizarTasaRequest) (*model.TasaCambio, error)
}

type tasaService struct {
	repo repository.TasaRepository
}

func NewTasaService(repo repository.TasaRepository) TasaService {
	return &tasaService{repo: repo}
}

func (s *tasaService) Actual(ctx context.Context) (*model.TasaCambio, error) {
	tasa, err := s.repo.Latest(ctx)
	if err != nil {
		return nil, apierror.NotFound("No hay tasa de cambio registrada")
	}
	return tasa, nil
}

func (s *tasaService) Actualizar(ctx context.Context, req dto.ActualizarTasaRequest) (*model.TasaCambio, error) {
	if req.CopToVes.Sign() <= 0 {
		return nil, apierror.InvalidInput("La tasa debe ser mayor a cero")
	}
	tasa := model.TasaCambio{CopToVes: req.CopToVes}
	if err := s.repo.Insert(ctx, &tasa); err != nil {
		return nil, err
	}
	return &tasa, nil
}
