package master

import (
	"context"

	"github.com/lakbayhr/ems-backend-go/internal/domain/master"
)

type MasterServiceImpl struct {
	departmentRepository master.DepartmentRepository
	positionRepository   master.PositionRepository
}

func NewMasterService(departmentRepository master.DepartmentRepository, positionRepository master.PositionRepository) master.MasterService {
	return &MasterServiceImpl{
		departmentRepository: departmentRepository,
		positionRepository:   positionRepository,
	}
}

// CreateDepartment implements master.MasterService.
func (s *MasterServiceImpl) CreateDepartment(ctx context.Context, req master.UpsertDepartmentRequest) (master.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return master.DepartmentResponse{}, err
	}

	created, err := s.departmentRepository.Create(ctx, master.Department{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return master.DepartmentResponse{}, err
	}

	return toDepartmentResponse(created), nil
}

// ListDepartments implements master.MasterService.
func (s *MasterServiceImpl) ListDepartments(ctx context.Context) ([]master.DepartmentResponse, error) {
	departments, err := s.departmentRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]master.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		resp = append(resp, toDepartmentResponse(d))
	}
	return resp, nil
}

// UpdateDepartment implements master.MasterService.
func (s *MasterServiceImpl) UpdateDepartment(ctx context.Context, req master.UpsertDepartmentRequest) (master.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return master.DepartmentResponse{}, err
	}

	updated, err := s.departmentRepository.Update(ctx, master.Department{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return master.DepartmentResponse{}, err
	}

	return toDepartmentResponse(updated), nil
}

// DeleteDepartment implements master.MasterService.
func (s *MasterServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	return s.departmentRepository.Delete(ctx, id)
}

// CreatePosition implements master.MasterService.
func (s *MasterServiceImpl) CreatePosition(ctx context.Context, req master.UpsertPositionRequest) (master.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return master.PositionResponse{}, err
	}

	if req.DepartmentID != nil {
		if _, err := s.departmentRepository.GetByID(ctx, *req.DepartmentID); err != nil {
			return master.PositionResponse{}, err
		}
	}

	created, err := s.positionRepository.Create(ctx, master.Position{
		Title:        req.Title,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		return master.PositionResponse{}, err
	}

	return toPositionResponse(created), nil
}

// ListPositions implements master.MasterService.
func (s *MasterServiceImpl) ListPositions(ctx context.Context) ([]master.PositionResponse, error) {
	positions, err := s.positionRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]master.PositionResponse, 0, len(positions))
	for _, p := range positions {
		resp = append(resp, toPositionResponse(p))
	}
	return resp, nil
}

// UpdatePosition implements master.MasterService.
func (s *MasterServiceImpl) UpdatePosition(ctx context.Context, req master.UpsertPositionRequest) (master.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return master.PositionResponse{}, err
	}

	if req.DepartmentID != nil {
		if _, err := s.departmentRepository.GetByID(ctx, *req.DepartmentID); err != nil {
			return master.PositionResponse{}, err
		}
	}

	updated, err := s.positionRepository.Update(ctx, master.Position{
		ID:           req.ID,
		Title:        req.Title,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		return master.PositionResponse{}, err
	}

	return toPositionResponse(updated), nil
}

// DeletePosition implements master.MasterService.
func (s *MasterServiceImpl) DeletePosition(ctx context.Context, id string) error {
	return s.positionRepository.Delete(ctx, id)
}

func toDepartmentResponse(d master.Department) master.DepartmentResponse {
	return master.DepartmentResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
	}
}

func toPositionResponse(p master.Position) master.PositionResponse {
	return master.PositionResponse{
		ID:             p.ID,
		Title:          p.Title,
		DepartmentID:   p.DepartmentID,
		DepartmentName: p.DepartmentName,
	}
}
