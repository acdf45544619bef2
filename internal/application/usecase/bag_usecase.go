package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/ecopack/ecopack-api/internal/application/dto"
	"github.com/ecopack/ecopack-api/internal/domain"
	"github.com/ecopack/ecopack-api/internal/domain/entity"
	"github.com/ecopack/ecopack-api/internal/domain/repository"
)

// BagUseCase casos de uso CRUD para el stock de bolsas terminadas.
type BagUseCase struct {
	repo repository.BagRepository
}

// NewBagUseCase construye el caso de uso.
func NewBagUseCase(repo repository.BagRepository) *BagUseCase {
	return &BagUseCase{repo: repo}
}

// Create da de alta un bag nuevo. Variedad, color y GSM deben pertenecer al
// catálogo; la cantidad no puede ser negativa. Location vacío usa la bodega
// por defecto.
func (uc *BagUseCase) Create(in dto.CreateBagRequest) (*dto.BagResponse, error) {
	if !entity.ValidVariety(in.Variety) || !entity.ValidColor(in.Color) || !entity.ValidGSM(in.GSM) {
		return nil, domain.ErrInvalidInput
	}
	if in.QuantityBales < 0 {
		return nil, domain.ErrInvalidInput
	}
	location := in.Location
	if location == "" {
		location = entity.DefaultLocation
	}
	bag := &entity.Bag{
		ID:            uuid.New().String(),
		Variety:       in.Variety,
		Color:         in.Color,
		GSM:           in.GSM,
		QuantityBales: in.QuantityBales,
		Location:      location,
		LastUpdated:   time.Now(),
	}
	if err := uc.repo.Create(bag); err != nil {
		return nil, err
	}
	return toBagResponse(bag), nil
}

// GetByID obtiene un bag por ID.
func (uc *BagUseCase) GetByID(id string) (*dto.BagResponse, error) {
	bag, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if bag == nil {
		return nil, domain.ErrNotFound
	}
	return toBagResponse(bag), nil
}

// List lista bags, los más recientemente actualizados primero.
func (uc *BagUseCase) List(page dto.PageRequest) ([]*dto.BagResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BagResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBagResponse(b))
	}
	return out, nil
}

// Update reemplaza los campos editables del bag y refresca last_updated.
// Cambiar quantity_bales aquí es una corrección administrativa, no pasa por el
// libro de inventario.
func (uc *BagUseCase) Update(id string, in dto.UpdateBagRequest) (*dto.BagResponse, error) {
	if !entity.ValidVariety(in.Variety) || !entity.ValidColor(in.Color) || !entity.ValidGSM(in.GSM) {
		return nil, domain.ErrInvalidInput
	}
	if in.QuantityBales < 0 {
		return nil, domain.ErrInvalidInput
	}
	bag, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if bag == nil {
		return nil, domain.ErrNotFound
	}
	bag.Variety = in.Variety
	bag.Color = in.Color
	bag.GSM = in.GSM
	bag.QuantityBales = in.QuantityBales
	if in.Location != "" {
		bag.Location = in.Location
	}
	bag.LastUpdated = time.Now()
	if err := uc.repo.Update(bag); err != nil {
		return nil, err
	}
	return toBagResponse(bag), nil
}

// Delete elimina el bag; sus órdenes caen en cascada (descarta historial de
// ventas, riesgo asumido del modelo).
func (uc *BagUseCase) Delete(id string) error {
	bag, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if bag == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toBagResponse(b *entity.Bag) *dto.BagResponse {
	return &dto.BagResponse{
		ID:            b.ID,
		Variety:       b.Variety,
		Color:         b.Color,
		GSM:           b.GSM,
		QuantityBales: b.QuantityBales,
		Location:      b.Location,
		Label:         b.Label(),
		LastUpdated:   b.LastUpdated,
	}
}
