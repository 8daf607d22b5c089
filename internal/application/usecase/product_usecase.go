package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/inventory-micro/internal/application/dto"
	"github.com/tu-usuario/inventory-micro/internal/domain"
	"github.com/tu-usuario/inventory-micro/internal/domain/entity"
	"github.com/tu-usuario/inventory-micro/internal/domain/repository"
)

// ProductUseCase casos de uso de productos: crear y listar. El stock solo se
// crea aquí (valor inicial); toda mutación posterior pasa por el motor de
// stock, nunca por una escritura directa.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto para la empresa del caller. El stock inicial
// por defecto es 0; un inicial negativo es inválido.
func (uc *ProductUseCase) Create(ctx context.Context, companyID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Stock:     int64(in.Stock),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// List lista los productos de la empresa con paginación.
func (uc *ProductUseCase) List(ctx context.Context, companyID string, limit, offset int) (*dto.ProductListResponse, error) {
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	products := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		products = append(products, *ToProductResponse(p))
	}
	return &dto.ProductListResponse{Products: products}, nil
}

// ToProductResponse convierte la entidad al DTO de salida.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		CompanyID: p.CompanyID,
		Name:      p.Name,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
