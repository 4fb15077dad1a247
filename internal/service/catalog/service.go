package catalog

import "github.com/Totaedandan/auame/internal/domain"

// ServiceResponse услуга студии
type ServiceResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
}

// Service неизменяемый каталог услуг
type Service struct {
	items []domain.Service
}

// NewService создает каталог. nil означает каталог по умолчанию.
func NewService(items []domain.Service) *Service {
	if items == nil {
		items = domain.DefaultCatalog()
	}
	cp := make([]domain.Service, len(items))
	copy(cp, items)
	return &Service{items: cp}
}

// List возвращает услуги в порядке каталога
func (s *Service) List() []ServiceResponse {
	resp := make([]ServiceResponse, 0, len(s.items))
	for _, item := range s.items {
		resp = append(resp, ServiceResponse{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Duration: item.Duration,
		})
	}
	return resp
}
