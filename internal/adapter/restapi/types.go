package restapi

import "github.com/niksmo/coffee-admin/internal/core/domain"

// product is the wire format of the remote resource.
type product struct {
	ID        int64   `json:"id_cafe,omitempty"`
	Name      string  `json:"nombre"`
	Origin    string  `json:"origen"`
	Form      string  `json:"tipo"`
	Variety   string  `json:"grano"`
	Roast     string  `json:"tueste"`
	Intensity int     `json:"intensidad"`
	Price     float64 `json:"precio"`
	Stock     int     `json:"stock"`
	Sales     int     `json:"ventas"`
	Image     string  `json:"imagen"`
}

func fromDomain(p domain.Product) product {
	return product{
		ID:        p.ID,
		Name:      p.Name,
		Origin:    p.Origin,
		Form:      string(p.Form),
		Variety:   string(p.Variety),
		Roast:     string(p.Roast),
		Intensity: p.Intensity,
		Price:     p.Price,
		Stock:     p.Stock,
		Sales:     p.Sales,
		Image:     p.Image,
	}
}

func (p product) toDomain() domain.Product {
	return domain.Product{
		ID:        p.ID,
		Name:      p.Name,
		Origin:    p.Origin,
		Form:      domain.Form(p.Form),
		Variety:   domain.Variety(p.Variety),
		Roast:     domain.Roast(p.Roast),
		Intensity: p.Intensity,
		Price:     p.Price,
		Stock:     p.Stock,
		Sales:     p.Sales,
		Image:     p.Image,
	}
}
