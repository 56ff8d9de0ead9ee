package httphandler

import "github.com/niksmo/coffee-admin/internal/core/domain"

type (
	Product struct {
		ID        int64   `json:"id"`
		Name      string  `json:"name"`
		Origin    string  `json:"origin"`
		Form      string  `json:"form"`
		Variety   string  `json:"variety"`
		Roast     string  `json:"roast"`
		Intensity int     `json:"intensity"`
		Price     float64 `json:"price"`
		Stock     int     `json:"stock"`
		Sales     int     `json:"sales"`
		Image     string  `json:"image"`
	}

	ProductsResponse struct {
		Products []Product `json:"products"`
		Loading  bool      `json:"loading"`
		Error    string    `json:"error,omitempty"`
		Version  uint64    `json:"version"`
	}

	TopResponse struct {
		Products []Product `json:"products"`
	}

	ChartsResponse struct {
		Labels []string `json:"labels"`
		Stock  []int    `json:"stock"`
		Sales  []int    `json:"sales"`
	}
)

func toProducts(ps []domain.Product) []Product {
	vs := make([]Product, len(ps))
	for i, p := range ps {
		vs[i] = Product{
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
	return vs
}
