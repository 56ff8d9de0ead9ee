package httphandler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/niksmo/coffee-admin/internal/core/domain"
)

var ErrInvalidForm = errors.New("invalid form")

// Form field names follow the backend resource.
const (
	fieldID        = "id_cafe"
	fieldName      = "nombre"
	fieldOrigin    = "origen"
	fieldForm      = "tipo"
	fieldVariety   = "grano"
	fieldRoast     = "tueste"
	fieldIntensity = "intensidad"
	fieldPrice     = "precio"
	fieldStock     = "stock"
	fieldSales     = "ventas"
	fieldImage     = "imagen"
)

// parseProduct reads the editor form. An empty id field means a new product.
func parseProduct(r *http.Request) (domain.Product, error) {
	if err := r.ParseForm(); err != nil {
		return domain.Product{}, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	f := formReader{r: r}
	p := domain.Product{
		ID:        f.id(fieldID),
		Name:      f.text(fieldName),
		Origin:    f.text(fieldOrigin),
		Form:      domain.Form(f.text(fieldForm)),
		Variety:   domain.Variety(f.text(fieldVariety)),
		Roast:     domain.Roast(f.text(fieldRoast)),
		Intensity: f.integer(fieldIntensity),
		Price:     f.number(fieldPrice),
		Stock:     f.integer(fieldStock),
		Sales:     f.integer(fieldSales),
		Image:     f.text(fieldImage),
	}

	if !p.Form.Valid() {
		f.fail(fieldForm)
	}
	if !p.Variety.Valid() {
		f.fail(fieldVariety)
	}
	if !p.Roast.Valid() {
		f.fail(fieldRoast)
	}

	if err := errors.Join(f.errs...); err != nil {
		return domain.Product{}, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	return p, nil
}

type formReader struct {
	r    *http.Request
	errs []error
}

func (f *formReader) text(name string) string {
	return strings.TrimSpace(f.r.PostForm.Get(name))
}

func (f *formReader) id(name string) int64 {
	s := f.text(name)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		f.fail(name)
	}
	return v
}

func (f *formReader) integer(name string) int {
	s := f.text(name)
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		f.fail(name)
	}
	return v
}

func (f *formReader) number(name string) float64 {
	s := f.text(name)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		f.fail(name)
	}
	return v
}

func (f *formReader) fail(name string) {
	f.errs = append(f.errs, fmt.Errorf("field %q", name))
}
