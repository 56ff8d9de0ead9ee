package domain

// Form is the way the coffee is sold.
type Form string

const (
	FormNone   Form = ""
	FormBean   Form = "grano"
	FormGround Form = "molido"
)

func (f Form) Valid() bool {
	switch f {
	case FormNone, FormBean, FormGround:
		return true
	}
	return false
}

type Variety string

const (
	VarietyArabica  Variety = "arabica"
	VarietyRobusta  Variety = "robusta"
	VarietyLiberica Variety = "liberica"
	VarietyExcelsa  Variety = "excelsa"
)

func (v Variety) Valid() bool {
	switch v {
	case VarietyArabica, VarietyRobusta, VarietyLiberica, VarietyExcelsa:
		return true
	}
	return false
}

type Roast string

const (
	RoastLight  Roast = "Suave"
	RoastMedium Roast = "Medio"
	RoastDark   Roast = "Fuerte"
)

func (r Roast) Valid() bool {
	switch r {
	case RoastLight, RoastMedium, RoastDark:
		return true
	}
	return false
}

var (
	Forms     = []Form{FormBean, FormGround, FormNone}
	Varieties = []Variety{VarietyArabica, VarietyRobusta, VarietyLiberica, VarietyExcelsa}
	Roasts    = []Roast{RoastLight, RoastMedium, RoastDark}
)

// A Product is a catalog item.
//
// ID is assigned by the backend, zero means the product is not persisted yet.
type Product struct {
	ID        int64
	Name      string
	Origin    string
	Form      Form
	Variety   Variety
	Roast     Roast
	Intensity int
	Price     float64
	Stock     int
	Sales     int
	Image     string
}

func (p Product) HasID() bool {
	return p.ID != 0
}

// DefaultProduct returns the blank value of the product editor.
func DefaultProduct() Product {
	return Product{
		Form:      FormBean,
		Variety:   VarietyArabica,
		Roast:     RoastLight,
		Intensity: 1,
	}
}
