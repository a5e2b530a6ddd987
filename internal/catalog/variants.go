package catalog

// Smartphone is a Product with smartphone-specific attributes. It shares
// every Product invariant and operation; the extra fields are pure data.
type Smartphone struct {
	Product
	Efficiency float64
	Model      string
	Memory     int
	Color      string
}

// NewSmartphone constructs a smartphone product.
func NewSmartphone(name, description string, price float64, quantity int, efficiency float64, model string, memory int, color string) (*Smartphone, error) {
	p, err := newProduct(kindSmartphone, name, description, price, quantity)
	if err != nil {
		return nil, err
	}
	return &Smartphone{
		Product:    *p,
		Efficiency: efficiency,
		Model:      model,
		Memory:     memory,
		Color:      color,
	}, nil
}

// LawnGrass is a Product with lawn-grass-specific attributes.
type LawnGrass struct {
	Product
	Country           string
	GerminationPeriod string
	Color             string
}

// NewLawnGrass constructs a lawn grass product.
func NewLawnGrass(name, description string, price float64, quantity int, country, germinationPeriod, color string) (*LawnGrass, error) {
	p, err := newProduct(kindLawnGrass, name, description, price, quantity)
	if err != nil {
		return nil, err
	}
	return &LawnGrass{
		Product:           *p,
		Country:           country,
		GerminationPeriod: germinationPeriod,
		Color:             color,
	}, nil
}
