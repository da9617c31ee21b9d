package entity

type Medicine struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       int    `json:"price"` // minor currency units
	Rating      int    `json:"rating"`
	RatingCount int    `json:"ratingCount"`
	InStock     bool   `json:"inStock"`
}

// NewMedicine is the input for a catalog insert. A nil InStock means in stock.
type NewMedicine struct {
	Name        string
	Description string
	Category    string
	Price       int
	Rating      int
	RatingCount int
	InStock     *bool
}

// Medicine builds the catalog entry, applying defaults for unset fields.
func (n NewMedicine) Medicine() Medicine {
	m := Medicine{
		Name:        n.Name,
		Description: n.Description,
		Category:    n.Category,
		Price:       n.Price,
		Rating:      n.Rating,
		RatingCount: n.RatingCount,
		InStock:     true,
	}
	if n.InStock != nil {
		m.InStock = *n.InStock
	}
	return m
}
