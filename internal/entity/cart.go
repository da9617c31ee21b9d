package entity

// MaxCartQuantity bounds the quantity of a single cart line.
const MaxCartQuantity = 99

type CartItem struct {
	ID         int `json:"id"`
	UserID     int `json:"userId"`
	MedicineID int `json:"medicineId"`
	Quantity   int `json:"quantity"`
}

// CartLine is a cart item joined with its catalog entry.
type CartLine struct {
	CartItem
	Medicine Medicine `json:"medicine"`
}

// Subtotal returns quantity * price in minor units.
func (l CartLine) Subtotal() int {
	return l.Quantity * l.Medicine.Price
}
