package model

import "time"

// CartLine is one line item of a visitor's cart. Display fields are captured
// when the line is created and never re-synced with the catalog.
type CartLine struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
	Thumbnail string  `json:"thumbnail"`
	Qty       int     `json:"qty"`
}

// Subtotal is price times quantity.
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Qty)
}

// CartSlot is a named key/value slot holding the JSON serialized line list.
type CartSlot struct {
	Key       string    `gorm:"column:slot_key;primaryKey;size:191" json:"key"`
	Payload   string    `gorm:"type:text;not null" json:"payload"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CartSlot) TableName() string {
	return "cart_slots"
}
