package cart

import "errors"

var (
	ErrMissingProductID = errors.New("missing product id")
	ErrNegativePrice    = errors.New("negative unit price")
)

// ProductRef is what the catalog hands to AddItem: the product identity and
// the display data the cart captures at add time. The cart never re-reads
// the catalog afterwards.
type ProductRef struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	NameAr        string   `json:"name_ar"`
	UnitPrice     float64  `json:"unit_price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	ImageURL      string   `json:"image_url,omitempty"`
}

// Validate rejects refs the cart must not accept
func (r ProductRef) Validate() error {
	if r.ID == "" {
		return ErrMissingProductID
	}
	if r.UnitPrice < 0 {
		return ErrNegativePrice
	}
	return nil
}

// LineItem is one product-and-quantity entry in the cart. Display fields
// are immutable once captured; Quantity is always >= 1 while the item exists.
type LineItem struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	NameAr        string   `json:"name_ar"`
	UnitPrice     float64  `json:"unit_price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	ImageURL      string   `json:"image_url,omitempty"`
	Quantity      int      `json:"quantity"`
}

// Subtotal returns unit price times quantity for this line
func (li LineItem) Subtotal() float64 {
	return li.UnitPrice * float64(li.Quantity)
}
