package domain

// Product is a catalog item as served by the remote catalog API.
// Products are read-only on the client: fetched, never mutated locally.
type Product struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}

// Rating is the catalog-supplied rating summary.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Review is a locally-authored product review. Reviews are append-only:
// once stored they are never edited or deleted.
type Review struct {
	ID        string `json:"id"`
	ProductID int64  `json:"productId"`
	Rating    int    `json:"rating"` // 1..5
	Comment   string `json:"comment"`
	Author    string `json:"author"`
	CreatedAt string `json:"timestamp"` // RFC3339
}
