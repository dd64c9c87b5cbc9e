package catalogd

import (
	"github.com/jmoiron/sqlx"

	"pocketshop/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

type productRow struct {
	ID          int64   `db:"id"`
	Title       string  `db:"title"`
	Price       float64 `db:"price"`
	Description string  `db:"description"`
	Category    string  `db:"category"`
	Image       string  `db:"image"`
	RatingRate  float64 `db:"rating_rate"`
	RatingCount int     `db:"rating_count"`
}

func (r productRow) toDomain() domain.Product {
	return domain.Product{
		ID:          r.ID,
		Title:       r.Title,
		Price:       r.Price,
		Description: r.Description,
		Category:    r.Category,
		Image:       r.Image,
		Rating:      domain.Rating{Rate: r.RatingRate, Count: r.RatingCount},
	}
}

const productCols = `id, title, price, COALESCE(description,'') AS description,
	  category, COALESCE(image,'') AS image, rating_rate, rating_count`

func (r *ProductRepo) List() ([]domain.Product, error) {
	var rows []productRow
	err := r.db.Select(&rows, `
	  SELECT `+productCols+`
	  FROM products
	  ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var row productRow
	err := r.db.Get(&row, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE id = ?
	`, id)
	if err != nil {
		return domain.Product{}, err
	}
	return row.toDomain(), nil
}

// Categories are the distinct labels in use, alphabetical.
func (r *ProductRepo) Categories() ([]string, error) {
	var out []string
	err := r.db.Select(&out, `SELECT DISTINCT category FROM products ORDER BY category`)
	return out, err
}
