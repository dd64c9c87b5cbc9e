// Package catalogd is a local stand-in for the remote catalog API, used
// for offline development and handler tests. It serves the same JSON
// shapes the real catalog does.
package catalogd

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	// keeps :memory: databases on a single conn
	db.SetMaxOpenConns(1)
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed demo products if the DB is empty
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY,
  title TEXT NOT NULL,
  price NUMERIC NOT NULL CHECK (price >= 0),
  description TEXT,
  category TEXT NOT NULL,
  image TEXT,
  rating_rate NUMERIC NOT NULL DEFAULT 0,
  rating_count INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
CREATE INDEX IF NOT EXISTS idx_products_title    ON products(LOWER(title));
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo products")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO products(id,title,price,description,category,image,rating_rate,rating_count) VALUES
	  (1,'Fjallraven Foldsack Backpack',109.95,'Fits 15 inch laptops, everyday use','men''s clothing','img/1.png',3.9,120),
	  (2,'Mens Casual Premium Slim Fit T-Shirt',22.3,'Slim fit, contrast raglan sleeves','men''s clothing','img/2.png',4.1,259),
	  (3,'Mens Cotton Jacket',55.99,'Great for spring, autumn and winter','men''s clothing','img/3.png',4.7,500),
	  (4,'John Hardy Chain Bracelet',695.0,'Legends Naga collection','jewelery','img/4.png',4.6,400),
	  (5,'Solid Gold Petite Micropave Ring',168.0,'Satisfaction guaranteed','jewelery','img/5.png',3.9,70),
	  (6,'SanDisk 1TB Portable SSD',109.0,'USB-C, up to 1050MB/s','electronics','img/6.png',2.9,470),
	  (7,'Acer 21.5in Full HD Monitor',599.0,'IPS panel, ultra-thin','electronics','img/7.png',2.9,250),
	  (8,'Womens Removable Hooded Jacket',39.99,'Lightweight faux-leather','women''s clothing','img/8.png',2.6,235),
	  (9,'Womens Short Sleeve Boat Neck Tee',9.85,'95% rayon, 5% spandex','women''s clothing','img/9.png',4.7,130)`)
	return tx.Commit()
}
