package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/loopbakery/bakeshop/internal/domain/errors"
	"github.com/loopbakery/bakeshop/internal/domain/model"
)

const productColumns = `p.id, p.category_id, COALESCE(c.name, ''), COALESCE(c.slug, ''), p.title, p.slug, p.description, p.price, p.offer_percentage, p.stock, p.image_url, p.is_available, p.created_at, p.updated_at`

func scanProduct(row pgx.Row, p *model.Product) error {
	return row.Scan(&p.ID, &p.CategoryID, &p.CategoryName, &p.CategorySlug, &p.Title, &p.Slug,
		&p.Description, &p.Price, &p.OfferPercentage, &p.Stock, &p.ImageURL, &p.IsAvailable,
		&p.CreatedAt, &p.UpdatedAt)
}

func (r *productRepository) collect(rows pgx.Rows) ([]model.Product, error) {
	defer rows.Close()
	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *productRepository) ListAvailable(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns + `
              FROM products p
              LEFT JOIN categories c ON c.id = p.category_id
              WHERE p.is_available = TRUE
              ORDER BY p.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

// GetByIDOrSlug resolves a product by numeric id or by slug, matching the
// public catalog URLs.
func (r *productRepository) GetByIDOrSlug(ctx context.Context, idOrSlug string) (*model.Product, error) {
	query := `SELECT ` + productColumns + `
              FROM products p
              LEFT JOIN categories c ON c.id = p.category_id
              WHERE p.id::TEXT = $1 OR p.slug = $1`
	var p model.Product
	if err := scanProduct(r.storage.pool.QueryRow(ctx, query, idOrSlug), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) ListByCategory(ctx context.Context, idOrSlug string) ([]model.Product, error) {
	query := `SELECT ` + productColumns + `
              FROM products p
              LEFT JOIN categories c ON c.id = p.category_id
              WHERE (c.id::TEXT = $1 OR c.slug = $1) AND p.is_available = TRUE
              ORDER BY p.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, idOrSlug)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *productRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	const query = `SELECT c.id, c.name, c.slug, COUNT(p.id), c.created_at
                   FROM categories c
                   LEFT JOIN products p ON p.category_id = c.id AND p.is_available = TRUE
                   GROUP BY c.id
                   ORDER BY c.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.ProductCount, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *productRepository) CountLowStock(ctx context.Context, threshold int) (int64, error) {
	const query = `SELECT COUNT(*) FROM products WHERE stock < $1 AND is_available = TRUE`
	var count int64
	if err := r.storage.pool.QueryRow(ctx, query, threshold).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *productRepository) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (category_id, title, slug, description, price, offer_percentage, stock, image_url, is_available)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE)
                   RETURNING id, is_available, created_at, updated_at`
	created := *p
	err := r.storage.pool.QueryRow(ctx, query,
		p.CategoryID, p.Title, p.Slug, p.Description, p.Price, p.OfferPercentage, p.Stock, p.ImageURL,
	).Scan(&created.ID, &created.IsAvailable, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *productRepository) Update(ctx context.Context, p *model.Product) (*model.Product, error) {
	const query = `UPDATE products
                   SET category_id=$1, title=$2, slug=$3, description=$4, price=$5,
                       offer_percentage=$6, stock=$7, image_url=$8, is_available=$9, updated_at=NOW()
                   WHERE id=$10
                   RETURNING created_at, updated_at`
	updated := *p
	err := r.storage.pool.QueryRow(ctx, query,
		p.CategoryID, p.Title, p.Slug, p.Description, p.Price, p.OfferPercentage,
		p.Stock, p.ImageURL, p.IsAvailable, p.ID,
	).Scan(&updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (r *productRepository) Delete(ctx context.Context, productID int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
