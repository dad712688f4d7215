package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/loopbakery/bakeshop/internal/domain/errors"
	"github.com/loopbakery/bakeshop/internal/domain/model"
)

func (r *cartRepository) ListByUser(ctx context.Context, userID int64) ([]model.CartLine, error) {
	const query = `SELECT c.id, c.user_id, c.product_id, p.title, p.slug, p.price, p.image_url, p.stock, p.offer_percentage, c.quantity, p.price * c.quantity, c.created_at
                   FROM cart c
                   JOIN products p ON p.id = c.product_id
                   WHERE c.user_id = $1
                   ORDER BY c.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.CartLine
	for rows.Next() {
		var l model.CartLine
		if err := rows.Scan(&l.ID, &l.UserID, &l.ProductID, &l.Title, &l.Slug, &l.Price,
			&l.ImageURL, &l.Stock, &l.OfferPercentage, &l.Quantity, &l.Subtotal, &l.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	return result, rows.Err()
}

// Add inserts a cart line or bumps the quantity when the product is already
// in the cart.
func (r *cartRepository) Add(ctx context.Context, userID, productID int64) error {
	const query = `INSERT INTO cart (user_id, product_id, quantity)
                   VALUES ($1, $2, 1)
                   ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = cart.quantity + 1`
	_, err := r.storage.pool.Exec(ctx, query, userID, productID)
	return err
}

// ChangeQuantity adjusts a line by delta. Dropping below one deletes the line.
func (r *cartRepository) ChangeQuantity(ctx context.Context, userID, lineID int64, delta int) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var quantity int
		err := tx.QueryRow(ctx, `SELECT quantity FROM cart WHERE id=$1 AND user_id=$2 FOR UPDATE`, lineID, userID).Scan(&quantity)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if quantity+delta < 1 {
			_, err = tx.Exec(ctx, `DELETE FROM cart WHERE id=$1 AND user_id=$2`, lineID, userID)
			return err
		}

		_, err = tx.Exec(ctx, `UPDATE cart SET quantity = quantity + $1 WHERE id=$2 AND user_id=$3`, delta, lineID, userID)
		return err
	})
}

func (r *cartRepository) Remove(ctx context.Context, userID, lineID int64) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM cart WHERE id=$1 AND user_id=$2`, lineID, userID)
	return err
}

func (r *cartRepository) Clear(ctx context.Context, userID int64) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM cart WHERE user_id=$1`, userID)
	return err
}

// SweepAbandoned removes up to limit cart lines older than cutoff. Rows are
// locked with SKIP LOCKED so concurrent sweeps and checkouts do not contend.
func (r *cartRepository) SweepAbandoned(ctx context.Context, cutoff time.Time, limit int) (int64, error) {
	var removed int64
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const query = `DELETE FROM cart
                       WHERE id IN (
                           SELECT id FROM cart
                           WHERE created_at < $1
                           ORDER BY created_at
                           LIMIT $2
                           FOR UPDATE SKIP LOCKED
                       )`
		tag, err := tx.Exec(ctx, query, cutoff, limit)
		if err != nil {
			return err
		}
		removed = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
