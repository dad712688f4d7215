package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/loopbakery/bakeshop/internal/domain/errors"
	"github.com/loopbakery/bakeshop/internal/domain/model"
)

const addressColumns = `id, user_id, name, street, city, state, postal_code, country, mobile, is_default, created_at, updated_at`

func scanAddress(row pgx.Row, a *model.Address) error {
	return row.Scan(&a.ID, &a.UserID, &a.Name, &a.Street, &a.City, &a.State,
		&a.PostalCode, &a.Country, &a.Mobile, &a.IsDefault, &a.CreatedAt, &a.UpdatedAt)
}

func (r *addressRepository) ListByUser(ctx context.Context, userID int64) ([]model.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE user_id=$1 ORDER BY is_default DESC, created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Address
	for rows.Next() {
		var a model.Address
		if err := scanAddress(rows, &a); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

// Create inserts a new address. Marking it default unsets the previous
// default inside the same transaction.
func (r *addressRepository) Create(ctx context.Context, a *model.Address) (*model.Address, error) {
	created := *a
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if a.IsDefault {
			if _, err := tx.Exec(ctx, `UPDATE addresses SET is_default = FALSE WHERE user_id=$1`, a.UserID); err != nil {
				return err
			}
		}
		const query = `INSERT INTO addresses (user_id, name, street, city, state, postal_code, country, mobile, is_default)
                       VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                       RETURNING id, created_at, updated_at`
		return tx.QueryRow(ctx, query,
			a.UserID, a.Name, a.Street, a.City, a.State, a.PostalCode, a.Country, a.Mobile, a.IsDefault,
		).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *addressRepository) Update(ctx context.Context, a *model.Address) (*model.Address, error) {
	updated := *a
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if a.IsDefault {
			if _, err := tx.Exec(ctx, `UPDATE addresses SET is_default = FALSE WHERE user_id=$1 AND id<>$2`, a.UserID, a.ID); err != nil {
				return err
			}
		}
		const query = `UPDATE addresses
                       SET name=$1, street=$2, city=$3, state=$4, postal_code=$5, country=$6, mobile=$7, is_default=$8, updated_at=NOW()
                       WHERE id=$9 AND user_id=$10
                       RETURNING created_at, updated_at`
		err := tx.QueryRow(ctx, query,
			a.Name, a.Street, a.City, a.State, a.PostalCode, a.Country, a.Mobile, a.IsDefault, a.ID, a.UserID,
		).Scan(&updated.CreatedAt, &updated.UpdatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrNotFound
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *addressRepository) Delete(ctx context.Context, userID, addressID int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM addresses WHERE id=$1 AND user_id=$2`, addressID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
