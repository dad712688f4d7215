package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/loopbakery/bakeshop/internal/domain/errors"
	"github.com/loopbakery/bakeshop/internal/domain/model"
	"github.com/loopbakery/bakeshop/internal/domain/repository"
)

// Place converts the caller's cart into a durable order, exactly once. The
// order row, its line items and the cart deletion commit together or not at
// all. Cart rows are locked first so two concurrent checkouts from the same
// cart cannot both consume it.
func (r *orderRepository) Place(ctx context.Context, userID int64, number string, draft model.OrderDraft) (*model.Order, error) {
	var order model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `SELECT id FROM cart WHERE user_id=$1 FOR UPDATE`, userID)
		if err != nil {
			return err
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		method, payStatus := model.ClassifyPayment(draft.PaymentID)
		total := draft.Total()

		const insertOrder = `INSERT INTO orders (user_id, address_id, order_number, total_amount, status, payment_method, payment_status, notes)
                             VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                             RETURNING id, created_at, updated_at`
		err = tx.QueryRow(ctx, insertOrder,
			userID, draft.AddressID, number, total,
			model.OrderStatusPending, method, payStatus, nullableText(draft.Notes),
		).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			return err
		}

		order.UserID = userID
		order.AddressID = draft.AddressID
		order.Number = number
		order.TotalAmount = total
		order.Status = model.OrderStatusPending
		order.PaymentMethod = method
		order.PaymentStatus = payStatus
		order.Notes = draft.Notes

		const insertItem = `INSERT INTO order_items (order_id, product_id, product_name, quantity, price, subtotal)
                            VALUES ($1, $2, $3, $4, $5, $6)
                            RETURNING id`
		for _, it := range draft.Items {
			subtotal := it.Price * float64(it.Quantity)
			var itemID int64
			if err := tx.QueryRow(ctx, insertItem, order.ID, it.ProductID, it.Title, it.Quantity, it.Price, subtotal).Scan(&itemID); err != nil {
				return err
			}
			order.Items = append(order.Items, model.OrderItem{
				ID:          itemID,
				OrderID:     order.ID,
				ProductID:   it.ProductID,
				ProductName: it.Title,
				ImageURL:    it.ImageURL,
				Quantity:    it.Quantity,
				Price:       it.Price,
				Subtotal:    subtotal,
			})
		}

		if _, err := tx.Exec(ctx, `DELETE FROM cart WHERE user_id=$1`, userID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

const orderColumns = `id, user_id, address_id, order_number, total_amount, status, payment_method, payment_status, COALESCE(notes, ''), created_at, updated_at`

func scanOrder(row pgx.Row, o *model.Order) error {
	return row.Scan(&o.ID, &o.UserID, &o.AddressID, &o.Number, &o.TotalAmount,
		&o.Status, &o.PaymentMethod, &o.PaymentStatus, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachItems(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) GetByID(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1 AND user_id=$2`
	var o model.Order
	if err := scanOrder(r.storage.pool.QueryRow(ctx, query, orderID, userID), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	orders := []model.Order{o}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// attachItems loads line items for the given orders in one round trip. The
// current product image is joined at read time; amounts always come from the
// snapshot.
func (r *orderRepository) attachItems(ctx context.Context, orders []model.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(orders))
	index := make(map[int64]*model.Order, len(orders))
	for i := range orders {
		ids = append(ids, orders[i].ID)
		index[orders[i].ID] = &orders[i]
	}

	const query = `SELECT oi.id, oi.order_id, oi.product_id, oi.product_name, COALESCE(p.image_url, ''), oi.quantity, oi.price, oi.subtotal
                   FROM order_items oi
                   LEFT JOIN products p ON p.id = oi.product_id
                   WHERE oi.order_id = ANY($1)
                   ORDER BY oi.id`
	rows, err := r.storage.pool.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.ImageURL, &it.Quantity, &it.Price, &it.Subtotal); err != nil {
			return err
		}
		if o, ok := index[it.OrderID]; ok {
			o.Items = append(o.Items, it)
		}
	}
	return rows.Err()
}

func (r *orderRepository) ListAll(ctx context.Context) ([]repository.AdminOrder, error) {
	const query = `SELECT o.id, o.user_id, o.address_id, o.order_number, o.total_amount, o.status, o.payment_method, o.payment_status, COALESCE(o.notes, ''), o.created_at, o.updated_at, u.id, u.email
                   FROM orders o
                   LEFT JOIN users u ON u.id = o.user_id
                   ORDER BY o.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []repository.AdminOrder
	for rows.Next() {
		var o repository.AdminOrder
		if err := rows.Scan(&o.ID, &o.UserID, &o.AddressID, &o.Number, &o.TotalAmount,
			&o.Status, &o.PaymentMethod, &o.PaymentStatus, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
			&o.CustomerID, &o.CustomerEmail); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	orders := make([]model.Order, len(result))
	for i := range result {
		orders[i] = result[i].Order
	}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	for i := range result {
		result[i].Items = orders[i].Items
	}
	return result, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	query := `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2 RETURNING ` + orderColumns
	var o model.Order
	if err := scanOrder(r.storage.pool.QueryRow(ctx, query, status, orderID), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) TotalSales(ctx context.Context) (float64, error) {
	const query = `SELECT COALESCE(SUM(total_amount), 0)
                   FROM orders
                   WHERE payment_status='paid' OR status='completed'`
	var total float64
	if err := r.storage.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *orderRepository) CountOrders(ctx context.Context) (int64, int64, error) {
	const query = `SELECT COUNT(*), COUNT(*) FILTER (WHERE status IN ('pending', 'processing')) FROM orders`
	var total, active int64
	if err := r.storage.pool.QueryRow(ctx, query).Scan(&total, &active); err != nil {
		return 0, 0, err
	}
	return total, active, nil
}

func (r *orderRepository) RecentOrders(ctx context.Context, limit int) ([]repository.AdminOrder, error) {
	const query = `SELECT o.id, o.order_number, o.total_amount, o.status, o.created_at, COALESCE(u.email, '')
                   FROM orders o
                   LEFT JOIN users u ON u.id = o.user_id
                   ORDER BY o.created_at DESC
                   LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []repository.AdminOrder
	for rows.Next() {
		var o repository.AdminOrder
		if err := rows.Scan(&o.ID, &o.Number, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.CustomerEmail); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, rows.Err()
}

func (r *orderRepository) SalesSince(ctx context.Context, since time.Time) ([]repository.SalesPoint, error) {
	const query = `SELECT DATE(created_at), COUNT(*), COALESCE(SUM(total_amount), 0)
                   FROM orders
                   WHERE created_at >= $1
                   GROUP BY DATE(created_at)
                   ORDER BY DATE(created_at)`
	rows, err := r.storage.pool.Query(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []repository.SalesPoint
	for rows.Next() {
		var p repository.SalesPoint
		if err := rows.Scan(&p.Date, &p.OrderCount, &p.DailySales); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func nullableText(s string) any {
	if s == "" {
		return nil
	}
	return s
}
