package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/milktea/internal/domain/errors"
	"github.com/polkiloo/milktea/internal/domain/model"
)

const moneyPlaces = 2

// money renders amounts as fixed-point text bound to NUMERIC parameters.
func money(d decimal.Decimal) string {
	return d.StringFixed(moneyPlaces)
}

func (r *orderRepository) Create(ctx context.Context, in model.NewOrder) (*model.Order, error) {
	const insertOrder = `INSERT INTO orders (order_number, status, total_amount) VALUES ($1, $2, $3)
                   ON CONFLICT (order_number) DO NOTHING
                   RETURNING id, created_at, updated_at`
	const insertItem = `INSERT INTO order_items (order_id, drink_id, size_id, flavor_id, quantity, item_price)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	const insertToppings = `INSERT INTO order_item_toppings (order_item_id, topping_id)
                   SELECT $1, unnest($2::bigint[])`
	const insertPayment = `INSERT INTO payments (order_id, payment_method, amount, status, transaction_id)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	const placeOrder = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2 AND status=$3`

	order := model.Order{
		Number:      in.Number,
		Status:      model.OrderStatusPending,
		TotalAmount: in.TotalAmount,
	}

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insertOrder, in.Number, model.OrderStatusPending, money(in.TotalAmount)).
			Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
				return domainErrors.ErrAlreadyExists
			}
			return fmt.Errorf("insert order: %w", err)
		}

		order.Items = make([]model.OrderItem, 0, len(in.Items))
		for _, item := range in.Items {
			item.OrderID = order.ID
			if err := tx.QueryRow(ctx, insertItem, order.ID, item.Drink.ID, item.Size.ID, flavorID(item.Flavor), item.Quantity, money(item.ItemPrice)).
				Scan(&item.ID); err != nil {
				return fmt.Errorf("insert order item: %w", err)
			}
			if len(item.Toppings) > 0 {
				if _, err := tx.Exec(ctx, insertToppings, item.ID, toppingIDs(item.Toppings)); err != nil {
					return fmt.Errorf("insert order item toppings: %w", err)
				}
			}
			order.Items = append(order.Items, item)
		}

		payment := in.Payment
		payment.OrderID = order.ID
		if err := tx.QueryRow(ctx, insertPayment, order.ID, payment.Method, money(payment.Amount), payment.Status, payment.TransactionID).
			Scan(&payment.ID, &payment.CreatedAt); err != nil {
			return fmt.Errorf("insert payment: %w", err)
		}
		order.Payment = &payment

		tag, err := tx.Exec(ctx, placeOrder, model.OrderStatusPlaced, order.ID, model.OrderStatusPending)
		if err != nil {
			return fmt.Errorf("place order: %w", err)
		}
		if tag.RowsAffected() != 1 {
			return fmt.Errorf("place order %s: %w", in.Number, domainErrors.ErrStatusConflict)
		}
		order.Status = model.OrderStatusPlaced
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepository) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	const query = `SELECT id, order_number, status, total_amount, created_at, updated_at FROM orders WHERE order_number=$1`
	var order model.Order
	err := r.storage.pool.QueryRow(ctx, query, number).
		Scan(&order.ID, &order.Number, &order.Status, &order.TotalAmount, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}

	items, err := r.items(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	payment, err := r.payment(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Payment = payment

	return &order, nil
}

func (r *orderRepository) items(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	const itemsQuery = `SELECT oi.id, oi.quantity, oi.item_price,
                          d.id, d.name, d.description, d.base_price, d.is_available,
                          s.id, s.name, s.price_multiplier,
                          f.id, f.name, f.additional_price
                   FROM order_items oi
                   JOIN drinks d ON d.id = oi.drink_id
                   JOIN sizes s ON s.id = oi.size_id
                   LEFT JOIN flavors f ON f.id = oi.flavor_id
                   WHERE oi.order_id=$1
                   ORDER BY oi.id`
	const toppingsQuery = `SELECT oit.order_item_id, t.id, t.name, t.price
                   FROM order_item_toppings oit
                   JOIN order_items oi ON oi.id = oit.order_item_id
                   JOIN toppings t ON t.id = oit.topping_id
                   WHERE oi.order_id=$1
                   ORDER BY t.id`

	items, err := queryAll(ctx, r.storage.pool, scanOrderItem, itemsQuery, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	if len(items) == 0 {
		return items, nil
	}

	rows, err := r.storage.pool.Query(ctx, toppingsQuery, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order item toppings: %w", err)
	}
	defer rows.Close()

	byItem := make(map[int64]int, len(items))
	for i := range items {
		byItem[items[i].ID] = i
	}
	for rows.Next() {
		var itemID int64
		var t model.Topping
		if err := rows.Scan(&itemID, &t.ID, &t.Name, &t.Price); err != nil {
			return nil, err
		}
		if i, ok := byItem[itemID]; ok {
			items[i].Toppings = append(items[i].Toppings, t)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanOrderItem(row pgx.CollectableRow) (model.OrderItem, error) {
	var (
		item        model.OrderItem
		flavorID    *int64
		flavorName  *string
		flavorPrice decimal.NullDecimal
	)
	err := row.Scan(
		&item.ID, &item.Quantity, &item.ItemPrice,
		&item.Drink.ID, &item.Drink.Name, &item.Drink.Description, &item.Drink.BasePrice, &item.Drink.Available,
		&item.Size.ID, &item.Size.Name, &item.Size.PriceMultiplier,
		&flavorID, &flavorName, &flavorPrice,
	)
	if err != nil {
		return item, err
	}
	if flavorID != nil {
		item.Flavor = &model.Flavor{ID: *flavorID, AdditionalPrice: flavorPrice.Decimal}
		if flavorName != nil {
			item.Flavor.Name = *flavorName
		}
	}
	return item, nil
}

func (r *orderRepository) payment(ctx context.Context, orderID int64) (*model.Payment, error) {
	const query = `SELECT id, order_id, payment_method, amount, status, transaction_id, created_at FROM payments WHERE order_id=$1`
	var p model.Payment
	err := r.storage.pool.QueryRow(ctx, query, orderID).
		Scan(&p.ID, &p.OrderID, &p.Method, &p.Amount, &p.Status, &p.TransactionID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load payment: %w", err)
	}
	return &p, nil
}

func (r *orderRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM orders WHERE order_number=$1)`
	var exists bool
	if err := r.storage.pool.QueryRow(ctx, query, number).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *orderRepository) TransitionStatus(ctx context.Context, number string, from, to model.OrderStatus) (bool, error) {
	const query = `UPDATE orders SET status=$1, updated_at=NOW() WHERE order_number=$2 AND status=$3`
	tag, err := r.storage.pool.Exec(ctx, query, to, number, from)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func flavorID(f *model.Flavor) *int64 {
	if f == nil {
		return nil
	}
	id := f.ID
	return &id
}

func toppingIDs(toppings []model.Topping) []int64 {
	ids := make([]int64, len(toppings))
	for i, t := range toppings {
		ids[i] = t.ID
	}
	return ids
}
