package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"

	"payments-service/internal/entities"
	"payments-service/pkg/trm"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var (
	itemColumns     = []string{"item_id", "name", "description", "price", "currency"}
	discountColumns = []string{"discount_id", "name", "percent_off", "stripe_coupon_id"}
	taxColumns      = []string{"tax_id", "name", "percentage", "stripe_tax_rate_id"}
	orderColumns    = []string{"order_id", "discount_id", "tax_id", "created_at"}
)

func (r *postgresRepo) SaveItem(ctx context.Context, it entities.Item) error {
	query, args := r.qb.Insert("items").
		Columns(itemColumns...).
		Values(it.ID, it.Name, nullString(it.Description), it.Price, string(it.Currency)).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save item: %w", err)
	}
	return nil
}

func (r *postgresRepo) UpdateItem(ctx context.Context, it entities.Item) error {
	query, args := r.qb.Update("items").
		Set("name", it.Name).
		Set("description", nullString(it.Description)).
		Set("price", it.Price).
		Set("currency", string(it.Currency)).
		Where(sq.Eq{"item_id": it.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	return checkAffected(res, entities.ErrItemNotFound)
}

func (r *postgresRepo) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	query, args := r.qb.Delete("items").
		Where(sq.Eq{"item_id": itemID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return checkAffected(res, entities.ErrItemNotFound)
}

func (r *postgresRepo) GetItemByID(ctx context.Context, itemID uuid.UUID) (entities.Item, error) {
	query, args := r.qb.Select(itemColumns...).
		From("items").
		Where(sq.Eq{"item_id": itemID}).
		MustSql()

	var item Item
	err := r.getContext(ctx, &item, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Item{}, entities.ErrItemNotFound
	}
	if err != nil {
		return entities.Item{}, fmt.Errorf("failed to get item: %w", err)
	}
	return ItemToEntity(item), nil
}

// GetItemsByIDs возвращает товары в порядке переданных id,
// дубликаты id дают дубликаты в результате.
func (r *postgresRepo) GetItemsByIDs(ctx context.Context, itemIDs []uuid.UUID) ([]entities.Item, error) {
	if len(itemIDs) == 0 {
		return []entities.Item{}, nil
	}

	query, args := r.qb.Select(itemColumns...).
		From("items").
		Where(sq.Eq{"item_id": itemIDs}).
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}

	byID := make(map[uuid.UUID]Item, len(items))
	for _, it := range items {
		byID[it.ItemID] = it
	}

	result := make([]entities.Item, 0, len(itemIDs))
	for _, id := range itemIDs {
		it, ok := byID[id]
		if !ok {
			return nil, entities.ErrItemNotFound
		}
		result = append(result, ItemToEntity(it))
	}
	return result, nil
}

func (r *postgresRepo) ListItems(ctx context.Context) ([]entities.Item, error) {
	query, args := r.qb.Select(itemColumns...).
		From("items").
		OrderBy("name").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}

	result := make([]entities.Item, 0, len(items))
	for _, it := range items {
		result = append(result, ItemToEntity(it))
	}
	return result, nil
}

func (r *postgresRepo) SaveDiscount(ctx context.Context, d entities.Discount) error {
	query, args := r.qb.Insert("discounts").
		Columns(discountColumns...).
		Values(d.ID, d.Name, d.PercentOff, nullString(d.StripeCouponID)).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save discount: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetDiscountByID(ctx context.Context, discountID uuid.UUID) (entities.Discount, error) {
	query, args := r.qb.Select(discountColumns...).
		From("discounts").
		Where(sq.Eq{"discount_id": discountID}).
		MustSql()

	var discount Discount
	err := r.getContext(ctx, &discount, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Discount{}, entities.ErrDiscountNotFound
	}
	if err != nil {
		return entities.Discount{}, fmt.Errorf("failed to get discount: %w", err)
	}
	return DiscountToEntity(discount), nil
}

func (r *postgresRepo) ListDiscounts(ctx context.Context) ([]entities.Discount, error) {
	query, args := r.qb.Select(discountColumns...).
		From("discounts").
		OrderBy("name").
		MustSql()

	var discounts []Discount
	if err := r.selectContext(ctx, &discounts, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select discounts: %w", err)
	}

	result := make([]entities.Discount, 0, len(discounts))
	for _, d := range discounts {
		result = append(result, DiscountToEntity(d))
	}
	return result, nil
}

// DeleteDiscount: ссылки заказов на скидку обнуляются на уровне схемы
// (ON DELETE SET NULL), сами заказы не трогаем.
func (r *postgresRepo) DeleteDiscount(ctx context.Context, discountID uuid.UUID) error {
	query, args := r.qb.Delete("discounts").
		Where(sq.Eq{"discount_id": discountID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete discount: %w", err)
	}
	return checkAffected(res, entities.ErrDiscountNotFound)
}

func (r *postgresRepo) SaveTax(ctx context.Context, t entities.Tax) error {
	query, args := r.qb.Insert("taxes").
		Columns(taxColumns...).
		Values(t.ID, t.Name, t.Percentage, nullString(t.StripeTaxRateID)).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save tax: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetTaxByID(ctx context.Context, taxID uuid.UUID) (entities.Tax, error) {
	query, args := r.qb.Select(taxColumns...).
		From("taxes").
		Where(sq.Eq{"tax_id": taxID}).
		MustSql()

	var tax Tax
	err := r.getContext(ctx, &tax, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Tax{}, entities.ErrTaxNotFound
	}
	if err != nil {
		return entities.Tax{}, fmt.Errorf("failed to get tax: %w", err)
	}
	return TaxToEntity(tax), nil
}

func (r *postgresRepo) ListTaxes(ctx context.Context) ([]entities.Tax, error) {
	query, args := r.qb.Select(taxColumns...).
		From("taxes").
		OrderBy("name").
		MustSql()

	var taxes []Tax
	if err := r.selectContext(ctx, &taxes, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select taxes: %w", err)
	}

	result := make([]entities.Tax, 0, len(taxes))
	for _, t := range taxes {
		result = append(result, TaxToEntity(t))
	}
	return result, nil
}

func (r *postgresRepo) DeleteTax(ctx context.Context, taxID uuid.UUID) error {
	query, args := r.qb.Delete("taxes").
		Where(sq.Eq{"tax_id": taxID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete tax: %w", err)
	}
	return checkAffected(res, entities.ErrTaxNotFound)
}

func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	var discountID, taxID *uuid.UUID
	if o.Discount != nil {
		discountID = &o.Discount.ID
	}
	if o.Tax != nil {
		taxID = &o.Tax.ID
	}

	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(o.ID, nullUUID(discountID), nullUUID(taxID), o.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	if len(o.Items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").Columns("order_id", "item_id")
	for _, it := range o.Items {
		q = q.Values(o.ID, it.ID)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID uuid.UUID) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	// Товары, скидку и налог забираем параллельно
	var (
		items    []entities.Item
		discount *entities.Discount
		tax      *entities.Tax
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = r.orderItems(ctx, orderID)
		return err
	})
	if order.DiscountID.Valid {
		g.Go(func() error {
			d, err := r.GetDiscountByID(ctx, order.DiscountID.UUID)
			if err != nil {
				return err
			}
			discount = &d
			return nil
		})
	}
	if order.TaxID.Valid {
		g.Go(func() error {
			t, err := r.GetTaxByID(ctx, order.TaxID.UUID)
			if err != nil {
				return err
			}
			tax = &t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items, discount, tax), nil
}

func (r *postgresRepo) ListOrders(ctx context.Context) ([]entities.Order, error) {
	// Заказы, новые первыми
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC").
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	orderIDs := make([]uuid.UUID, 0, len(orders))
	discountIDs := make([]uuid.UUID, 0)
	taxIDs := make([]uuid.UUID, 0)
	for _, o := range orders {
		orderIDs = append(orderIDs, o.OrderID)
		if o.DiscountID.Valid {
			discountIDs = append(discountIDs, o.DiscountID.UUID)
		}
		if o.TaxID.Valid {
			taxIDs = append(taxIDs, o.TaxID.UUID)
		}
	}

	// Товары этих заказов
	query, args = r.qb.Select(
		"oi.id", "oi.order_id", "i.item_id", "i.name", "i.description", "i.price", "i.currency").
		From("order_items oi").
		Join("items i ON i.item_id = oi.item_id").
		Where(sq.Eq{"oi.order_id": orderIDs}).
		OrderBy("oi.id").
		MustSql()

	var rows []orderItem
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	itemsMap := make(map[uuid.UUID][]entities.Item, len(orders))
	for _, row := range rows {
		itemsMap[row.OrderID] = append(itemsMap[row.OrderID], ItemToEntity(row.Item))
	}

	// Скидки этих заказов
	discountMap := make(map[uuid.UUID]entities.Discount, len(discountIDs))
	if len(discountIDs) > 0 {
		query, args = r.qb.Select(discountColumns...).
			From("discounts").
			Where(sq.Eq{"discount_id": discountIDs}).
			MustSql()

		var discounts []Discount
		if err := r.selectContext(ctx, &discounts, query, args...); err != nil {
			return nil, fmt.Errorf("failed to select discounts: %w", err)
		}
		for _, d := range discounts {
			discountMap[d.DiscountID] = DiscountToEntity(d)
		}
	}

	// Налоги этих заказов
	taxMap := make(map[uuid.UUID]entities.Tax, len(taxIDs))
	if len(taxIDs) > 0 {
		query, args = r.qb.Select(taxColumns...).
			From("taxes").
			Where(sq.Eq{"tax_id": taxIDs}).
			MustSql()

		var taxes []Tax
		if err := r.selectContext(ctx, &taxes, query, args...); err != nil {
			return nil, fmt.Errorf("failed to select taxes: %w", err)
		}
		for _, t := range taxes {
			taxMap[t.TaxID] = TaxToEntity(t)
		}
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		var discount *entities.Discount
		if o.DiscountID.Valid {
			if d, ok := discountMap[o.DiscountID.UUID]; ok {
				discount = &d
			}
		}
		var tax *entities.Tax
		if o.TaxID.Valid {
			if t, ok := taxMap[o.TaxID.UUID]; ok {
				tax = &t
			}
		}
		result = append(result, OrderToEntity(o, itemsMap[o.OrderID], discount, tax))
	}
	return result, nil
}

func (r *postgresRepo) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	query, args := r.qb.Delete("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return checkAffected(res, entities.ErrOrderNotFound)
}

func (r *postgresRepo) orderItems(ctx context.Context, orderID uuid.UUID) ([]entities.Item, error) {
	query, args := r.qb.Select(
		"oi.id", "oi.order_id", "i.item_id", "i.name", "i.description", "i.price", "i.currency").
		From("order_items oi").
		Join("items i ON i.item_id = oi.item_id").
		Where(sq.Eq{"oi.order_id": orderID}).
		OrderBy("oi.id").
		MustSql()

	var rows []orderItem
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}

	items := make([]entities.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, ItemToEntity(row.Item))
	}
	return items, nil
}

func checkAffected(res sql.Result, notFound error) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
