package catalog

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Repository interface {
	// Browse returns the full menu tree. With activeOnly set, the price
	// lists are filtered to active rows; by default the whole price
	// history is included.
	Browse(ctx context.Context, activeOnly bool) ([]Menu, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Browse(ctx context.Context, activeOnly bool) ([]Menu, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	menus, err := r.menus(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := r.categories(ctx)
	if err != nil {
		return nil, err
	}
	items, err := r.items(ctx)
	if err != nil {
		return nil, err
	}
	prices, err := r.prices(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	// stitch bottom-up, preserving query order at every level
	for catID := range items {
		for i := range items[catID] {
			it := &items[catID][i]
			it.Prices = prices[it.ItemID]
			if it.Prices == nil {
				it.Prices = []Price{}
			}
		}
	}
	out := make([]Menu, 0, len(menus))
	for _, m := range menus {
		cats := categories[m.MenuID]
		m.Categories = make([]Category, 0, len(cats))
		for _, c := range cats {
			c.Items = items[c.CatID]
			if c.Items == nil {
				c.Items = []Item{}
			}
			m.Categories = append(m.Categories, c)
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *PGRepo) menus(ctx context.Context) ([]Menu, error) {
	rows, err := r.db.Query(ctx, `SELECT menu_id, menu_name FROM menus ORDER BY menu_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Menu
	for rows.Next() {
		var m Menu
		if err := rows.Scan(&m.MenuID, &m.MenuName); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PGRepo) categories(ctx context.Context) (map[int][]Category, error) {
	rows, err := r.db.Query(ctx, `SELECT cat_id, category_name, menu_id FROM categories ORDER BY cat_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int][]Category)
	for rows.Next() {
		var (
			c      Category
			menuID int
		)
		if err := rows.Scan(&c.CatID, &c.CategoryName, &menuID); err != nil {
			return nil, err
		}
		out[menuID] = append(out[menuID], c)
	}
	return out, rows.Err()
}

func (r *PGRepo) items(ctx context.Context) (map[int][]Item, error) {
	rows, err := r.db.Query(ctx, `SELECT item_id, item_name, cat_id, has_size_variants FROM items ORDER BY item_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int][]Item)
	for rows.Next() {
		var (
			it    Item
			catID int
		)
		if err := rows.Scan(&it.ItemID, &it.ItemName, &catID, &it.HasSizeVariants); err != nil {
			return nil, err
		}
		out[catID] = append(out[catID], it)
	}
	return out, rows.Err()
}

func (r *PGRepo) prices(ctx context.Context, activeOnly bool) (map[int][]Price, error) {
	rows, err := r.db.Query(ctx, `
		SELECT price_id, item_id, size, price::text, is_active, effective_date
		FROM item_prices
		WHERE (NOT $1 OR is_active)
		ORDER BY item_id, price_id
	`, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int][]Price)
	for rows.Next() {
		var (
			p        Price
			itemID   int
			priceTxt string
		)
		if err := rows.Scan(&p.PriceID, &itemID, &p.Size, &priceTxt, &p.IsActive, &p.EffectiveDate); err != nil {
			return nil, err
		}
		if p.Price, err = decimal.NewFromString(priceTxt); err != nil {
			return nil, err
		}
		out[itemID] = append(out[itemID], p)
	}
	return out, rows.Err()
}
