package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/web-dev-boy/Nexteria/internal/domain/entity"
	"github.com/web-dev-boy/Nexteria/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// sortColumns maps the allow-listed sort keys to their SQL columns. Anything
// outside this map falls back to created_at so user input never reaches the
// ORDER BY clause.
var sortColumns = map[string]string{
	"name":       "p.name",
	"price":      "p.price",
	"created_at": "p.created_at",
	"updated_at": "p.updated_at",
}

// ProductRepo implements the ProductRepository port over PostgreSQL.
// It accepts a Querier so it can run on the pool or inside a transaction.
type ProductRepo struct {
	db Querier
}

// NewProductRepository builds the persistence adapter for products.
func NewProductRepository(db Querier) *ProductRepo {
	return &ProductRepo{db: db}
}

// likeEscaper neutralizes LIKE metacharacters so % and _ in a search query
// match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

const productJoin = `
	SELECT p.id, p.seller_id, p.category_id, p.name, p.description, p.price,
		p.image_url, p.search_text, p.created_at, p.updated_at,
		s.name AS seller_name, COALESCE(c.name, '') AS category_name
	FROM products p
	JOIN sellers s ON s.id = p.seller_id
	LEFT JOIN categories c ON c.id = p.category_id`

// Create persists a new product listing.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (id, seller_id, category_id, name, description, price,
			image_url, search_text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.SellerID, p.CategoryID, p.Name, p.Description, p.Price,
		p.ImageURL, p.SearchText, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID returns the product or (nil, nil) when missing.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	row := r.db.QueryRow(ctx, productJoin+` WHERE p.id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return p, nil
}

// Search runs the filtered catalog query. filter.Query must be folded and
// filter.SortBy allow-listed by the caller; unknown keys fall back here too.
func (r *ProductRepo) Search(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	var conds []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Query != "" {
		conds = append(conds, fmt.Sprintf(`p.search_text LIKE '%%' || %s || '%%' ESCAPE '\'`, arg(escapeLike(filter.Query))))
	}
	if filter.CategoryID != nil {
		conds = append(conds, fmt.Sprintf("p.category_id = %s", arg(*filter.CategoryID)))
	}
	if filter.MinPrice != nil {
		conds = append(conds, fmt.Sprintf("p.price >= %s", arg(*filter.MinPrice)))
	}
	if filter.MaxPrice != nil {
		conds = append(conds, fmt.Sprintf("p.price <= %s", arg(*filter.MaxPrice)))
	}

	query := productJoin
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	col, ok := sortColumns[filter.SortBy]
	if !ok {
		col = "p.created_at"
	}
	dir := "ASC"
	if filter.SortDesc {
		dir = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s", col, dir)

	return r.queryProducts(ctx, query, args...)
}

// ListBySeller returns the seller's listings, newest first.
func (r *ProductRepo) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Product, error) {
	return r.queryProducts(ctx,
		productJoin+` WHERE p.seller_id = $1 ORDER BY p.created_at DESC`, sellerID)
}

func (r *ProductRepo) queryProducts(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.SellerID, &p.CategoryID, &p.Name, &p.Description, &p.Price,
		&p.ImageURL, &p.SearchText, &p.CreatedAt, &p.UpdatedAt,
		&p.SellerName, &p.CategoryName,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
