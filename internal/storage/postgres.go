package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// ListRestaurants returns the catalog in its natural order
// (name-ascending), which search and feed ordering rely on.
func (r *PostgresRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, COALESCE(address, ''), lat, lon, COALESCE(category_id, 0),
		       COALESCE(image_url, ''), COALESCE(rating_total, 0), COALESCE(rating_count, 0), created_at
		FROM restaurants
		ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.Lat, &rest.Lon,
			&rest.CategoryID, &rest.ImageURL, &rest.RatingTotal, &rest.RatingCount, &rest.CreatedAt); err != nil {
			continue
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, COALESCE(address, ''), lat, lon, COALESCE(category_id, 0),
		       COALESCE(image_url, ''), COALESCE(rating_total, 0), COALESCE(rating_count, 0), created_at
		FROM restaurants
		WHERE id = $1`, id).
		Scan(&rest.ID, &rest.Name, &rest.Address, &rest.Lat, &rest.Lon,
			&rest.CategoryID, &rest.ImageURL, &rest.RatingTotal, &rest.RatingCount, &rest.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) ListMenuItems(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	return r.queryMenuItems(ctx, `
		SELECT id, restaurant_id, name, price, COALESCE(discount, 0), COALESCE(description, ''),
		       COALESCE(image_url, ''), COALESCE(tags, '{}'), COALESCE(engagement_score, 0), created_at
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY name ASC`, restaurantID)
}

func (r *PostgresRepository) ListAllMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	return r.queryMenuItems(ctx, `
		SELECT id, restaurant_id, name, price, COALESCE(discount, 0), COALESCE(description, ''),
		       COALESCE(image_url, ''), COALESCE(tags, '{}'), COALESCE(engagement_score, 0), created_at
		FROM menu_items
		ORDER BY name ASC`)
}

func (r *PostgresRepository) queryMenuItems(ctx context.Context, query string, args ...interface{}) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Price, &item.Discount,
			&item.Description, &item.ImageURL, pq.Array(&item.Tags), &item.EngagementScore, &item.CreatedAt); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, restaurant_id, name, price, COALESCE(discount, 0), COALESCE(description, ''),
		       COALESCE(image_url, ''), COALESCE(tags, '{}'), COALESCE(engagement_score, 0), created_at
		FROM menu_items
		WHERE id = $1`, id).
		Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Price, &item.Discount,
			&item.Description, &item.ImageURL, pq.Array(&item.Tags), &item.EngagementScore, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, COALESCE(image_url, '')
		FROM categories
		ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.ImageURL); err != nil {
			continue
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) Insert(ctx context.Context, review *domain.Review) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO reviews (subject_type, subject_id, author_id, rating, body)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, review.SubjectType, review.SubjectID, review.AuthorID, review.Rating, review.Body).
		Scan(&review.ID, &review.CreatedAt)
}

func (r *PostgresRepository) Exists(ctx context.Context, authorID int, subjectType domain.SubjectType, subjectID int) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM reviews
			WHERE author_id = $1 AND subject_type = $2 AND subject_id = $3
		)
	`, authorID, subjectType, subjectID).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) ListBySubject(ctx context.Context, subjectType domain.SubjectType, subjectID int) ([]domain.Review, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT r.id, r.subject_type, r.subject_id, r.author_id, COALESCE(u.name, ''),
		       r.rating, COALESCE(r.body, ''), r.created_at
		FROM reviews r
		LEFT JOIN users u ON r.author_id = u.id
		WHERE r.subject_type = $1 AND r.subject_id = $2
		ORDER BY r.created_at DESC
	`, subjectType, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReviews(rows)
}

func (r *PostgresRepository) ListByKind(ctx context.Context, subjectType domain.SubjectType) ([]domain.Review, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT r.id, r.subject_type, r.subject_id, r.author_id, COALESCE(u.name, ''),
		       r.rating, COALESCE(r.body, ''), r.created_at
		FROM reviews r
		LEFT JOIN users u ON r.author_id = u.id
		WHERE r.subject_type = $1
		ORDER BY r.created_at DESC
	`, subjectType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReviews(rows)
}

func scanReviews(rows *sql.Rows) ([]domain.Review, error) {
	var reviews []domain.Review
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(&review.ID, &review.SubjectType, &review.SubjectID, &review.AuthorID,
			&review.AuthorName, &review.Rating, &review.Body, &review.CreatedAt); err != nil {
			continue
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

// Toggle inserts the favorite if absent, deletes it if present. The
// unique constraint on (user_id, subject_type, subject_id) is what
// serializes rapid repeated taps.
func (r *PostgresRepository) Toggle(ctx context.Context, userID int, subjectType domain.SubjectType, subjectID int) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `
		INSERT INTO favorites (user_id, subject_type, subject_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, subject_type, subject_id) DO NOTHING
	`, userID, subjectType, subjectID)
	if err != nil {
		return false, err
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if inserted > 0 {
		return true, nil
	}

	_, err = r.DB.ExecContext(ctx, `
		DELETE FROM favorites
		WHERE user_id = $1 AND subject_type = $2 AND subject_id = $3
	`, userID, subjectType, subjectID)
	return false, err
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int) ([]domain.Favorite, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, subject_type, subject_id, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []domain.Favorite
	for rows.Next() {
		var favorite domain.Favorite
		if err := rows.Scan(&favorite.ID, &favorite.UserID, &favorite.SubjectType,
			&favorite.SubjectID, &favorite.CreatedAt); err != nil {
			continue
		}
		favorites = append(favorites, favorite)
	}
	return favorites, rows.Err()
}

// Upsert supersedes the user's last-known location; no history kept.
func (r *PostgresRepository) Upsert(ctx context.Context, location domain.UserLocation) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO user_locations (user_id, lat, lon, address, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET lat = EXCLUDED.lat, lon = EXCLUDED.lon,
		    address = EXCLUDED.address, updated_at = EXCLUDED.updated_at
	`, location.UserID, location.Lat, location.Lon, location.Address, location.UpdatedAt)
	return err
}

func (r *PostgresRepository) Get(ctx context.Context, userID int) (*domain.UserLocation, error) {
	var location domain.UserLocation
	err := r.DB.QueryRowContext(ctx, `
		SELECT user_id, lat, lon, COALESCE(address, ''), updated_at
		FROM user_locations
		WHERE user_id = $1
	`, userID).Scan(&location.UserID, &location.Lat, &location.Lon, &location.Address, &location.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			image_url TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS restaurants (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT,
			lat DOUBLE PRECISION,
			lon DOUBLE PRECISION,
			category_id INTEGER REFERENCES categories(id),
			image_url TEXT,
			rating_total DOUBLE PRECISION NOT NULL DEFAULT 0,
			rating_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id),
			name TEXT NOT NULL,
			price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
			discount NUMERIC(5,2) CHECK (discount >= 0 AND discount <= 100),
			description TEXT,
			image_url TEXT,
			tags TEXT[],
			engagement_score BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id SERIAL PRIMARY KEY,
			subject_type TEXT NOT NULL,
			subject_id INTEGER NOT NULL,
			author_id INTEGER NOT NULL,
			rating DOUBLE PRECISION NOT NULL CHECK (rating >= 1 AND rating <= 5),
			body TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (author_id, subject_type, subject_id)
		)`,
		`CREATE TABLE IF NOT EXISTS favorites (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL,
			subject_type TEXT NOT NULL,
			subject_id INTEGER NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, subject_type, subject_id)
		)`,
		`CREATE TABLE IF NOT EXISTS user_locations (
			user_id INTEGER PRIMARY KEY,
			lat DOUBLE PRECISION NOT NULL,
			lon DOUBLE PRECISION NOT NULL,
			address TEXT,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
