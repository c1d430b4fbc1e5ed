package storage

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/domain"
)

func TestPostgresRepository_ListRestaurants(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "name", "address", "lat", "lon", "category_id",
		"image_url", "rating_total", "rating_count", "created_at",
	}).
		AddRow(2, "Mango Cafe", "Quezon Ave", nil, nil, 1, "", 0.0, 0, time.Now()).
		AddRow(1, "Tuna Express", "Roxas Ave", 8.2290, 124.2460, 2, "", 13.5, 3, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM restaurants ORDER BY name ASC").WillReturnRows(rows)

	restaurants, err := repo.ListRestaurants(context.Background())
	assert.NoError(t, err)
	assert.Len(t, restaurants, 2)
	assert.Equal(t, "Mango Cafe", restaurants[0].Name)
	assert.Nil(t, restaurants[0].Lat)
	assert.NotNil(t, restaurants[1].Lat)
	assert.InDelta(t, 4.5, restaurants[1].AverageRating(), 0.0001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ListAllMenuItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "restaurant_id", "name", "price", "discount", "description",
		"image_url", "tags", "engagement_score", "created_at",
	}).
		AddRow(1, 1, "Kinilaw na Tuna", 180.0, 0.0, "", "", []byte("{seafood,raw}"), int64(5), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM menu_items ORDER BY name ASC").WillReturnRows(rows)

	items, err := repo.ListAllMenuItems(context.Background())
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, []string{"seafood", "raw"}, items[0].Tags)
	assert.True(t, items[0].Tagged("seafood"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_InsertReview(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewPostgresRepository(db)

	createdAt := time.Now()
	mock.ExpectQuery("INSERT INTO reviews").
		WithArgs(domain.SubjectMenuItem, 1, 7, 4.5, "Great!").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(42, createdAt))

	review := &domain.Review{
		SubjectType: domain.SubjectMenuItem, SubjectID: 1, AuthorID: 7, Rating: 4.5, Body: "Great!",
	}
	assert.NoError(t, repo.Insert(context.Background(), review))
	assert.Equal(t, 42, review.ID)
	assert.Equal(t, createdAt, review.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ReviewExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(7, domain.SubjectRestaurant, 1).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(context.Background(), 7, domain.SubjectRestaurant, 1)
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ToggleFavorite(t *testing.T) {
	ctx := context.Background()

	t.Run("insert_when_absent", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := NewPostgresRepository(db)

		mock.ExpectExec("INSERT INTO favorites").
			WithArgs(7, domain.SubjectRestaurant, 1).
			WillReturnResult(sqlmock.NewResult(1, 1))

		favorited, err := repo.Toggle(ctx, 7, domain.SubjectRestaurant, 1)
		assert.NoError(t, err)
		assert.True(t, favorited)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete_when_present", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := NewPostgresRepository(db)

		mock.ExpectExec("INSERT INTO favorites").
			WithArgs(7, domain.SubjectRestaurant, 1).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM favorites").
			WithArgs(7, domain.SubjectRestaurant, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		favorited, err := repo.Toggle(ctx, 7, domain.SubjectRestaurant, 1)
		assert.NoError(t, err)
		assert.False(t, favorited)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresRepository_UpsertLocation(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewPostgresRepository(db)

	updatedAt := time.Now()
	mock.ExpectExec("INSERT INTO user_locations").
		WithArgs(7, 8.25, 124.24, "Tibanga, Iligan City", updatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Upsert(context.Background(), domain.UserLocation{
		UserID: 7, Lat: 8.25, Lon: 124.24, Address: "Tibanga, Iligan City", UpdatedAt: updatedAt,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
