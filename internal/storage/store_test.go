package storage

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/domain"
)

func TestStore_ApplyEngagement(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	server := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer rdb.Close()

	store := NewStore(db, rdb)
	ctx := context.Background()

	mock.ExpectExec("UPDATE menu_items SET engagement_score = engagement_score \\+ 1").
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, store.ApplyEngagement(ctx, 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ApplyEngagementIsAdditive(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	server := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer rdb.Close()

	store := NewStore(db, rdb)
	ctx := context.Background()

	mock.ExpectExec("UPDATE menu_items").WithArgs(3).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE menu_items").WithArgs(3).WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, store.ApplyEngagement(ctx, 3))
	assert.NoError(t, store.ApplyEngagement(ctx, 3))

	score, err := rdb.ZScore(ctx, engagementLeaderboardKey, "3").Result()
	assert.NoError(t, err)
	assert.Equal(t, 2.0, score)
}

func TestStore_RefreshRatingAggregates(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	server := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer rdb.Close()

	store := NewStore(db, rdb)
	ctx := context.Background()

	mock.ExpectExec("UPDATE restaurants").
		WithArgs(domain.SubjectRestaurant, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM reviews").
		WithArgs(domain.SubjectRestaurant, 1).
		WillReturnRows(sqlmock.NewRows([]string{"avg", "count"}).AddRow(4.5, 3))

	assert.NoError(t, store.RefreshRatingAggregates(ctx, domain.SubjectRestaurant, 1))
	assert.NoError(t, mock.ExpectationsWereMet())

	cached := server.HGet("rating:restaurant:1", "count")
	assert.Equal(t, "3", cached)
}

func TestStore_RefreshRatingAggregatesMenuItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	server := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer rdb.Close()

	store := NewStore(db, rdb)
	ctx := context.Background()

	// Menu items carry no aggregate columns; only the cached summary
	// is refreshed.
	mock.ExpectQuery("SELECT (.+) FROM reviews").
		WithArgs(domain.SubjectMenuItem, 2).
		WillReturnRows(sqlmock.NewRows([]string{"avg", "count"}).AddRow(5.0, 1))

	assert.NoError(t, store.RefreshRatingAggregates(ctx, domain.SubjectMenuItem, 2))
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, "1", server.HGet("rating:menu_item:2", "count"))
}
