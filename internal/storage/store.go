package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/domain"
)

// Store applies the write side of the engagement/review event stream:
// atomic score increments and rating aggregate refreshes.
type Store struct {
	db  *sql.DB
	rdb *redis.Client
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{db: db, rdb: rdb}
}

// ApplyEngagement adds exactly 1 to the item's engagement score. The
// increment happens in the store, never computed from a stale read, so
// concurrent opens are safely additive.
func (s *Store) ApplyEngagement(ctx context.Context, menuItemID int) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE menu_items
		SET engagement_score = engagement_score + 1
		WHERE id = $1
	`, menuItemID)
	if err != nil {
		return fmt.Errorf("increment engagement for item %d: %w", menuItemID, err)
	}

	if err := s.rdb.ZIncrBy(ctx, engagementLeaderboardKey, 1, strconv.Itoa(menuItemID)).Err(); err != nil {
		log.Printf("[store] failed to update engagement leaderboard for item %d: %v", menuItemID, err)
	}
	return nil
}

// RefreshRatingAggregates recomputes the subject's stored rating sum
// and count from its reviews and caches the summary for fast page
// headers. Restaurants carry the aggregate columns; menu item
// summaries live only in the cache.
func (s *Store) RefreshRatingAggregates(ctx context.Context, subjectType domain.SubjectType, subjectID int) error {
	if subjectType == domain.SubjectRestaurant {
		_, err := s.db.ExecContext(ctx, `
			UPDATE restaurants
			SET rating_total = (
				SELECT COALESCE(SUM(rating), 0) FROM reviews
				WHERE subject_type = $1 AND subject_id = $2
			),
			rating_count = (
				SELECT COUNT(*) FROM reviews
				WHERE subject_type = $1 AND subject_id = $2
			)
			WHERE id = $2
		`, subjectType, subjectID)
		if err != nil {
			return fmt.Errorf("refresh restaurant rating: %w", err)
		}
	}

	var average float64
	var count int
	if err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(AVG(rating), 0), COUNT(*)
		FROM reviews
		WHERE subject_type = $1 AND subject_id = $2
	`, subjectType, subjectID).Scan(&average, &count); err != nil {
		return fmt.Errorf("read rating aggregate: %w", err)
	}

	key := fmt.Sprintf("rating:%s:%d", subjectType, subjectID)
	s.rdb.HSet(ctx, key, map[string]interface{}{
		"average":      average,
		"count":        count,
		"last_updated": time.Now().Unix(),
	})
	s.rdb.Expire(ctx, key, 24*time.Hour)
	return nil
}
