package store

import (
	"context"
	"fmt"

	"github.com/prefrontal-labs/mindly-app/ent"
	"github.com/prefrontal-labs/mindly-app/ent/streak"
)

// streakRepo implements StreakRepo backed by ent.
type streakRepo struct {
	client *ent.Client
}

func (r *streakRepo) Get(ctx context.Context, userID string) (*StreakData, error) {
	row, err := r.client.Streak.Query().
		Where(streak.UserID(userID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return &StreakData{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load streak: %w", err)
	}
	return &StreakData{
		UserID:         row.UserID,
		Current:        row.Current,
		Longest:        row.Longest,
		LastActiveDate: row.LastActiveDate,
	}, nil
}

func (r *streakRepo) Save(ctx context.Context, data StreakData) error {
	err := r.client.Streak.Create().
		SetUserID(data.UserID).
		SetCurrent(data.Current).
		SetLongest(data.Longest).
		SetLastActiveDate(data.LastActiveDate).
		OnConflictColumns(streak.FieldUserID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save streak: %w", err)
	}
	return nil
}
