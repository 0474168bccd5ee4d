package store

import (
	"context"
	"fmt"

	"github.com/prefrontal-labs/mindly-app/ent"
	"github.com/prefrontal-labs/mindly-app/ent/tutorsession"
	"github.com/prefrontal-labs/mindly-app/internal/tutor"
)

// sessionRepo implements SessionRepo backed by ent.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Load(ctx context.Context, userID, examDomain string) (*tutor.StudentState, error) {
	row, err := r.client.TutorSession.Query().
		Where(tutorsession.UserID(userID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return tutor.DefaultState(userID, examDomain), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return row.State, nil
}

func (r *sessionRepo) Save(ctx context.Context, state *tutor.StudentState) error {
	err := r.client.TutorSession.Create().
		SetUserID(state.UserID).
		SetExamDomain(state.ExamDomain).
		SetState(state).
		OnConflictColumns(tutorsession.FieldUserID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Delete(ctx context.Context, userID string) error {
	_, err := r.client.TutorSession.Delete().
		Where(tutorsession.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
