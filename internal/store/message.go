package store

import (
	"context"
	"fmt"

	"github.com/prefrontal-labs/mindly-app/ent"
	"github.com/prefrontal-labs/mindly-app/ent/chatmessage"
)

// messageRepo implements MessageRepo backed by ent.
type messageRepo struct {
	client *ent.Client
}

func (r *messageRepo) Append(ctx context.Context, msg ChatMessage) error {
	_, err := r.client.ChatMessage.Create().
		SetUserID(msg.UserID).
		SetRole(chatmessage.Role(msg.Role)).
		SetContent(msg.Content).
		SetAction(msg.Action).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append message: %w", err)
	}
	return nil
}

func (r *messageRepo) Recent(ctx context.Context, userID string, n int) ([]ChatMessage, error) {
	rows, err := r.client.ChatMessage.Query().
		Where(chatmessage.UserID(userID)).
		Order(ent.Desc(chatmessage.FieldCreatedAt), ent.Desc(chatmessage.FieldID)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}

	// Reverse to oldest-first for prompt assembly.
	out := make([]ChatMessage, len(rows))
	for i, row := range rows {
		out[len(rows)-1-i] = ChatMessage{
			ID:        row.ID,
			UserID:    row.UserID,
			Role:      string(row.Role),
			Content:   row.Content,
			Action:    row.Action,
			CreatedAt: row.CreatedAt,
		}
	}
	return out, nil
}

func (r *messageRepo) Clear(ctx context.Context, userID string) error {
	_, err := r.client.ChatMessage.Delete().
		Where(chatmessage.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear messages: %w", err)
	}
	return nil
}
