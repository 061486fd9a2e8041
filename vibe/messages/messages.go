package messages

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Prakul111/vibe-code-project/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrFragmentNotFound = errors.New("fragment not found")
)

func NewRepository(db storage.DB) *Repository {
	return &Repository{db: db}
}

// messages of a project with their fragment, oldest update first
func (r *Repository) ListByProject(ctx context.Context, projectID string) ([]Message, error) {
	rows, err := r.db.Query(ctx, queryListByProject, projectID)
	if err != nil {
		return nil, err
	}

	return collectMessages(rows)
}

// the last limit messages of a project in chronological order
func (r *Repository) ListRecent(ctx context.Context, projectID string, limit int) ([]Message, error) {
	rows, err := r.db.Query(ctx, queryListRecent, projectID, limit)
	if err != nil {
		return nil, err
	}

	msgs, err := collectMessages(rows)
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}

	return msgs, nil
}

func (r *Repository) Create(ctx context.Context, projectID, content string, role Role, msgType Type) (*Message, error) {
	return insertMessage(ctx, r.db, projectID, content, role, msgType)
}

// stores an ASSISTANT/RESULT message and its fragment in one transaction
func (r *Repository) CreateWithFragment(ctx context.Context, res AssistantResult) (*Message, error) {
	var msg *Message

	files := res.Files
	if files == nil {
		files = map[string]string{}
	}

	err := storage.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var err error

		msg, err = insertMessage(ctx, tx, res.ProjectID, res.Content, RoleAssistant, TypeResult)
		if err != nil {
			return err
		}

		var f Fragment
		err = tx.QueryRow(ctx, queryCreateFragment,
			uuid.NewString(),
			msg.ID,
			res.SandboxURL,
			res.Title,
			files,
		).Scan(
			&f.ID,
			&f.MessageID,
			&f.SandboxURL,
			&f.Title,
			&f.Files,
			&f.CreateAt,
			&f.UpdateAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert fragment: %w", err)
		}
		msg.Fragment = &f

		if _, err := tx.Exec(ctx, queryTouchProject, res.ProjectID); err != nil {
			return fmt.Errorf("failed to touch project: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return msg, nil
}

// stores an ASSISTANT message with no fragment, used for agent failures
func (r *Repository) CreateAssistant(ctx context.Context, projectID, content string, msgType Type) (*Message, error) {
	return insertMessage(ctx, r.db, projectID, content, RoleAssistant, msgType)
}

func (r *Repository) GetFragment(ctx context.Context, id string) (*Fragment, error) {
	var f Fragment

	err := r.db.QueryRow(ctx, queryGetFragment, id).Scan(
		&f.ID,
		&f.MessageID,
		&f.SandboxURL,
		&f.Title,
		&f.Files,
		&f.CreateAt,
		&f.UpdateAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFragmentNotFound
		}
		return nil, err
	}

	return &f, nil
}

type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertMessage(ctx context.Context, db queryRower, projectID, content string, role Role, msgType Type) (*Message, error) {
	var m Message

	err := db.QueryRow(ctx, queryCreate,
		uuid.NewString(),
		content,
		string(role),
		string(msgType),
		projectID,
	).Scan(
		&m.ID,
		&m.Content,
		&m.Role,
		&m.Type,
		&m.ProjectID,
		&m.CreateAt,
		&m.UpdateAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert message: %w", err)
	}

	return &m, nil
}

func collectMessages(rows pgx.Rows) ([]Message, error) {
	defer rows.Close()

	// empty slice instead of nil so the JSON response is []
	msgs := []Message{}

	for rows.Next() {
		var (
			m Message

			fragID, fragMessageID, fragURL, fragTitle *string
			fragFiles                                 map[string]string
			fragCreateAt, fragUpdateAt                *time.Time
		)

		err := rows.Scan(
			&m.ID,
			&m.Content,
			&m.Role,
			&m.Type,
			&m.ProjectID,
			&m.CreateAt,
			&m.UpdateAt,
			&fragID,
			&fragMessageID,
			&fragURL,
			&fragTitle,
			&fragFiles,
			&fragCreateAt,
			&fragUpdateAt,
		)
		if err != nil {
			return nil, err
		}

		if fragID != nil {
			m.Fragment = &Fragment{
				ID:         *fragID,
				MessageID:  deref(fragMessageID),
				SandboxURL: deref(fragURL),
				Title:      deref(fragTitle),
				Files:      fragFiles,
			}
			if fragCreateAt != nil {
				m.Fragment.CreateAt = *fragCreateAt
			}
			if fragUpdateAt != nil {
				m.Fragment.UpdateAt = *fragUpdateAt
			}
		}

		msgs = append(msgs, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return msgs, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
