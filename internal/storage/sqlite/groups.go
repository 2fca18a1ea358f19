package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/marilyndevx/FinFusion-V1/internal/models"
)

// CreateGroup persists a new group and its members in one transaction.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group) error {
	assignIdentity(&group.ID, &group.CreatedAt)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO groups (id, name, created_at) VALUES (?, ?, ?)",
		group.ID, group.Name, group.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group: %w", err)
	}

	for i, name := range group.Members {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO group_members (group_id, name, position) VALUES (?, ?, ?)",
			group.ID, name, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert group member: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetGroup retrieves a group by ID, including its members in creation order.
func (s *SQLiteStore) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	group := &models.Group{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM groups WHERE id = ?",
		groupID,
	).Scan(&group.ID, &group.Name, &group.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("group %s: %w", groupID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	members, err := s.membersByGroup(ctx, "WHERE group_id = ?", groupID)
	if err != nil {
		return nil, err
	}
	group.Members = members[group.ID]

	return group, nil
}

// ListGroups retrieves all groups, oldest first.
func (s *SQLiteStore) ListGroups(ctx context.Context) ([]models.Group, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, created_at FROM groups ORDER BY created_at, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []models.Group
	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}
	rows.Close()

	members, err := s.membersByGroup(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range groups {
		groups[i].Members = members[groups[i].ID]
	}

	return groups, nil
}

// membersByGroup loads member names keyed by group ID, each list in position order.
func (s *SQLiteStore) membersByGroup(ctx context.Context, where string, args ...any) (map[string][]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT group_id, name FROM group_members "+where+" ORDER BY group_id, position",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %w", err)
	}
	defer rows.Close()

	members := make(map[string][]string)
	for rows.Next() {
		var groupID, name string
		if err := rows.Scan(&groupID, &name); err != nil {
			return nil, fmt.Errorf("failed to scan group member: %w", err)
		}
		members[groupID] = append(members[groupID], name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate group members: %w", err)
	}
	return members, nil
}
