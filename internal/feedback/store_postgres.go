// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feedback

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/feedback/internal/platform/database/schema"
	"github.com/taibuivan/feedback/internal/platform/dberr"
)

// Querier is the subset of [pgxpool.Pool] the repository needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository implements [Repository] on the feedback table.
type PostgresRepository struct {
	db Querier
}

// NewPostgresRepository constructs a PostgreSQL backed feedback store.
func NewPostgresRepository(db Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// sortColumns whitelists the columns that may appear in ORDER BY.
var sortColumns = map[SortField]string{
	SortByID:     schema.FeedbackTable.ID,
	SortByRating: schema.FeedbackTable.Rating,
}

// Append implements [Repository]. Timestamps come from the database clock.
func (repository *PostgresRepository) Append(ctx context.Context, record *Feedback) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.FeedbackTable.Table, schema.FeedbackTable.CustomerName, schema.FeedbackTable.Rating,
		schema.FeedbackTable.Message, schema.FeedbackTable.HappinessLevel,
		schema.FeedbackTable.CreatedAt, schema.FeedbackTable.UpdatedAt,
		schema.FeedbackTable.ID, schema.FeedbackTable.CreatedAt, schema.FeedbackTable.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		record.CustomerName, record.Rating, record.Message, record.HappinessLevel,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	return dberr.Wrap(err, "create_feedback")
}

/*
Query implements [Repository].

The total is computed by a separate COUNT so that it stays correct for pages
past the end of the result set. Only one ORDER BY key is applied; ties keep
whatever order PostgreSQL produces.
*/
func (repository *PostgresRepository) Query(ctx context.Context, c Criteria) ([]*Feedback, int, error) {
	where, args := whereClause(c)

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s`, schema.FeedbackTable.Table, where)

	var total int
	if err := repository.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_feedback")
	}

	column, ok := sortColumns[c.SortBy]
	if !ok {
		column = schema.FeedbackTable.ID
	}
	direction := "ASC"
	if c.Descending {
		direction = "DESC"
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s
		ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		strings.Join(schema.FeedbackTable.Columns(), ", "),
		schema.FeedbackTable.Table,
		where,
		column, direction, len(args)+1, len(args)+2,
	)
	args = append(args, c.Limit, c.Offset)

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_feedback")
	}
	defer rows.Close()

	records := make([]*Feedback, 0, c.Limit)
	for rows.Next() {
		record := &Feedback{}
		if err := rows.Scan(
			&record.ID, &record.CustomerName, &record.Rating, &record.HappinessLevel,
			&record.Message, &record.CreatedAt, &record.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_feedback")
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_feedback")
	}

	return records, total, nil
}

// whereClause builds the predicate shared by the count and page queries.
func whereClause(c Criteria) (string, []any) {
	conditions := []string{"TRUE"}
	var args []any

	if c.Rating != nil {
		args = append(args, *c.Rating)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", schema.FeedbackTable.Rating, len(args)))
	}

	if c.HappinessLevel != nil {
		args = append(args, *c.HappinessLevel)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", schema.FeedbackTable.HappinessLevel, len(args)))
	}

	return strings.Join(conditions, " AND "), args
}
