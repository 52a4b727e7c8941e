package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/inkpress/erp-gateway/internal/core"
	"github.com/inkpress/erp-gateway/internal/domain/model"
)

// SQLProcedureInvoker executes named procedures against per-partition
// database handles. It is a thin pass-through: parameters are bound in the
// descriptor's order and errors are returned verbatim, never interpreted.
type SQLProcedureInvoker struct {
	partitions map[model.Partition]*sql.DB
}

var _ core.ProcedureInvoker = (*SQLProcedureInvoker)(nil)

// NewSQLProcedureInvoker creates an invoker over the given partition handles.
func NewSQLProcedureInvoker(partitions map[model.Partition]*sql.DB) (*SQLProcedureInvoker, error) {
	if len(partitions) == 0 {
		return nil, errors.New("at least one partition handle is required")
	}
	return &SQLProcedureInvoker{partitions: partitions}, nil
}

// Invoke runs one set-returning procedure call and collects its rows in order.
func (i *SQLProcedureInvoker) Invoke(
	ctx context.Context,
	target model.Partition,
	op model.Operation,
) (*core.ProcResult, error) {
	db, ok := i.partitions[target]
	if !ok {
		return nil, fmt.Errorf("no database handle for partition %q", target)
	}
	if op.Proc == "" {
		return nil, errors.New("procedure name is required")
	}

	query, args := buildProcCall(op)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck // row iteration errors surface via rows.Err below

	result, err := collectRows(rows)
	if err != nil {
		return nil, err
	}

	return &core.ProcResult{
		Rows: result,
		// Set-returning procedures report their effect through the result set.
		RowsAffected: int64(len(result)),
	}, nil
}

// buildProcCall renders "SELECT * FROM proc($1, ...)" with positional binds.
func buildProcCall(op model.Operation) (string, []any) {
	placeholders := make([]string, len(op.Params))
	args := make([]any, len(op.Params))
	for idx, p := range op.Params {
		placeholders[idx] = fmt.Sprintf("$%d", idx+1)
		args[idx] = p.Value
	}
	query := fmt.Sprintf("SELECT * FROM %s(%s)", op.Proc, strings.Join(placeholders, ", "))
	return query, args
}

// collectRows materializes the result set preserving column names and order.
func collectRows(rows *sql.Rows) ([]model.Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	var out []model.Row
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for idx := range values {
			ptrs[idx] = &values[idx]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		row := make(model.Row, len(columns))
		for idx, col := range columns {
			row[col] = normalizeValue(values[idx])
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// normalizeValue converts driver byte slices to strings so JSON reshaping
// stays readable for clients.
func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
