package logic

import (
	"context"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// mockPool satisfies PgPool by dispatching through func fields, so each
// test provides exactly the behavior it needs.
type mockPool struct {
	queryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	queryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
}

func (m *mockPool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return m.queryFn(ctx, sql, args...)
}

func (m *mockPool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return m.queryRowFn(ctx, sql, args...)
}

func (m *mockPool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

// mockRows serves fixture rows. Embedding pgx.Rows covers the methods the
// code under test never calls.
type mockRows struct {
	pgx.Rows
	data [][]any
	idx  int
	err  error
}

func (m *mockRows) Next() bool {
	if m.idx >= len(m.data) {
		return false
	}
	m.idx++
	return true
}

func (m *mockRows) Scan(dest ...any) error {
	row := m.data[m.idx-1]
	for i := range dest {
		assign(dest[i], row[i])
	}
	return nil
}

func (m *mockRows) Close() {}

func (m *mockRows) Err() error { return m.err }

type mockRow struct {
	vals []any
	err  error
}

func (m *mockRow) Scan(dest ...any) error {
	if m.err != nil {
		return m.err
	}
	for i := range dest {
		assign(dest[i], m.vals[i])
	}
	return nil
}

func assign(dest any, val any) {
	v := reflect.ValueOf(dest).Elem()
	if val == nil {
		v.Set(reflect.Zero(v.Type()))
		return
	}
	rv := reflect.ValueOf(val)
	// Fixture values for pointer-typed columns are given as the element type.
	if v.Kind() == reflect.Pointer && rv.Type() == v.Type().Elem() {
		p := reflect.New(v.Type().Elem())
		p.Elem().Set(rv)
		v.Set(p)
		return
	}
	v.Set(rv)
}
