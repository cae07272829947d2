package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"tacotango/pkg/catalog"
)

// Gateway is the sqlite implementation of catalog.Gateway. It is generic
// over the collection registry: the table is the collection name, columns
// are the registered fields, and every name is checked against the registry
// before it gets anywhere near SQL.
type Gateway struct {
	DB       *sql.DB
	Registry catalog.Registry
}

func New(db *sql.DB, registry catalog.Registry) *Gateway {
	return &Gateway{DB: db, Registry: registry}
}

func (g *Gateway) spec(collection string) (catalog.Spec, error) {
	s, ok := g.Registry.Lookup(collection)
	if !ok {
		return catalog.Spec{}, &catalog.ValidationError{Field: "collection", Reason: fmt.Sprintf("unknown collection %q", collection)}
	}
	return s, nil
}

func (g *Gateway) List(ctx context.Context, collection string, q catalog.Query) ([]catalog.Item, error) {
	spec, err := g.spec(collection)
	if err != nil {
		return nil, err
	}

	sqlStr, args, err := buildListSQL(spec, q, false)
	if err != nil {
		return nil, err
	}

	rows, err := g.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, &catalog.TransportError{Op: "list " + collection, Err: err}
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, &catalog.TransportError{Op: "list " + collection, Err: err}
	}

	var out []catalog.Item
	for rows.Next() {
		it, err := scanItem(rows, cols)
		if err != nil {
			return nil, &catalog.TransportError{Op: "scan " + collection, Err: err}
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, &catalog.TransportError{Op: "list " + collection, Err: err}
	}
	return out, nil
}

func (g *Gateway) Insert(ctx context.Context, collection string, fields map[string]any) (catalog.Item, error) {
	spec, err := g.spec(collection)
	if err != nil {
		return catalog.Item{}, err
	}
	if err := checkFields(spec, fields); err != nil {
		return catalog.Item{}, err
	}

	id := uuid.NewString()
	cols := []string{"id"}
	args := []any{id}
	for _, name := range sortedKeys(fields) {
		cols = append(cols, quoteIdent(name))
		args = append(args, bindValue(fields[name]))
	}

	sqlStr := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(collection),
		strings.Join(cols, ", "),
		strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", "),
	)
	if _, err := g.DB.ExecContext(ctx, sqlStr, args...); err != nil {
		return catalog.Item{}, &catalog.TransportError{Op: "insert " + collection, Err: err}
	}

	// Read the row back so the caller sees DB-assigned defaults.
	it, err := g.getByID(ctx, collection, id)
	if err != nil {
		return catalog.Item{}, err
	}
	return it, nil
}

func (g *Gateway) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	spec, err := g.spec(collection)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return &catalog.ValidationError{Field: "fields", Reason: "at least one field required"}
	}
	if err := checkFields(spec, fields); err != nil {
		return err
	}

	var sets []string
	var args []any
	for _, name := range sortedKeys(fields) {
		sets = append(sets, quoteIdent(name)+" = ?")
		args = append(args, bindValue(fields[name]))
	}
	args = append(args, id)

	sqlStr := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", quoteIdent(collection), strings.Join(sets, ", "))
	res, err := g.DB.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return &catalog.TransportError{Op: "update " + collection, Err: err}
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return &catalog.NotFoundError{Collection: collection, ID: id}
	}
	return nil
}

func (g *Gateway) Delete(ctx context.Context, collection, id string) error {
	if _, err := g.spec(collection); err != nil {
		return err
	}

	res, err := g.DB.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", quoteIdent(collection)), id)
	if err != nil {
		return &catalog.TransportError{Op: "delete " + collection, Err: err}
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return &catalog.NotFoundError{Collection: collection, ID: id}
	}
	return nil
}

func (g *Gateway) Count(ctx context.Context, collection string, q catalog.Query) (int, error) {
	spec, err := g.spec(collection)
	if err != nil {
		return 0, err
	}

	sqlStr, args, err := buildListSQL(spec, q, true)
	if err != nil {
		return 0, err
	}

	var total int
	if err := g.DB.QueryRowContext(ctx, sqlStr, args...).Scan(&total); err != nil {
		return 0, &catalog.TransportError{Op: "count " + collection, Err: err}
	}
	return total, nil
}

func (g *Gateway) getByID(ctx context.Context, collection, id string) (catalog.Item, error) {
	rows, err := g.DB.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s WHERE id = ?", quoteIdent(collection)), id)
	if err != nil {
		return catalog.Item{}, &catalog.TransportError{Op: "get " + collection, Err: err}
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return catalog.Item{}, &catalog.TransportError{Op: "get " + collection, Err: err}
	}
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return catalog.Item{}, &catalog.TransportError{Op: "get " + collection, Err: err}
		}
		return catalog.Item{}, &catalog.NotFoundError{Collection: collection, ID: id}
	}
	it, err := scanItem(rows, cols)
	if err != nil {
		return catalog.Item{}, &catalog.TransportError{Op: "scan " + collection, Err: err}
	}
	return it, nil
}

// buildListSQL builds either COUNT(*) or SELECT * over one collection.
func buildListSQL(spec catalog.Spec, q catalog.Query, countOnly bool) (string, []any, error) {
	base := "SELECT * FROM " + quoteIdent(spec.Name)
	if countOnly {
		base = "SELECT COUNT(*) FROM " + quoteIdent(spec.Name)
	}

	var where []string
	var args []any
	for _, name := range sortedKeysStr(q.Equals) {
		if !spec.HasField(name) {
			return "", nil, &catalog.ValidationError{Field: name, Reason: "unknown field"}
		}
		where = append(where, quoteIdent(name)+" = ?")
		args = append(args, q.Equals[name])
	}

	sqlStr := base
	if len(where) > 0 {
		sqlStr += " WHERE " + strings.Join(where, " AND ")
	}

	if !countOnly {
		orderBy := q.OrderBy
		if orderBy == "" {
			orderBy = "created_at"
		}
		if !spec.HasField(orderBy) {
			return "", nil, &catalog.ValidationError{Field: orderBy, Reason: "unknown order-by field"}
		}
		dir := "DESC"
		if q.Ascending {
			dir = "ASC"
		}
		// Secondary key keeps ordering stable when created_at ties.
		sqlStr += fmt.Sprintf(" ORDER BY %s %s, id %s", quoteIdent(orderBy), dir, dir)
	}

	return sqlStr, args, nil
}

func checkFields(spec catalog.Spec, fields map[string]any) error {
	for name := range fields {
		if name == "id" || name == "created_at" {
			return &catalog.ValidationError{Field: name, Reason: "read-only field"}
		}
		if !spec.HasField(name) {
			return &catalog.ValidationError{Field: name, Reason: "unknown field"}
		}
	}
	return nil
}

// bindValue converts JSON-decoded values to something the sqlite driver
// accepts. Slices and maps (tags) are stored as JSON text, the way the
// original schema keeps them.
func bindValue(v any) any {
	switch v.(type) {
	case nil, string, bool, int, int64, float64, []byte, time.Time:
		return v
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}

func scanItem(rows *sql.Rows, cols []string) (catalog.Item, error) {
	raw := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range raw {
		ptrs[i] = &raw[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return catalog.Item{}, err
	}

	it := catalog.Item{Fields: make(map[string]any, len(cols))}
	for i, name := range cols {
		v := raw[i]
		if b, ok := v.([]byte); ok {
			v = string(b)
		}
		switch name {
		case "id":
			it.ID, _ = v.(string)
		case "created_at":
			it.CreatedAt = parseTime(v)
		default:
			it.Fields[name] = v
		}
	}
	return it, nil
}

func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", time.DateOnly} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedKeysStr(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, ``) + `"`
}
