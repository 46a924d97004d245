package postgres

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/store"
)

// table maps one entity type onto a CRM table. Column lists exclude the
// shared id, created_at and updated_at columns, which every table has.
// Only names listed here ever reach generated SQL; request input selects
// among them but is never interpolated.
type table[E domain.Entity] struct {
	name    string
	entity  string // singular name for errors and logs
	columns []string
	newE    func() E
	// values returns the column values of e in columns order.
	values func(e E) []any
	// targets returns scan destinations for columns in order.
	targets func(e E) []any

	search      []string          // columns matched by ListParams.Search
	filters     map[string]string // filter key -> column
	sorts       map[string]string // sort key -> column
	defaultSort string            // column, descending unless sortAsc
	sortAsc     bool
}

func (t *table[E]) selectList() string {
	cols := make([]string, 0, len(t.columns)+3)
	cols = append(cols, "id")
	cols = append(cols, t.columns...)
	cols = append(cols, "created_at", "updated_at")
	return strings.Join(cols, ", ")
}

func (t *table[E]) scanTargets(e E) []any {
	m := e.Meta()
	targets := make([]any, 0, len(t.columns)+3)
	targets = append(targets, &m.ID)
	targets = append(targets, t.targets(e)...)
	targets = append(targets, &m.CreatedAt, &m.UpdatedAt)
	return targets
}

// selectByIDSQL builds the single-row lookup.
func (t *table[E]) selectByIDSQL() string {
	return fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", t.selectList(), t.name)
}

// insertSQL builds an INSERT of every column plus timestamps.
func (t *table[E]) insertSQL() string {
	n := len(t.columns)
	placeholders := make([]string, n)
	for i := range placeholders {
		placeholders[i] = "$" + strconv.Itoa(i+1)
	}
	return fmt.Sprintf(
		"INSERT INTO %s (%s, created_at, updated_at) VALUES (%s, $%d, $%d) RETURNING id",
		t.name, strings.Join(t.columns, ", "), strings.Join(placeholders, ", "), n+1, n+1,
	)
}

// updateSQL builds an UPDATE of every column keyed by id.
func (t *table[E]) updateSQL() string {
	n := len(t.columns)
	sets := make([]string, n)
	for i, c := range t.columns {
		sets[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}
	return fmt.Sprintf(
		"UPDATE %s SET %s, updated_at = $%d WHERE id = $%d",
		t.name, strings.Join(sets, ", "), n+1, n+2,
	)
}

func (t *table[E]) deleteSQL() string {
	return fmt.Sprintf("DELETE FROM %s WHERE id = $1", t.name)
}

// escapeLike escapes LIKE wildcards in user search input.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// whereClause builds the WHERE part shared by the list and count queries.
// Filters are applied in sorted key order so the SQL is deterministic.
func (t *table[E]) whereClause(p store.ListParams) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if p.Search != "" && len(t.search) > 0 {
		args = append(args, "%"+escapeLike(p.Search)+"%")
		ph := "$" + strconv.Itoa(len(args))
		ors := make([]string, len(t.search))
		for i, c := range t.search {
			ors[i] = c + " ILIKE " + ph
		}
		conds = append(conds, "("+strings.Join(ors, " OR ")+")")
	}
	for _, key := range sortedKeys(p.Filters) {
		col, ok := t.filters[key]
		if !ok || p.Filters[key] == "" {
			continue
		}
		args = append(args, p.Filters[key])
		conds = append(conds, fmt.Sprintf("%s::text = $%d", col, len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (t *table[E]) orderClause(p store.ListParams) string {
	col, ok := t.sorts[p.Sort]
	desc := p.Desc
	if !ok {
		col = t.defaultSort
		desc = !t.sortAsc
	}
	if col == "" {
		col = "id"
	}
	dir := "ASC"
	if desc {
		dir = "DESC"
	}
	if col == "id" {
		return " ORDER BY id " + dir
	}
	return fmt.Sprintf(" ORDER BY %s %s, id %s", col, dir, dir)
}

// listSQL builds the page query and the matching count query.
func (t *table[E]) listSQL(p store.ListParams) (string, string, []any) {
	where, args := t.whereClause(p)
	count := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", t.name, where)
	n := len(args)
	query := fmt.Sprintf("SELECT %s FROM %s%s%s LIMIT $%d OFFSET $%d",
		t.selectList(), t.name, where, t.orderClause(p), n+1, n+2)
	return query, count, args
}

func (t *table[E]) get(ctx context.Context, q store.DBTX, id int64) (E, error) {
	e := t.newE()
	if err := q.QueryRowContext(ctx, t.selectByIDSQL(), id).Scan(t.scanTargets(e)...); err != nil {
		var zero E
		return zero, fmt.Errorf("get %s %d: %w", t.entity, id, MapError(err))
	}
	return e, nil
}

func (t *table[E]) list(ctx context.Context, q store.DBTX, p store.ListParams) (*store.Page[E], error) {
	query, countQuery, args := t.listSQL(p)

	page := &store.Page[E]{Items: []E{}, Page: p.Page, PerPage: p.PerPage}
	if err := q.QueryRowContext(ctx, countQuery, args...).Scan(&page.Total); err != nil {
		return nil, fmt.Errorf("count %s: %w", t.name, MapError(err))
	}
	if page.Total == 0 {
		return page, nil
	}

	rows, err := q.QueryContext(ctx, query, append(args, p.PerPage, p.Offset())...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.name, MapError(err))
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		e := t.newE()
		if err := rows.Scan(t.scanTargets(e)...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.entity, err)
		}
		page.Items = append(page.Items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", t.name, err)
	}
	return page, nil
}

func (t *table[E]) insert(ctx context.Context, q store.DBTX, e E, now time.Time) error {
	args := append(t.values(e), utc(now))
	m := e.Meta()
	if err := q.QueryRowContext(ctx, t.insertSQL(), args...).Scan(&m.ID); err != nil {
		return fmt.Errorf("create %s: %w", t.entity, MapError(err))
	}
	m.CreatedAt = utc(now)
	m.UpdatedAt = utc(now)
	return nil
}

func (t *table[E]) update(ctx context.Context, q store.DBTX, e E, now time.Time) error {
	m := e.Meta()
	args := append(t.values(e), utc(now), m.ID)
	res, err := q.ExecContext(ctx, t.updateSQL(), args...)
	if err != nil {
		return fmt.Errorf("update %s %d: %w", t.entity, m.ID, MapError(err))
	}
	if err := CheckRowsAffected(res, t.entity); err != nil {
		return err
	}
	m.UpdatedAt = utc(now)
	return nil
}

func (t *table[E]) delete(ctx context.Context, q store.DBTX, id int64) error {
	res, err := q.ExecContext(ctx, t.deleteSQL(), id)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", t.entity, id, MapError(err))
	}
	return CheckRowsAffected(res, t.entity)
}

func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}
