package postgres

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Builder returns a squirrel statement builder using $n placeholders.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// Live restricts a query to rows that are not soft-deleted.
func Live(table string) sq.Sqlizer {
	if table == "" {
		return sq.Eq{"deleted_at": nil}
	}
	return sq.Eq{table + ".deleted_at": nil}
}

// Paginate applies clamped limit/offset to a select.
func Paginate(q sq.SelectBuilder, limit, offset int) sq.SelectBuilder {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return q.Limit(uint64(limit)).Offset(uint64(offset))
}

// ILike returns a case-insensitive substring match on column.
func ILike(column, search string) sq.Sqlizer {
	return sq.ILike{column: "%" + escapeLike(search) + "%"}
}

func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
