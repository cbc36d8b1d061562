package crud

import "time"

// Meta служебные поля, общие для всех таблиц
type Meta struct {
	ID        int64
	Deleted   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Schema описывает отображение сущности T на таблицу
type Schema[T any] struct {
	// Table имя таблицы
	Table string
	// Columns изменяемые колонки (без id, deleted, created_at, updated_at)
	Columns []string
	// Values значения колонок в порядке Columns
	Values func(e *T) []interface{}
	// Fields указатели на поля сущности в порядке Columns
	Fields func(e *T) []interface{}
	// SetMeta заполняет служебные поля
	SetMeta func(e *T, m Meta)
}

func (s Schema[T]) selectColumns() []string {
	cols := make([]string, 0, len(s.Columns)+4)
	cols = append(cols, "id")
	cols = append(cols, s.Columns...)
	return append(cols, "deleted", "created_at", "updated_at")
}

func (s Schema[T]) valueMap(e *T) map[string]interface{} {
	values := s.Values(e)
	m := make(map[string]interface{}, len(values))
	for i, col := range s.Columns {
		m[col] = values[i]
	}
	return m
}
