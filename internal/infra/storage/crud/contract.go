package crud

import "github.com/m04kA/SMC-TennisClubService/pkg/dbmetrics"

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// RowScanner общий интерфейс *sql.Row и *sql.Rows
type RowScanner interface {
	Scan(dest ...interface{}) error
}
