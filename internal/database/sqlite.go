package database

import (
	"database/sql"

	"github.com/mattn/go-sqlite3"
	"golang.org/x/text/cases"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SQLiteDriverName is a go-sqlite3 driver whose connections know CaseFold.
// SQLite's own LOWER and LIKE only fold ASCII letters.
const SQLiteDriverName = "sqlite3_tareas"

// CaseFoldFunc is the SQL function name available on SQLite connections.
const CaseFoldFunc = "casefold"

func init() {
	sql.Register(SQLiteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc(CaseFoldFunc, CaseFold, true)
		},
	})
}

// CaseFold folds s for caseless comparison using full Unicode case folding.
func CaseFold(s string) string {
	return cases.Fold().String(s)
}

// SQLite returns a gorm dialector for dsn on the casefold-aware driver.
func SQLite(dsn string) gorm.Dialector {
	return sqlite.New(sqlite.Config{DriverName: SQLiteDriverName, DSN: dsn})
}
