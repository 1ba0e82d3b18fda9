package directory

import (
	"database/sql"

	_ "github.com/lib/pq"
)

// PostgresBackend keeps the directory in a two-column table. Saves replace
// the table contents in one transaction, mirroring the wholesale-rewrite
// contract of the file backend.
type PostgresBackend struct {
	db *sql.DB
}

func NewPostgresBackend(conn *sql.DB) *PostgresBackend {
	return &PostgresBackend{db: conn}
}

// OpenPostgres connects and ensures the table exists.
func OpenPostgres(databaseURL string) (*PostgresBackend, error) {
	conn, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}
	if err := conn.Ping(); err != nil {
		return nil, err
	}
	_, err = conn.Exec(`CREATE TABLE IF NOT EXISTS phone_directory (
		name  TEXT PRIMARY KEY,
		phone TEXT NOT NULL
	)`)
	if err != nil {
		return nil, err
	}
	return &PostgresBackend{db: conn}, nil
}

func (p *PostgresBackend) Load() (map[string]string, error) {
	rows, err := p.db.Query("SELECT name, phone FROM phone_directory")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries map[string]string
	for rows.Next() {
		var name, phone string
		if err := rows.Scan(&name, &phone); err != nil {
			return nil, err
		}
		if entries == nil {
			entries = make(map[string]string)
		}
		entries[name] = phone
	}
	return entries, rows.Err()
}

func (p *PostgresBackend) Save(entries map[string]string) error {
	tx, err := p.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM phone_directory"); err != nil {
		return err
	}
	for name, phone := range entries {
		if _, err := tx.Exec("INSERT INTO phone_directory (name, phone) VALUES ($1, $2)", name, phone); err != nil {
			return err
		}
	}
	return tx.Commit()
}
