package state

import (
	"database/sql"
	"errors"
	"time"
)

// Selection is the memo under the cursor when the app last ran.
type Selection struct {
	MemoName string
}

func getSelection(db *sql.DB) (*Selection, error) {
	var name sql.NullString
	err := db.QueryRow(`SELECT memo_name FROM selection_state WHERE id = 1`).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}
	return &Selection{MemoName: name.String}, nil
}

func saveSelection(db *sql.DB, sel Selection) error {
	_, err := db.Exec(`
		INSERT INTO selection_state (id, memo_name) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET memo_name = excluded.memo_name
	`, sel.MemoName)
	return err
}

func recordEdit(db *sql.DB, name string, at time.Time) error {
	_, err := db.Exec(`
		INSERT INTO memo_edits (name, edited_at, edit_count) VALUES (?, ?, 1)
		ON CONFLICT(name) DO UPDATE SET
			edited_at = excluded.edited_at,
			edit_count = memo_edits.edit_count + 1
	`, name, at.Unix())
	return err
}

func lastEdits(db *sql.DB) (map[string]time.Time, error) {
	rows, err := db.Query(`SELECT name, edited_at FROM memo_edits`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	edits := make(map[string]time.Time)
	for rows.Next() {
		var name string
		var at int64
		if err := rows.Scan(&name, &at); err != nil {
			return nil, err
		}
		edits[name] = time.Unix(at, 0)
	}
	return edits, rows.Err()
}

// forget drops everything stored about a deleted memo.
func forget(db *sql.DB, name string) error {
	return withTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM memo_edits WHERE name = ?`, name); err != nil {
			return err
		}
		_, err := tx.Exec(`UPDATE selection_state SET memo_name = NULL WHERE memo_name = ?`, name)
		return err
	})
}

// withTx executes fn within a transaction.
// It handles Begin, Rollback on error, and Commit on success.
func withTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // rollback on error is intentional

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
