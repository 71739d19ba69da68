package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/qninhdt/datadeck/server/internal/game"
	"github.com/qninhdt/datadeck/server/internal/tournament"
)

// DB is the append-only ledger of sessions, turns and matches
type DB struct {
	conn *sql.DB
	mu   sync.RWMutex
}

// MatchRecord is a stored match with the ids that were requested
type MatchRecord struct {
	Card1ID string `json:"card1_id"`
	Card2ID string `json:"card2_id"`
	tournament.MatchResult
}

// NewDB opens the database and runs migrations
func NewDB(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	// one connection keeps ":memory:" databases shared and serializes writers
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate runs database migrations
func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		owner TEXT NOT NULL,
		strategy TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS turns (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		turn INTEGER NOT NULL,
		strategy TEXT NOT NULL,
		cards_json TEXT NOT NULL,
		mana_used INTEGER NOT NULL,
		targets_json TEXT NOT NULL,
		damage_dealt INTEGER NOT NULL,
		played_at DATETIME NOT NULL,
		FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS matches (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		match_id TEXT,
		match_number INTEGER NOT NULL,
		card1_id TEXT NOT NULL,
		card2_id TEXT NOT NULL,
		winner_id TEXT,
		winner TEXT,
		winner_rating INTEGER,
		loser_id TEXT,
		loser TEXT,
		loser_rating INTEGER,
		draw INTEGER NOT NULL,
		error TEXT,
		played_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_owner ON sessions(owner);
	CREATE INDEX IF NOT EXISTS idx_turns_session_id ON turns(session_id);
	`

	_, err := db.conn.Exec(schema)
	return err
}

// SaveSession records who created a session
func (db *DB) SaveSession(ctx context.Context, sessionID, owner, strategy string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	_, err := db.conn.ExecContext(ctx, `
		INSERT OR REPLACE INTO sessions (id, owner, strategy)
		VALUES (?, ?, ?)
	`, sessionID, owner, strategy)
	return err
}

// GetSessionOwner returns the owner of a session
func (db *DB) GetSessionOwner(ctx context.Context, sessionID string) (string, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var owner string
	err := db.conn.QueryRowContext(ctx, `
		SELECT owner FROM sessions WHERE id = ?
	`, sessionID).Scan(&owner)

	if err != nil {
		return "", err
	}
	return owner, nil
}

// IsSessionOwner checks if user owns the session
func (db *DB) IsSessionOwner(ctx context.Context, sessionID, userID string) (bool, error) {
	owner, err := db.GetSessionOwner(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return owner == userID, nil
}

// SaveTurns appends turn records in one transaction
func (db *DB) SaveTurns(ctx context.Context, recs []*game.TurnRecord) error {
	if len(recs) == 0 {
		return nil
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, rec := range recs {
		cardsJSON, err := json.Marshal(rec.CardsPlayed)
		if err != nil {
			return err
		}
		targetsJSON, err := json.Marshal(rec.Targets)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO turns (
				session_id, turn, strategy, cards_json, mana_used, targets_json, damage_dealt, played_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, rec.SessionID, rec.Turn, rec.Strategy, string(cardsJSON), rec.ManaUsed,
			string(targetsJSON), rec.DamageDealt, rec.PlayedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListTurns returns a session's turns in order
func (db *DB) ListTurns(ctx context.Context, sessionID string) ([]game.TurnRecord, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT session_id, turn, strategy, cards_json, mana_used, targets_json, damage_dealt, played_at
		FROM turns
		WHERE session_id = ?
		ORDER BY turn ASC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recs := make([]game.TurnRecord, 0)
	for rows.Next() {
		var (
			rec                    game.TurnRecord
			cardsJSON, targetsJSON string
		)
		if err := rows.Scan(&rec.SessionID, &rec.Turn, &rec.Strategy, &cardsJSON, &rec.ManaUsed,
			&targetsJSON, &rec.DamageDealt, &rec.PlayedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(cardsJSON), &rec.CardsPlayed); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(targetsJSON), &rec.Targets); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

// SaveMatch appends a match result, including failed lookups
func (db *DB) SaveMatch(ctx context.Context, card1ID, card2ID string, res tournament.MatchResult) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO matches (
			match_id, match_number, card1_id, card2_id, winner_id, winner, winner_rating,
			loser_id, loser, loser_rating, draw, error, played_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, res.MatchID, res.Number, card1ID, card2ID, res.WinnerID, res.Winner, res.WinnerRating,
		res.LoserID, res.Loser, res.LoserRating, boolToInt(res.Draw), res.Error, res.PlayedAt)
	return err
}

// ListMatches returns the most recent matches first
func (db *DB) ListMatches(ctx context.Context, limit int) ([]MatchRecord, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT match_id, match_number, card1_id, card2_id, winner_id, winner, winner_rating,
		       loser_id, loser, loser_rating, draw, error, played_at
		FROM matches
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recs := make([]MatchRecord, 0)
	for rows.Next() {
		var (
			rec  MatchRecord
			draw int
		)
		if err := rows.Scan(&rec.MatchID, &rec.Number, &rec.Card1ID, &rec.Card2ID, &rec.WinnerID,
			&rec.Winner, &rec.WinnerRating, &rec.LoserID, &rec.Loser, &rec.LoserRating,
			&draw, &rec.Error, &rec.PlayedAt); err != nil {
			return nil, err
		}
		rec.Draw = intToBool(draw)
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

// Helper functions
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}
