// Package sqlite persists generated boards in a SQLite database.
//
// A board records a generated deal together with the generator metadata
// (seed, iteration count) and, once available, the double-dummy solution.
// Hands and solutions are stored as JSON text columns; timestamps are
// stored as Unix milliseconds.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/louisbranch/bridge-engine/internal/bridge"
	"github.com/louisbranch/bridge-engine/internal/bridge/solver"
	"github.com/louisbranch/bridge-engine/internal/platform/id"
	"github.com/louisbranch/bridge-engine/internal/platform/storage/sqlitemigrate"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// ErrNotFound is returned when no board exists with the requested id.
var ErrNotFound = errors.New("board not found")

// Board is a stored deal with its generation metadata and optional solution.
type Board struct {
	ID         string
	Deal       bridge.Deal
	Iterations int
	Seed       *int64
	Solution   *solver.Solution
	CreatedAt  time.Time
}

// Store provides board persistence backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at path and applies
// pending migrations. Use ":memory:" for an ephemeral database.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := sqlitemigrate.ApplyMigrations(db, migrationFS, "migrations"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveBoard stores a generated board and returns its assigned id.
func (s *Store) SaveBoard(ctx context.Context, deal bridge.Deal, iterations int, seed *int64) (Board, error) {
	if err := deal.Validate(); err != nil {
		return Board{}, fmt.Errorf("validate deal: %w", err)
	}

	boardID, err := id.NewID()
	if err != nil {
		return Board{}, fmt.Errorf("generate board id: %w", err)
	}

	hands, err := json.Marshal(deal.Hands)
	if err != nil {
		return Board{}, fmt.Errorf("encode hands: %w", err)
	}

	board := Board{
		ID:         boardID,
		Deal:       deal,
		Iterations: iterations,
		Seed:       seed,
		CreatedAt:  time.Now().UTC(),
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO boards (id, dealer, vulnerability, hands, iterations, seed, solution, created_at)
VALUES (?, ?, ?, ?, ?, ?, NULL, ?)
`,
		board.ID,
		deal.Dealer.String(),
		deal.Vulnerability.String(),
		string(hands),
		iterations,
		seedValue(seed),
		toMillis(board.CreatedAt),
	)
	if err != nil {
		return Board{}, fmt.Errorf("insert board: %w", err)
	}

	return board, nil
}

// GetBoard loads a stored board by id.
func (s *Store) GetBoard(ctx context.Context, boardID string) (Board, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, dealer, vulnerability, hands, iterations, seed, solution, created_at
FROM boards WHERE id = ?
`, boardID)

	var (
		board        Board
		dealer       string
		vuln         string
		hands        string
		seed         sql.NullInt64
		solutionText sql.NullString
		createdAt    int64
	)
	err := row.Scan(&board.ID, &dealer, &vuln, &hands, &board.Iterations, &seed, &solutionText, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Board{}, ErrNotFound
		}
		return Board{}, fmt.Errorf("query board: %w", err)
	}

	if err := board.Deal.Dealer.UnmarshalText([]byte(dealer)); err != nil {
		return Board{}, fmt.Errorf("decode dealer: %w", err)
	}
	if err := board.Deal.Vulnerability.UnmarshalText([]byte(vuln)); err != nil {
		return Board{}, fmt.Errorf("decode vulnerability: %w", err)
	}
	if err := json.Unmarshal([]byte(hands), &board.Deal.Hands); err != nil {
		return Board{}, fmt.Errorf("decode hands: %w", err)
	}
	if seed.Valid {
		value := seed.Int64
		board.Seed = &value
	}
	if solutionText.Valid && solutionText.String != "" {
		var solution solver.Solution
		if err := json.Unmarshal([]byte(solutionText.String), &solution); err != nil {
			return Board{}, fmt.Errorf("decode solution: %w", err)
		}
		board.Solution = &solution
	}
	board.CreatedAt = fromMillis(createdAt)

	return board, nil
}

// AttachSolution records a double-dummy solution against an existing board.
func (s *Store) AttachSolution(ctx context.Context, boardID string, solution solver.Solution) error {
	encoded, err := json.Marshal(solution)
	if err != nil {
		return fmt.Errorf("encode solution: %w", err)
	}

	result, err := s.db.ExecContext(ctx,
		"UPDATE boards SET solution = ? WHERE id = ?",
		string(encoded), boardID,
	)
	if err != nil {
		return fmt.Errorf("update board solution: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func seedValue(seed *int64) any {
	if seed == nil {
		return nil
	}
	return *seed
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
