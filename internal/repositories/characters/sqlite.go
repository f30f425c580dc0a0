package characters

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/fableforge/gamemaster/internal/domain/character"
	apperr "github.com/fableforge/gamemaster/internal/errors"
	_ "modernc.org/sqlite"
)

const createTableDDL = `
CREATE TABLE IF NOT EXISTS characters (
	user_id TEXT PRIMARY KEY,
	name TEXT,
	race TEXT,
	class TEXT,
	level INTEGER,
	xp INTEGER,
	hp INTEGER,
	strength INTEGER,
	dexterity INTEGER,
	constitution INTEGER,
	intelligence INTEGER,
	wisdom INTEGER,
	charisma INTEGER,
	invisible_until INTEGER,
	last_spell_used INTEGER
);
`

const characterColumns = `user_id, name, race, class, level, xp, hp,
	strength, dexterity, constitution, intelligence, wisdom, charisma,
	invisible_until, last_spell_used`

// SQLiteRepository implements Repository over a single SQLite file, using
// the same characters table the admin dashboard reads.
type SQLiteRepository struct {
	db *sql.DB
}

// OpenSQLiteRepository opens (or creates) the database at path and ensures
// the characters table exists.
func OpenSQLiteRepository(path string) (*SQLiteRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, apperr.InvalidArgument("storage path is required")
	}

	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to open sqlite db")
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to ping sqlite db")
	}

	if _, err := db.Exec(createTableDDL); err != nil {
		_ = db.Close()
		return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to create characters table")
	}

	return &SQLiteRepository{db: db}, nil
}

// Close releases the underlying database
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Create stores a new character
func (r *SQLiteRepository) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}
	if char.PlayerID == "" {
		return apperr.InvalidArgument("character player ID is required")
	}

	var exists int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM characters WHERE user_id = ?`, char.PlayerID).Scan(&exists)
	if err != nil {
		return apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to check character existence")
	}
	if exists > 0 {
		return apperr.AlreadyExistsf("character for player '%s' already exists", char.PlayerID).
			WithMeta("player_id", char.PlayerID)
	}

	return r.Save(ctx, char)
}

// Get retrieves a character by player ID
func (r *SQLiteRepository) Get(ctx context.Context, playerID string) (*character.Character, error) {
	if playerID == "" {
		return nil, apperr.InvalidArgument("player ID is required")
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT `+characterColumns+` FROM characters WHERE user_id = ?`, playerID)

	char, err := scanCharacter(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFoundf("character for player '%s' not found", playerID).
			WithMeta("player_id", playerID)
	}
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to get character")
	}

	return char, nil
}

// Save upserts the full record, matching the dashboard's INSERT OR REPLACE
func (r *SQLiteRepository) Save(ctx context.Context, char *character.Character) error {
	if char == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}
	if char.PlayerID == "" {
		return apperr.InvalidArgument("character player ID is required")
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO characters (`+characterColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		char.PlayerID, char.Name, char.Race, char.Class,
		char.Level, char.XP, char.HP,
		char.Strength, char.Dexterity, char.Constitution,
		char.Intelligence, char.Wisdom, char.Charisma,
		char.InvisibleUntil, char.LastAbilityUse,
	)
	if err != nil {
		return apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to save character")
	}

	return nil
}

// List retrieves every stored character, ordered by player ID
func (r *SQLiteRepository) List(ctx context.Context) ([]*character.Character, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+characterColumns+` FROM characters ORDER BY user_id`)
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to list characters")
	}
	defer func() { _ = rows.Close() }()

	var chars []*character.Character
	for rows.Next() {
		char, scanErr := scanCharacter(rows)
		if scanErr != nil {
			return nil, apperr.Wrap(scanErr, "failed to scan character row")
		}
		chars = append(chars, char)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to iterate characters")
	}

	return chars, nil
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanCharacter(row scanner) (*character.Character, error) {
	var char character.Character
	err := row.Scan(
		&char.PlayerID, &char.Name, &char.Race, &char.Class,
		&char.Level, &char.XP, &char.HP,
		&char.Strength, &char.Dexterity, &char.Constitution,
		&char.Intelligence, &char.Wisdom, &char.Charisma,
		&char.InvisibleUntil, &char.LastAbilityUse,
	)
	if err != nil {
		return nil, err
	}
	return &char, nil
}
