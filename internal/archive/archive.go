//Package archive stores the computed sweeps in a SQLite database so the
//tables of different vehicles and runs can be compared later.
package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/gehtsoft-usa/go_aerotable"
)

//ErrNotFound is returned when there is no sweep with the id requested
var ErrNotFound = errors.New("archive: sweep not found")

//SweepRecord is one archived sweep
type SweepRecord struct {
	ID        string
	Vehicle   string
	MachStart float64
	MachStop  float64
	MachStep  float64
	AOA       float64 //degrees
	CreatedAt time.Time
	Table     go_aerotable.Table
}

//Archive is the sweep database
type Archive struct {
	db     *sql.DB
	path   string
	logger *zap.Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS sweeps (
	id TEXT PRIMARY KEY,
	vehicle TEXT NOT NULL,
	mach_start REAL NOT NULL,
	mach_stop REAL NOT NULL,
	mach_step REAL NOT NULL,
	aoa REAL NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS sweep_rows (
	sweep_id TEXT NOT NULL,
	idx INTEGER NOT NULL,
	mach REAL NOT NULL,
	cd REAL NOT NULL,
	cp REAL NOT NULL,
	cn REAL NOT NULL,
	cna REAL NOT NULL,
	PRIMARY KEY (sweep_id, idx),
	FOREIGN KEY (sweep_id) REFERENCES sweeps(id)
);
CREATE INDEX IF NOT EXISTS idx_sweeps_vehicle ON sweeps(vehicle);
`

//Open opens or creates the archive at the path specified.
//
//logger may be nil.
func Open(path string, logger *zap.Logger) (*Archive, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Debug("Archive opened", zap.String("path", path))
	return &Archive{db: db, path: path, logger: logger}, nil
}

//Close closes the database
func (a *Archive) Close() error {
	return a.db.Close()
}

//Path returns the database file path
func (a *Archive) Path() string {
	return a.path
}

//SaveSweep stores the sweep and returns its id.
//
//ID and CreatedAt of the record are ignored; a new id and the current time
//are used.
func (a *Archive) SaveSweep(ctx context.Context, rec SweepRecord) (string, error) {
	id := uuid.NewString()
	created := time.Now().UTC()

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO sweeps (id, vehicle, mach_start, mach_stop, mach_step, aoa, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, rec.Vehicle, rec.MachStart, rec.MachStop, rec.MachStep, rec.AOA, created.UnixNano())
	if err != nil {
		return "", fmt.Errorf("failed to insert sweep: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO sweep_rows (sweep_id, idx, mach, cd, cp, cn, cna) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare row insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range rec.Table {
		if _, err := stmt.ExecContext(ctx, id, i, row.Mach(), row.CD(), row.CP(), row.CN(), row.CNa()); err != nil {
			return "", fmt.Errorf("failed to insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit sweep: %w", err)
	}

	a.logger.Info("Sweep archived", zap.String("id", id), zap.String("vehicle", rec.Vehicle), zap.Int("rows", len(rec.Table)))
	return id, nil
}

//LoadSweep returns the sweep with its table
func (a *Archive) LoadSweep(ctx context.Context, id string) (SweepRecord, error) {
	rec := SweepRecord{ID: id}
	var created int64
	err := a.db.QueryRowContext(ctx,
		`SELECT vehicle, mach_start, mach_stop, mach_step, aoa, created_at FROM sweeps WHERE id = ?`, id).
		Scan(&rec.Vehicle, &rec.MachStart, &rec.MachStop, &rec.MachStep, &rec.AOA, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return SweepRecord{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return SweepRecord{}, fmt.Errorf("failed to query sweep: %w", err)
	}
	rec.CreatedAt = time.Unix(0, created).UTC()

	rows, err := a.db.QueryContext(ctx,
		`SELECT mach, cd, cp, cn, cna FROM sweep_rows WHERE sweep_id = ? ORDER BY idx`, id)
	if err != nil {
		return SweepRecord{}, fmt.Errorf("failed to query rows: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r go_aerotable.Row
		if err := rows.Scan(&r[go_aerotable.ColumnMach], &r[go_aerotable.ColumnCD], &r[go_aerotable.ColumnCP],
			&r[go_aerotable.ColumnCN], &r[go_aerotable.ColumnCNa]); err != nil {
			return SweepRecord{}, fmt.Errorf("failed to scan row: %w", err)
		}
		rec.Table = append(rec.Table, r)
	}
	if err := rows.Err(); err != nil {
		return SweepRecord{}, fmt.Errorf("failed to read rows: %w", err)
	}
	return rec, nil
}

//ListSweeps returns the archived sweeps without their tables, newest first
func (a *Archive) ListSweeps(ctx context.Context) ([]SweepRecord, error) {
	rows, err := a.db.QueryContext(ctx,
		`SELECT id, vehicle, mach_start, mach_stop, mach_step, aoa, created_at FROM sweeps ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sweeps: %w", err)
	}
	defer rows.Close()

	var records []SweepRecord
	for rows.Next() {
		var rec SweepRecord
		var created int64
		if err := rows.Scan(&rec.ID, &rec.Vehicle, &rec.MachStart, &rec.MachStop, &rec.MachStep, &rec.AOA, &created); err != nil {
			return nil, fmt.Errorf("failed to scan sweep: %w", err)
		}
		rec.CreatedAt = time.Unix(0, created).UTC()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sweeps: %w", err)
	}
	return records, nil
}
