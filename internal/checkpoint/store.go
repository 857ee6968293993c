// Package checkpoint persists per-cycle pool snapshots in SQLite so an
// interrupted run can be resumed from its last committed pool and completed
// runs can be inspected after the fact.
package checkpoint

import (
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id       TEXT PRIMARY KEY,
	created_at   TEXT NOT NULL,
	config_json  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS pool_snapshots (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id    TEXT NOT NULL,
	cycle     INTEGER NOT NULL,
	cursor    INTEGER NOT NULL,
	slot      INTEGER NOT NULL,
	trust     REAL NOT NULL,
	energy    REAL NOT NULL,
	coeffs    BLOB NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);

CREATE INDEX IF NOT EXISTS idx_snapshots_run_cycle
	ON pool_snapshots (run_id, cycle, slot);
`
// #endregion schema

// #region records
// RunRecord describes one solver run.
type RunRecord struct {
	RunID      string
	CreatedAt  time.Time
	ConfigJSON string
}

// SlotRecord is the persisted view of one pool slot at one cycle.
type SlotRecord struct {
	Slot   int
	Trust  float64
	Energy float64
	Coeffs *mat.Dense
}

// CycleRecord is a full pool snapshot for a single cycle.
type CycleRecord struct {
	Cycle  int
	Cursor int
	Slots  []SlotRecord
}
// #endregion records

// #region store-struct
// Store manages run checkpoints in SQLite.
type Store struct {
	db *sql.DB
}
// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}
// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
// #endregion close

// #region create-run
// CreateRun registers a new run and returns its generated ID.
func (s *Store) CreateRun(config interface{}) (string, error) {
	cfgJSON, err := json.Marshal(config)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err = s.db.Exec(
		`INSERT INTO runs (run_id, created_at, config_json) VALUES (?, ?, ?)`,
		id, now.Format(time.RFC3339Nano), string(cfgJSON),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return id, nil
}
// #endregion create-run

// #region save-cycle
// SaveCycle writes one full pool snapshot atomically. Re-saving the same
// cycle (after a crash between save and commit) first drops the stale rows.
func (s *Store) SaveCycle(runID string, cycle, cursor int, slots []SlotRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`DELETE FROM pool_snapshots WHERE run_id = ? AND cycle = ?`, runID, cycle,
	)
	if err != nil {
		return fmt.Errorf("clear cycle: %w", err)
	}

	for _, rec := range slots {
		_, err = tx.Exec(
			`INSERT INTO pool_snapshots (run_id, cycle, cursor, slot, trust, energy, coeffs)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			runID, cycle, cursor, rec.Slot, rec.Trust, rec.Energy, encodeMatrix(rec.Coeffs),
		)
		if err != nil {
			return fmt.Errorf("insert slot %d: %w", rec.Slot, err)
		}
	}
	return tx.Commit()
}
// #endregion save-cycle

// #region load-latest
// LoadLatest returns the most recent pool snapshot of a run.
func (s *Store) LoadLatest(runID string) (CycleRecord, error) {
	var cycle int
	err := s.db.QueryRow(
		`SELECT MAX(cycle) FROM pool_snapshots WHERE run_id = ?`, runID,
	).Scan(&cycle)
	if err != nil {
		return CycleRecord{}, fmt.Errorf("latest cycle for run %s: %w", runID, err)
	}
	return s.LoadCycle(runID, cycle)
}

// LoadCycle returns the pool snapshot of a specific cycle.
func (s *Store) LoadCycle(runID string, cycle int) (CycleRecord, error) {
	rows, err := s.db.Query(
		`SELECT cursor, slot, trust, energy, coeffs
		 FROM pool_snapshots WHERE run_id = ? AND cycle = ? ORDER BY slot`,
		runID, cycle,
	)
	if err != nil {
		return CycleRecord{}, fmt.Errorf("load cycle %d: %w", cycle, err)
	}
	defer rows.Close()

	rec := CycleRecord{Cycle: cycle}
	for rows.Next() {
		var slot SlotRecord
		var blob []byte
		if err := rows.Scan(&rec.Cursor, &slot.Slot, &slot.Trust, &slot.Energy, &blob); err != nil {
			return CycleRecord{}, fmt.Errorf("scan row: %w", err)
		}
		slot.Coeffs, err = decodeMatrix(blob)
		if err != nil {
			return CycleRecord{}, fmt.Errorf("decode slot %d: %w", slot.Slot, err)
		}
		rec.Slots = append(rec.Slots, slot)
	}
	if err := rows.Err(); err != nil {
		return CycleRecord{}, err
	}
	if len(rec.Slots) == 0 {
		return CycleRecord{}, fmt.Errorf("no snapshot for run %s cycle %d", runID, cycle)
	}
	return rec, nil
}
// #endregion load-latest

// #region list-runs
// ListRuns returns the most recent runs.
func (s *Store) ListRuns(limit int) ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT run_id, created_at, config_json FROM runs
		 ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		var createdStr string
		if err := rows.Scan(&rec.RunID, &createdStr, &rec.ConfigJSON); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}
// #endregion list-runs

// #region matrix-encoding
// Matrices are stored as two little-endian uint32 dimensions followed by
// row-major float64 values.
func encodeMatrix(m *mat.Dense) []byte {
	r, c := m.Dims()
	buf := make([]byte, 8+r*c*8)
	binary.LittleEndian.PutUint32(buf[0:], uint32(r))
	binary.LittleEndian.PutUint32(buf[4:], uint32(c))
	off := 8
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			binary.LittleEndian.PutUint64(buf[off:], math.Float64bits(m.At(i, j)))
			off += 8
		}
	}
	return buf
}

func decodeMatrix(b []byte) (*mat.Dense, error) {
	if len(b) < 8 {
		return nil, fmt.Errorf("blob too short: %d bytes", len(b))
	}
	r := int(binary.LittleEndian.Uint32(b[0:]))
	c := int(binary.LittleEndian.Uint32(b[4:]))
	if r <= 0 || c <= 0 || len(b) != 8+r*c*8 {
		return nil, fmt.Errorf("blob is %d bytes for a %d×%d matrix", len(b), r, c)
	}
	data := make([]float64, r*c)
	for i := range data {
		data[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[8+i*8:]))
	}
	return mat.NewDense(r, c, data), nil
}
// #endregion matrix-encoding
