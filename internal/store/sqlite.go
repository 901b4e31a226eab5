package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	_ "modernc.org/sqlite"
)

const createBodies = `CREATE TABLE IF NOT EXISTS bodies (
	TIME INTEGER NOT NULL,
	ANNOTATOR_NAME TEXT,
	BODY_NAME TEXT NOT NULL,
	BODY_NUMBER INTEGER NOT NULL,
	X_POSITION INTEGER NOT NULL,
	Y_POSITION INTEGER NOT NULL,
	GRID_ID TEXT NOT NULL,
	GR INTEGER,
	MAF INTEGER,
	MP INTEGER,
	UNSURE INTEGER,
	NOTES TEXT,
	BODY_FILE_NAME TEXT,
	ANNOTATION_FILE_NAME TEXT,
	ANGLE REAL,
	LOG REAL,
	DPRONG1 REAL,
	LPRONG2 REAL)`

const selectBody = `SELECT TIME, ANNOTATOR_NAME, BODY_NAME, BODY_NUMBER, X_POSITION, Y_POSITION,
	GRID_ID, GR, MAF, MP, UNSURE, NOTES, BODY_FILE_NAME, ANNOTATION_FILE_NAME,
	ANGLE, LOG, DPRONG1, LPRONG2
	FROM bodies WHERE TIME = ?`

// SQLite is an AnnotationStore backed by the bodies table of a body database
type SQLite struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the database file at path
func Open(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return &SQLite{db: db, path: path}, nil
}

// Init creates the bodies table if it does not exist
func (s *SQLite) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createBodies); err != nil {
		return fmt.Errorf("failed to create bodies table: %w", err)
	}
	return nil
}

// Close closes the database
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Insert adds a body record
func (s *SQLite) Insert(ctx context.Context, r Record) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO bodies (TIME, ANNOTATOR_NAME, BODY_NAME, BODY_NUMBER,
		X_POSITION, Y_POSITION, GRID_ID, GR, MAF, MP, UNSURE, NOTES, BODY_FILE_NAME,
		ANNOTATION_FILE_NAME, ANGLE, LOG, DPRONG1, LPRONG2)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Time, r.AnnotatorName, r.BodyName, r.BodyNumber, r.X, r.Y, r.GridID,
		r.GR, r.MAF, r.MP, r.Unsure, r.Notes, r.BodyFileName, r.AnnotationFileName,
		nullable(r.Angle), nullable(r.Log), nullable(r.DProng1), nullable(r.LProng2))
	if err != nil {
		return fmt.Errorf("failed to insert body %d: %w", r.Time, err)
	}
	return nil
}

// Get reads a full record
func (s *SQLite) Get(ctx context.Context, id int64) (Record, error) {
	var (
		r                                   Record
		annotator, notes, bodyFile, annFile sql.NullString
		gr, maf, mp, unsure                 sql.NullBool
		angle, logRatio, dprong1, lprong2   sql.NullFloat64
	)

	err := s.db.QueryRowContext(ctx, selectBody, id).Scan(
		&r.Time, &annotator, &r.BodyName, &r.BodyNumber, &r.X, &r.Y,
		&r.GridID, &gr, &maf, &mp, &unsure, &notes, &bodyFile, &annFile,
		&angle, &logRatio, &dprong1, &lprong2)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("body %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to read body %d: %w", id, err)
	}

	r.AnnotatorName = annotator.String
	r.Notes = notes.String
	r.BodyFileName = bodyFile.String
	r.AnnotationFileName = annFile.String
	r.GR, r.MAF, r.MP, r.Unsure = gr.Bool, maf.Bool, mp.Bool, unsure.Bool
	r.Fields = Fields{
		Angle:   pointer(angle),
		Log:     pointer(logRatio),
		DProng1: pointer(dprong1),
		LProng2: pointer(lprong2),
	}
	return r, nil
}

// Location implements AnnotationStore
func (s *SQLite) Location(ctx context.Context, id int64) (Location, error) {
	var loc Location
	err := s.db.QueryRowContext(ctx,
		`SELECT GRID_ID, X_POSITION, Y_POSITION FROM bodies WHERE TIME = ?`, id).
		Scan(&loc.GridID, &loc.X, &loc.Y)
	if errors.Is(err, sql.ErrNoRows) {
		return Location{}, fmt.Errorf("body %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return Location{}, fmt.Errorf("failed to read location of body %d: %w", id, err)
	}
	return loc, nil
}

// UpdateMeasurements implements AnnotationStore. All four columns are
// written by one statement.
func (s *SQLite) UpdateMeasurements(ctx context.Context, id int64, f Fields) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE bodies SET ANGLE = ?, LOG = ?, DPRONG1 = ?, LPRONG2 = ? WHERE TIME = ?`,
		nullable(f.Angle), nullable(f.Log), nullable(f.DProng1), nullable(f.LProng2), id)
	if err != nil {
		return fmt.Errorf("failed to update body %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update body %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("body %d: %w", id, ErrNotFound)
	}

	log.Printf("store: updated body %d in %s", id, s.path)
	return nil
}

func nullable(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func pointer(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return ptr(v.Float64)
}
