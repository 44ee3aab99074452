// Package store implements the SQLite catalog store: the piece-type records
// of a catalog document, queryable through SQL, with catalog.json in the
// data directory as the source of truth.
package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/brickforge/pab/internal/catalog"
	"github.com/brickforge/pab/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// CatalogFile is the name of the source-of-truth document in the data dir.
const CatalogFile = "catalog.json"

// Store persists catalog documents. The SQLite database is rebuilt from
// catalog.json on Attach; writes go to both.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// Errors returned by the store lifecycle.
var (
	ErrDetached        = fmt.Errorf("store is detached")
	ErrAlreadyAttached = fmt.Errorf("store is already attached")
)

// New creates an unattached store. Call Attach with a Config to initialize.
func New() *Store {
	return &Store{}
}

// Attach initializes the store: creates the data directory, rebuilds the
// SQLite database from schema, initializes an empty catalog.json when
// missing, and loads the document into SQLite.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	// Fresh schema on every attach: catalog.json is authoritative.
	dbPath := filepath.Join(dataDir, "catalog.db")
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return err
	}

	s.db = db
	s.config = config
	s.config.DataDir = dataDir

	if err := s.initCatalogFile(); err != nil {
		db.Close()
		return err
	}
	records, err := catalog.ReadRecords(s.catalogPath())
	if err != nil {
		db.Close()
		return fmt.Errorf("load catalog document: %w", err)
	}
	if err := s.replaceRows(records); err != nil {
		db.Close()
		return fmt.Errorf("load catalog into sqlite: %w", err)
	}

	s.attached = true
	return nil
}

// Detach closes the database. The store can be re-attached afterwards.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return ErrDetached
	}
	s.attached = false
	return s.db.Close()
}

// SaveCatalog replaces the stored catalog with the given records, writing
// SQLite first and then catalog.json atomically.
func (s *Store) SaveCatalog(records []catalog.PieceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return ErrDetached
	}
	if err := s.replaceRows(records); err != nil {
		return err
	}
	return catalog.WriteRecords(s.catalogPath(), records)
}

// LoadCatalog reads the stored catalog back out of SQLite, pieces ordered
// by family and ascending area, colors and substitute lines in insertion
// order.
func (s *Store) LoadCatalog() ([]catalog.PieceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, ErrDetached
	}

	rows, err := s.db.Query(`SELECT piece_id, base_id, brick_type FROM pieces
		ORDER BY family, area, position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type pieceRow struct {
		id     string
		record catalog.PieceRecord
	}
	var pieces []pieceRow
	for rows.Next() {
		var pr pieceRow
		if err := rows.Scan(&pr.id, &pr.record.ElementID, &pr.record.BrickType); err != nil {
			return nil, err
		}
		pieces = append(pieces, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	records := make([]catalog.PieceRecord, 0, len(pieces))
	for _, pr := range pieces {
		colors, err := s.loadColors(pr.id)
		if err != nil {
			return nil, err
		}
		pr.record.Colors = colors
		pr.record.NumColors = len(colors)
		records = append(records, pr.record)
	}
	return records, nil
}

func (s *Store) catalogPath() string {
	return filepath.Join(s.config.DataDir, CatalogFile)
}

// initCatalogFile creates an empty catalog document if none exists.
func (s *Store) initCatalogFile() error {
	path := s.catalogPath()
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return catalog.WriteRecords(path, []catalog.PieceRecord{})
}

// replaceRows rewrites all catalog tables from the records in one
// transaction. Labels are parsed so pieces can be queried by family and
// area; an unparsable label rejects the whole document.
func (s *Store) replaceRows(records []catalog.PieceRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"substitutes", "colors", "pieces"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	for pos, rec := range records {
		family, width, length, err := catalog.ParseLabel(rec.BrickType)
		if err != nil {
			return fmt.Errorf("piece %s: %w", rec.ElementID, err)
		}
		pieceID := newID()
		_, err = tx.Exec(`INSERT INTO pieces
			(piece_id, base_id, brick_type, family, width, length, area, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			pieceID, rec.ElementID, rec.BrickType, family, width, length, width*length, pos)
		if err != nil {
			return err
		}

		for cpos, c := range rec.Colors {
			colorID := newID()
			_, err = tx.Exec(`INSERT INTO colors
				(color_id, piece_id, color_name, element_id, rgb, price, is_substitute, position)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				colorID, pieceID, c.ColorName, c.ElementID, c.RGB, c.Price, c.IsSubstitute, cpos)
			if err != nil {
				return err
			}
			for spos, sub := range c.Substitutes {
				_, err = tx.Exec(`INSERT INTO substitutes
					(substitute_id, color_id, brick_type, element_id, quantity, position)
					VALUES (?, ?, ?, ?, ?, ?)`,
					newID(), colorID, sub.BrickType, sub.ElementID, sub.Quantity, spos)
				if err != nil {
					return err
				}
			}
		}
	}

	return tx.Commit()
}

func (s *Store) loadColors(pieceID string) ([]catalog.ColorRecord, error) {
	rows, err := s.db.Query(`SELECT color_id, color_name, element_id, rgb, price, is_substitute
		FROM colors WHERE piece_id = ? ORDER BY position`, pieceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type colorRow struct {
		id     string
		record catalog.ColorRecord
	}
	var colors []colorRow
	for rows.Next() {
		var cr colorRow
		var elementID, rgb sql.NullString
		var price sql.NullFloat64
		if err := rows.Scan(&cr.id, &cr.record.ColorName, &elementID, &rgb, &price, &cr.record.IsSubstitute); err != nil {
			return nil, err
		}
		if elementID.Valid {
			cr.record.ElementID = &elementID.String
		}
		if rgb.Valid {
			cr.record.RGB = &rgb.String
		}
		if price.Valid {
			cr.record.Price = &price.Float64
		}
		colors = append(colors, cr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	records := make([]catalog.ColorRecord, 0, len(colors))
	for _, cr := range colors {
		if cr.record.IsSubstitute {
			subs, err := s.loadSubstitutes(cr.id)
			if err != nil {
				return nil, err
			}
			cr.record.Substitutes = subs
		}
		records = append(records, cr.record)
	}
	return records, nil
}

func (s *Store) loadSubstitutes(colorID string) ([]catalog.SubstituteRecord, error) {
	rows, err := s.db.Query(`SELECT brick_type, element_id, quantity
		FROM substitutes WHERE color_id = ? ORDER BY position`, colorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []catalog.SubstituteRecord
	for rows.Next() {
		var sub catalog.SubstituteRecord
		if err := rows.Scan(&sub.BrickType, &sub.ElementID, &sub.Quantity); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// newID generates a UUIDv7 row identifier.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}
