// Package catalog persists quotient-sequences structures in an embedded
// key-value store, keyed by triangle-group signature and genus bound.
// Values are the canonical text encoding, so anything written here can
// also be inspected or exchanged as plain text.
//
// Key features:
//   - Open with a directory path for a durable catalog, or an empty path
//     for an in-memory one (tests, scratch work);
//   - Put/Get/Delete by (signature, genus bound);
//   - Bounds lists the stored genus bounds for one signature.
//
// Errors:
//   - ErrStructureNil: Put received a nil structure.
//
// Retrieved structures carry no translation-subgroup handles, exactly as
// with the text codec; re-resolve through a Library before extending.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v3"
	pkgerrors "github.com/pkg/errors"

	"github.com/marcelolooser/HyperCells/adjacency"
	"github.com/marcelolooser/HyperCells/triangle"
)

// ErrStructureNil is returned when Put receives a nil structure.
var ErrStructureNil = errors.New("catalog: structure is nil")

// Store is a catalog of serialized structures.
type Store struct {
	db *badger.DB
}

// Open opens the catalog at path, creating it if absent. An empty path
// opens an in-memory catalog that vanishes on Close.
func Open(path string, opts ...Option) (*Store, error) {
	options := gatherOptions(opts...)

	bopts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		bopts = bopts.WithInMemory(true)
	} else {
		bopts = bopts.WithReadOnly(options.readOnly)
	}

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "catalog: opening store")
	}

	return &Store{db: db}, nil
}

// Close releases the underlying store.
func (s *Store) Close() error {
	return pkgerrors.Wrap(s.db.Close(), "catalog: closing store")
}

// Put stores st under its signature and genus bound, replacing any
// previous entry for that pair.
func (s *Store) Put(st *adjacency.Structure) error {
	if st == nil {
		return ErrStructureNil
	}

	text, err := st.ExportString()
	if err != nil {
		return err
	}
	key := entryKey(st.Signature(), st.GenusBound())

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, []byte(text))
	})

	return pkgerrors.Wrapf(err, "catalog: storing %s", key)
}

// Get retrieves the structure stored for (sig, bound). The second return
// reports whether an entry exists.
func (s *Store) Get(sig triangle.Signature, bound int) (*adjacency.Structure, bool, error) {
	key := entryKey(sig, bound)

	var text []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		text, err = item.ValueCopy(nil)

		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, pkgerrors.Wrapf(err, "catalog: loading %s", key)
	}

	st, err := adjacency.ImportString(string(text))
	if err != nil {
		return nil, false, err
	}

	return st, true, nil
}

// Delete removes the entry for (sig, bound), if any.
func (s *Store) Delete(sig triangle.Signature, bound int) error {
	key := entryKey(sig, bound)

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})

	return pkgerrors.Wrapf(err, "catalog: deleting %s", key)
}

// Bounds lists the genus bounds stored for sig, ascending.
func (s *Store) Bounds(sig triangle.Signature) ([]int, error) {
	prefix := signaturePrefix(sig)

	var bounds []int
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: prefix})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			key := string(it.Item().Key())
			b, err := strconv.Atoi(strings.TrimPrefix(key, string(prefix)))
			if err != nil {
				return pkgerrors.Wrapf(err, "catalog: malformed key %q", key)
			}
			bounds = append(bounds, b)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Ints(bounds)

	return bounds, nil
}

// entryKey builds the store key for one (signature, bound) pair.
func entryKey(sig triangle.Signature, bound int) []byte {
	return []byte(fmt.Sprintf("%s%d", signaturePrefix(sig), bound))
}

// signaturePrefix is the key prefix shared by all bounds of one signature.
func signaturePrefix(sig triangle.Signature) []byte {
	return []byte(fmt.Sprintf("adjacency/%d-%d-%d/", sig.P, sig.Q, sig.R))
}
