package todo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/faizmokh/todo/internal/files"
)

// Store loads and saves a List through the shared files.Manager.
//
// There is no locking: two processes updating the same file race and the last
// save wins.
type Store struct {
	manager *files.Manager
}

// NewStore wires a store on top of the manager's document.
func NewStore(manager *files.Manager) *Store {
	return &Store{manager: manager}
}

// Path returns the document backing the store.
func (s *Store) Path() string {
	if s == nil || s.manager == nil {
		return ""
	}
	return s.manager.Path()
}

// Load reads the list. A missing document is created empty and, like a
// zero-length one, yields an empty list.
func (s *Store) Load(ctx context.Context) (List, error) {
	if s == nil || s.manager == nil {
		return List{}, errors.New("store not initialized with file manager")
	}
	if err := ctx.Err(); err != nil {
		return List{}, err
	}

	data, err := s.manager.ReadFile()
	if err != nil {
		return List{}, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return List{}, nil
	}

	return decodeList(s.manager.Path(), data)
}

// Save replaces the document with list.
func (s *Store) Save(ctx context.Context, list List) error {
	if s == nil || s.manager == nil {
		return errors.New("store not initialized with file manager")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encodeList(list)
	if err != nil {
		return err
	}
	return s.manager.WriteFile(data)
}

// Update runs one load, mutate, save cycle. When fn fails nothing is written
// and the document keeps its previous contents.
func (s *Store) Update(ctx context.Context, fn func(*List) error) (List, error) {
	list, err := s.Load(ctx)
	if err != nil {
		return List{}, err
	}
	if err := fn(&list); err != nil {
		return List{}, err
	}
	if err := s.Save(ctx, list); err != nil {
		return List{}, err
	}
	return list, nil
}

func decodeList(path string, data []byte) (List, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return List{}, &DeserializationError{Path: path, Err: err}
	}
	if location, err := validateDocument(raw); err != nil {
		return List{}, &DeserializationError{Path: path, Location: location, Err: err}
	}

	var list List
	if err := json.Unmarshal(data, &list); err != nil {
		return List{}, &DeserializationError{Path: path, Err: err}
	}
	return list, nil
}

func encodeList(list List) ([]byte, error) {
	if list.Entries == nil {
		list.Entries = []Entry{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("encode todo list: %w", err)
	}
	return data, nil
}
