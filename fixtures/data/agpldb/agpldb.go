// Package agpldb carries an AGPL-3.0 license header for scanner testing.
// It imitates a network-facing database layer, the classic AGPL use case.
//
// Copyright (C) 2023 MongoDB Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// Additional Terms under GNU AGPL version 3 section 7:
// If you modify this Program, or any covered work, by linking or combining
// it with other code, such other code is not for that reason alone subject
// to any of the requirements of the GNU Affero General Public License.
//
// SPDX-License-Identifier: AGPL-3.0
package agpldb

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"sync"
)

// ErrNotFound is returned when a key is absent from the store.
var ErrNotFound = errors.New("key not found")

// Store is a mock document store with Mongo-flavored operations.
type Store struct {
	mu   sync.RWMutex
	docs map[string]map[string]string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{docs: make(map[string]map[string]string)}
}

// Insert stores a document under the given key.
func (s *Store) Insert(key string, doc map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make(map[string]string, len(doc))
	for k, v := range doc {
		copied[k] = v
	}
	s.docs[key] = copied
}

// Find returns the document stored under key.
func (s *Store) Find(key string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make(map[string]string, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out, nil
}

// Count returns the number of stored documents.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// DocumentID derives a stable hex identifier for a document key.
func DocumentID(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:8])
}
