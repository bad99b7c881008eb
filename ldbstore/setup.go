// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ldbstore

import (
	"encoding/binary"

	"github.com/patrickmn/go-cache"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treestore/avl"
	"github.com/bitmark-inc/treestore/fault"
)

// database metadata keys, outside the node record prefix
var (
	versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}
	rootKey    = []byte{0x00, 'R', 'O', 'O', 'T'}
	nextKey    = []byte{0x00, 'N', 'E', 'X', 'T'}
)

const currentDBVersion = 0x100

// Store - LevelDB held node records with byte-slice keys
type Store struct {
	database string
	db       *leveldb.DB
	records  *cache.Cache // decoded records by reference
	log      *logger.L
	readOnly bool
	next     uint64 // most recently allocated reference
	root     uint64
	err      error
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Open - open or create the database
func Open(database string, readOnly bool) (*Store, error) {
	db, err := leveldb.OpenFile(database, &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	})
	if nil != err {
		return nil, err
	}

	s := &Store{
		database: database,
		db:       db,
		records:  cache.New(cache.NoExpiration, 0),
		log:      logger.New("ldbstore"),
		readOnly: readOnly,
	}

	if err := s.checkVersion(); nil != err {
		_ = db.Close()
		return nil, err
	}

	s.next, _ = s.getN(nextKey)
	s.root, _ = s.getN(rootKey)

	s.log.Infof("opened: %q  nodes allocated: %d  root: %#x", database, s.next, s.root)
	return s, nil
}

// Close - flush and close the database
func (s *Store) Close() error {
	s.log.Infof("closing: %q", s.database)
	return s.db.Close()
}

// ensure no database downgrade, stamp new databases
func (s *Store) checkVersion() error {
	buffer, err := s.db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		if s.readOnly {
			return fault.ErrWrongDatabaseVersion
		}
		payload := make([]byte, 4)
		binary.BigEndian.PutUint32(payload, currentDBVersion)
		return s.db.Put(versionKey, payload, nil)
	}
	if nil != err {
		return err
	}
	if 4 != len(buffer) || currentDBVersion != binary.BigEndian.Uint32(buffer) {
		s.log.Criticalf("version mismatch on: %q", s.database)
		return fault.ErrWrongDatabaseVersion
	}
	return nil
}

// read a metadata record as big endian uint64, zero if absent
func (s *Store) getN(key []byte) (uint64, bool) {
	buffer, err := s.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return 0, false
	}
	if nil != err || 8 != len(buffer) {
		s.fail("getN", err)
		return 0, false
	}
	return binary.BigEndian.Uint64(buffer), true
}

// write a metadata record as big endian uint64
func (s *Store) putN(key []byte, n uint64) {
	payload := make([]byte, 8)
	binary.BigEndian.PutUint64(payload, n)
	if err := s.db.Put(key, payload, nil); nil != err {
		s.fail("putN", err)
	}
}

// Root - the persisted tree root reference, null if never saved
func (s *Store) Root() uint64 {
	return s.root
}

// SetRoot - persist the tree root reference
func (s *Store) SetRoot(root uint64) {
	s.root = root
	s.putN(rootKey, root)
}

// Tree - an engine instance over this store with the persisted root
// already adopted
func (s *Store) Tree() *avl.Tree[[]byte, uint64] {
	tree := avl.New[[]byte, uint64](s)
	tree.SetRoot(s.root)
	return tree
}

// ReadError - true if any access has failed since the last Reset
func (s *Store) ReadError() bool {
	return nil != s.err
}

// Err - the first error behind the fault flag
func (s *Store) Err() error {
	return s.err
}

// Reset - clear the fault flag; stored data is only trustworthy again
// if the underlying cause was transient
func (s *Store) Reset() {
	s.err = nil
}

// record a failed access; the first cause is kept
func (s *Store) fail(op string, err error) {
	s.log.Errorf("%s error: %s", op, err)
	if nil == s.err {
		if nil == err {
			err = fault.ErrNodeCorrupted
		}
		s.err = err
	}
}
