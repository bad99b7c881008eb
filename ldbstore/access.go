// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ldbstore

import (
	"bytes"
	"strconv"

	"github.com/patrickmn/go-cache"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/treestore/fault"
)

// cache key for a node reference
func cacheKey(h uint64) string {
	return strconv.FormatUint(h, 16)
}

// read a node record, from cache when possible
//
// a failed read sets the fault flag and yields a zeroed record, which
// the engine will discard once it checks the flag
func (s *Store) fetch(h uint64) *record {
	if cached, ok := s.records.Get(cacheKey(h)); ok {
		return cached.(*record)
	}

	buffer, err := s.db.Get(nodeKey(h), nil)
	if leveldb.ErrNotFound == err {
		err = fault.ErrNodeNotFound
	}
	if nil != err {
		s.fail("fetch", err)
		return &record{}
	}
	r, err := decode(buffer)
	if nil != err {
		s.fail("fetch", err)
		return &record{}
	}
	s.records.Set(cacheKey(h), r, cache.NoExpiration)
	return r
}

// write back a mutated record
func (s *Store) save(h uint64, r *record) {
	if err := s.db.Put(nodeKey(h), encode(r), nil); nil != err {
		s.fail("save", err)
		return
	}
	s.records.Set(cacheKey(h), r, cache.NoExpiration)
}

// NewNode - allocate a record carrying key, returning its reference
// or null on storage fault
func (s *Store) NewNode(key []byte) uint64 {
	h := s.next + 1
	s.putN(nextKey, h)
	if nil != s.err {
		return 0
	}
	s.next = h
	s.save(h, &record{key: append([]byte{}, key...)})
	if nil != s.err {
		return 0
	}
	return h
}

// Release - delete a detached node record
func (s *Store) Release(h uint64) {
	if err := s.db.Delete(nodeKey(h), nil); nil != err {
		s.fail("release", err)
	}
	s.records.Delete(cacheKey(h))
}

// Key - the key stored in a record
func (s *Store) Key(h uint64) []byte {
	return s.fetch(h).key
}

// Null - the reserved zero reference
func (s *Store) Null() uint64 {
	return 0
}

// Less - stored less child reference; re-reads with access false are
// served from the record cache like any other
func (s *Store) Less(h uint64, access bool) uint64 {
	return s.fetch(h).less
}

// Greater - stored greater child reference
func (s *Store) Greater(h uint64, access bool) uint64 {
	return s.fetch(h).greater
}

// SetLess - store the less child reference
func (s *Store) SetLess(h uint64, child uint64) {
	r := s.fetch(h)
	r.less = child
	s.save(h, r)
}

// SetGreater - store the greater child reference
func (s *Store) SetGreater(h uint64, child uint64) {
	r := s.fetch(h)
	r.greater = child
	s.save(h, r)
}

// BalanceFactor - stored balance factor
func (s *Store) BalanceFactor(h uint64) int {
	return int(s.fetch(h).balance)
}

// SetBalanceFactor - store a balance factor
func (s *Store) SetBalanceFactor(h uint64, balance int) {
	r := s.fetch(h)
	r.balance = int8(balance)
	s.save(h, r)
}

// CompareKeyNode - bytewise three-way comparison of a key with a
// node's key
func (s *Store) CompareKeyNode(key []byte, h uint64) int {
	return bytes.Compare(key, s.fetch(h).key)
}

// CompareNodeNode - bytewise three-way comparison of two nodes' keys
func (s *Store) CompareNodeNode(a uint64, b uint64) int {
	return bytes.Compare(s.fetch(a).key, s.fetch(b).key)
}
