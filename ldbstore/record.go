// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ldbstore

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/treestore/fault"
)

// node records are stored under 'N' + big endian reference
const nodeKeyPrefix = 'N'

// record layout: digest[4] | less[8] | greater[8] | balance[1] | key...
// digest is the truncated SHA3-256 of everything after it
const (
	digestLength  = 4
	payloadOffset = digestLength
	keyOffset     = payloadOffset + 8 + 8 + 1
)

// a decoded node record
type record struct {
	less    uint64
	greater uint64
	balance int8
	key     []byte
}

// database key for a node reference
func nodeKey(h uint64) []byte {
	buffer := make([]byte, 9)
	buffer[0] = nodeKeyPrefix
	binary.BigEndian.PutUint64(buffer[1:], h)
	return buffer
}

func encode(r *record) []byte {
	buffer := make([]byte, keyOffset+len(r.key))
	binary.BigEndian.PutUint64(buffer[payloadOffset:], r.less)
	binary.BigEndian.PutUint64(buffer[payloadOffset+8:], r.greater)
	buffer[payloadOffset+16] = byte(r.balance)
	copy(buffer[keyOffset:], r.key)

	digest := sha3.Sum256(buffer[payloadOffset:])
	copy(buffer[:digestLength], digest[:digestLength])
	return buffer
}

func decode(buffer []byte) (*record, error) {
	if len(buffer) < keyOffset {
		return nil, fault.ErrNodeCorrupted
	}

	digest := sha3.Sum256(buffer[payloadOffset:])
	for i := 0; i < digestLength; i += 1 {
		if digest[i] != buffer[i] {
			return nil, fault.ErrNodeCorrupted
		}
	}

	r := &record{
		less:    binary.BigEndian.Uint64(buffer[payloadOffset:]),
		greater: binary.BigEndian.Uint64(buffer[payloadOffset+8:]),
		balance: int8(buffer[payloadOffset+16]),
		key:     append([]byte{}, buffer[keyOffset:]...),
	}
	return r, nil
}
