// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read Lua configuration files
//
// A configuration file is a Lua program whose final value is a table;
// the table is mapped onto a Go structure using gluamapper tags.
package configuration
