// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Stress program for the avl tree
//
// This program applies a long randomised stream of insert, delete
// and search operations against a single tree while background
// readers search and walk it concurrently.  A shadow map records the
// expected key set and the tree is periodically verified against it:
// structure, ordering, counts and the height bound.
//
// The operation mix, key space, rate limit and reader count all come
// from a Lua or YAML configuration file, see treemap-stress.conf.sample.
package main
