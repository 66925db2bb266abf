// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Sort, inspect and script ordered trees from the command line
//
// the input is line oriented: every line becomes a key, values count
// the occurrences of each line
//
// e.g. to sort unique lines with counts:
//
//   treemap-cli sort -c words.txt
//
// or to watch a Lua script and rerun it on every save:
//
//   treemap-cli script -w scratch.lua
package main
