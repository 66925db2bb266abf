// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/treemap/avl"
)

// textItem - line oriented key for the command trees
type textItem string

func (t textItem) Compare(x textItem) int {
	return strings.Compare(string(t), string(x))
}

// buildTree - insert every input line into a fresh tree
//
// lines come from the named files in order, or from in when no file
// names are given; values hold the occurrence count of each line
func buildTree(fileNames []string, in io.Reader) (*avl.Tree[textItem, int], int, error) {

	tree := avl.New[textItem, int]()

	if 0 == len(fileNames) {
		lines, err := insertLines(tree, in)
		return tree, lines, err
	}

	lines := 0
	for _, name := range fileNames {
		f, err := os.Open(name)
		if nil != err {
			return nil, lines, err
		}
		n, err := insertLines(tree, f)
		f.Close()
		lines += n
		if nil != err {
			return nil, lines, err
		}
	}
	return tree, lines, nil
}

// scan a single reader line by line
func insertLines(tree *avl.Tree[textItem, int], in io.Reader) (int, error) {

	lines := 0

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		key := textItem(scanner.Text())
		lines += 1
		if n, ok := tree.Search(key); ok {
			tree.Insert(key, n+1)
		} else {
			tree.Insert(key, 1)
		}
	}
	return lines, scanner.Err()
}
