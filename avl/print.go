// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"strings"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - write an ASCII graphic representation of the tree
// returns the maximum depth printed
func (tree *Tree[K, V]) Print(w io.Writer, withDetail bool) int {
	return printTree(w, tree.root, "", root, withDetail)
}

// internal print - returns the maximum depth of the tree
func printTree[K Item[K], V any](w io.Writer, p *node[K, V], prefix string, br branch, withDetail bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, p.right, prefix+t, right, withDetail)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if withDetail {
		fmt.Fprintf(w, "%v → %v %+2d/[%d,%d]\n", p.key, p.value, balance(p), p.height, p.nodes)
	} else {
		fmt.Fprintf(w, "%v\n", p.key)
	}
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, p.left, prefix+t, left, withDetail)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}

// String - compact structural form "(key left right)" with "-" for
// an absent sub-tree
//
// deterministic for a given shape, so two trees holding the same
// nodes in the same arrangement always render identically
func (tree *Tree[K, V]) String() string {
	sb := &strings.Builder{}
	structure(sb, tree.root)
	return sb.String()
}

func structure[K Item[K], V any](sb *strings.Builder, p *node[K, V]) {
	if nil == p {
		sb.WriteByte('-')
		return
	}
	fmt.Fprintf(sb, "(%v ", p.key)
	structure(sb, p.left)
	sb.WriteByte(' ')
	structure(sb, p.right)
	sb.WriteByte(')')
}
