// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderedset_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/treemap/orderedset"
)

type name string

func (n name) Compare(x name) int {
	switch {
	case n < x:
		return -1
	case n > x:
		return +1
	default:
		return 0
	}
}

func TestAddition(t *testing.T) {

	items := []name{
		"0123456789",
		"abcdefghijklmnopqrstuvwxyz",
		"abcdefg",
		"abcdefg",
		"abcdefg",
		"hijklmn",
		"opqrstu",
		"vwxyzab",
		"cdefghi",
		"jklmnop",
		"qrstuvw",
	}

	expected := []name{
		"0123456789",
		"abcdefg",
		"abcdefghijklmnopqrstuvwxyz",
		"cdefghi",
		"hijklmn",
		"jklmnop",
		"opqrstu",
		"qrstuvw",
		"vwxyzab",
	}

	s1 := orderedset.New[name]()
	if nil == s1 {
		t.Fatal("failed to create a set")
	}

	added := 0
	for _, d := range items {
		if s1.Add(d) {
			added += 1
		}
	}
	if added != len(expected) {
		t.Fatalf("added: %d  expected: %d", added, len(expected))
	}
	if s1.Count() != len(expected) {
		t.Fatalf("count: %d  expected: %d", s1.Count(), len(expected))
	}

	// all expected must be present, in ascending order
	assert.Equal(t, expected, s1.Keys(), "membership")

	for i, d := range expected {
		if !s1.Has(d) {
			t.Errorf("item[%d] missing: %q", i, d)
		}
	}
	if s1.Has("not-there") {
		t.Error("phantom item present")
	}
}

func TestDuplicates(t *testing.T) {

	s1 := orderedset.New[name]()

	assert.True(t, s1.Add("abcdefg"), "first add")
	assert.False(t, s1.Add("abcdefg"), "second add")
	assert.Equal(t, 1, s1.Count(), "count")

	assert.True(t, s1.Remove("abcdefg"), "first remove")
	assert.False(t, s1.Remove("abcdefg"), "second remove")
	assert.True(t, s1.IsEmpty(), "empty again")
}

func TestOrdering(t *testing.T) {

	s1 := orderedset.New[name]()
	for _, d := range []name{"m", "c", "x", "a", "t"} {
		s1.Add(d)
	}

	first, ok := s1.First()
	assert.True(t, ok, "first present")
	assert.Equal(t, name("a"), first, "lowest item")

	last, ok := s1.Last()
	assert.True(t, ok, "last present")
	assert.Equal(t, name("x"), last, "highest item")

	visited := []name{}
	s1.Traverse(func(item name) bool {
		visited = append(visited, item)
		return true
	})
	assert.Equal(t, []name{"a", "c", "m", "t", "x"}, visited, "ascending walk")

	// early stop
	visited = visited[:0]
	s1.Traverse(func(item name) bool {
		visited = append(visited, item)
		return len(visited) < 2
	})
	assert.Equal(t, []name{"a", "c"}, visited, "stopped walk")

	assert.Equal(t, "{a c m t x}", s1.String(), "printable form")
}

func TestClear(t *testing.T) {

	s1 := orderedset.New[name]()
	for _, d := range []name{"m", "c", "x"} {
		s1.Add(d)
	}

	s1.Clear()
	assert.True(t, s1.IsEmpty(), "empty after clear")
	assert.Equal(t, 0, s1.Count(), "count after clear")
	assert.Equal(t, "{}", s1.String(), "printable form")

	_, ok := s1.First()
	assert.False(t, ok, "no first item")
	_, ok = s1.Last()
	assert.False(t, ok, "no last item")

	assert.True(t, s1.Add("m"), "reusable after clear")
}

// hammer the set from several goroutines; the race detector will
// catch any missing locking
func TestConcurrentAccess(t *testing.T) {

	s1 := orderedset.New[name]()

	items := []name{"a", "b", "c", "d", "e", "f", "g", "h"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i += 1 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j += 1 {
				item := items[(n+j)%len(items)]
				s1.Add(item)
				s1.Has(item)
				s1.Count()
				if 0 == j%10 {
					s1.Remove(item)
				}
			}
		}(i)
	}
	wg.Wait()

	// whatever remains must still be ordered and consistent
	keys := s1.Keys()
	for i := 1; i < len(keys); i += 1 {
		if keys[i-1].Compare(keys[i]) >= 0 {
			t.Fatalf("keys out of order: %q before %q", keys[i-1], keys[i])
		}
	}
}
