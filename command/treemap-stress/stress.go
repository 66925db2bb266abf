// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/treemap/avl"
	"github.com/bitmark-inc/treemap/counter"
	"github.com/bitmark-inc/treemap/ratelimit"
)

// stressItem - key drawn from the configured key space
type stressItem int

func (i stressItem) Compare(x stressItem) int {
	switch {
	case i < x:
		return -1
	case i > x:
		return +1
	default:
		return 0
	}
}

// statistics - atomic counters shared by the mutator and the readers
type statistics struct {
	inserted      counter.Counter
	updated       counter.Counter
	deleted       counter.Counter
	missed        counter.Counter
	searches      counter.Counter
	hits          counter.Counter
	walks         counter.Counter
	checks        counter.Counter
	orderFailures counter.Counter
}

// soak - one tree, its shadow model and everything pounding them
//
// the embedded lock arbitrates between the single mutator (write
// side) and the reader processes (read side); values record the
// operation sequence number that last wrote the key
type soak struct {
	sync.RWMutex
	log     *logger.L
	tree    *avl.Tree[stressItem, int64]
	model   map[stressItem]int64
	rand    *rand.Rand
	limiter *rate.Limiter
	stats   statistics
	conf    *StressType
	seed    int64
}

// newSoak - prepare a run from validated configuration
func newSoak(conf *StressType, log *logger.L) *soak {

	seed := conf.Seed
	if 0 == seed {
		seed = time.Now().UnixNano()
	}
	log.Infof("seed: %d", seed)

	s := &soak{
		log:   log,
		tree:  avl.New[stressItem, int64](),
		model: make(map[stressItem]int64),
		rand:  rand.New(rand.NewSource(seed)),
		conf:  conf,
		seed:  seed,
	}
	if conf.Rate > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(conf.Rate), conf.Burst)
	}
	return s
}

// run - apply the whole randomised operation stream
//
// returns the first verification failure, nil for a clean run
func (s *soak) run() error {

	insertBelow := s.conf.InsertPercent
	deleteBelow := insertBelow + s.conf.DeletePercent

	for op := 1; op <= s.conf.Operations; op += 1 {

		if nil != s.limiter {
			if err := ratelimit.Limit(s.limiter); nil != err {
				return err
			}
		}

		key := stressItem(s.rand.Intn(s.conf.KeySpace))

		switch dice := s.rand.Intn(100); {
		case dice < insertBelow:
			s.insert(key, int64(op))
		case dice < deleteBelow:
			s.remove(key)
		default:
			s.search(key)
		}

		if 0 != s.conf.CheckInterval && 0 == op%s.conf.CheckInterval {
			if err := s.check(); nil != err {
				s.log.Criticalf("check failed after %d operations: %s", op, err)
				return err
			}
			s.log.Debugf("check passed after %d operations: %d keys", op, s.tree.Count())
		}
	}

	return s.check()
}

func (s *soak) insert(key stressItem, value int64) {
	s.Lock()
	added := s.tree.Insert(key, value)
	s.model[key] = value
	s.Unlock()

	if added {
		s.stats.inserted.Increment()
	} else {
		s.stats.updated.Increment()
	}
}

func (s *soak) remove(key stressItem) {
	s.Lock()
	removed := s.tree.Delete(key)
	delete(s.model, key)
	s.Unlock()

	if removed {
		s.stats.deleted.Increment()
	} else {
		s.stats.missed.Increment()
	}
}

func (s *soak) search(key stressItem) {
	s.RLock()
	_, ok := s.tree.Search(key)
	s.RUnlock()

	s.stats.searches.Increment()
	if ok {
		s.stats.hits.Increment()
	}
}

// traverse - full ordered walk, recording any ordering violation
func (s *soak) traverse() {
	s.RLock()
	defer s.RUnlock()

	first := true
	var previous stressItem
	s.tree.Traverse(func(key stressItem, _ int64) bool {
		if !first && previous.Compare(key) >= 0 {
			s.stats.orderFailures.Increment()
			s.log.Errorf("traverse order failure: %d after %d", key, previous)
			return false
		}
		first = false
		previous = key
		return true
	})
	s.stats.walks.Increment()
}

// check - full structural and model verification
func (s *soak) check() error {
	s.RLock()
	defer s.RUnlock()

	s.stats.checks.Increment()
	return verify(s.tree, s.model)
}

// report - emit the final statistics to the log and to w
func (s *soak) report(w io.Writer, elapsed time.Duration) {

	st := &s.stats
	s.log.Infof("operations: %d in %s", s.conf.Operations, elapsed)
	s.log.Infof("inserted: %d  updated: %d  deleted: %d  missed: %d",
		st.inserted.Uint64(), st.updated.Uint64(), st.deleted.Uint64(), st.missed.Uint64())
	s.log.Infof("searches: %d  hits: %d  walks: %d  checks: %d",
		st.searches.Uint64(), st.hits.Uint64(), st.walks.Uint64(), st.checks.Uint64())
	s.log.Infof("final keys: %d  height: %d", s.tree.Count(), s.tree.Height())

	fmt.Fprintf(w, "operations: %10d in: %7.1f seconds\n", s.conf.Operations, elapsed.Seconds())
	fmt.Fprintf(w, "rate:       %12.1f operations/second\n", float64(s.conf.Operations)/elapsed.Seconds())
	fmt.Fprintf(w, "inserted:   %10d\n", st.inserted.Uint64())
	fmt.Fprintf(w, "updated:    %10d\n", st.updated.Uint64())
	fmt.Fprintf(w, "deleted:    %10d\n", st.deleted.Uint64())
	fmt.Fprintf(w, "missed:     %10d\n", st.missed.Uint64())
	fmt.Fprintf(w, "searches:   %10d\n", st.searches.Uint64())
	fmt.Fprintf(w, "hits:       %10d\n", st.hits.Uint64())
	fmt.Fprintf(w, "walks:      %10d\n", st.walks.Uint64())
	fmt.Fprintf(w, "checks:     %10d\n", st.checks.Uint64())
	fmt.Fprintf(w, "final keys: %10d  height: %d\n", s.tree.Count(), s.tree.Height())
}
