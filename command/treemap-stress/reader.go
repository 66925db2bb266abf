// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math/rand"

	"github.com/bitmark-inc/logger"
)

// reader - concurrent search load against the soak tree
//
// readers only take the read lock so they never perturb the model;
// they exist to provoke races with the mutator
type reader struct {
	n    int
	log  *logger.L
	rand *rand.Rand
}

// Run - hammer the tree with searches until shutdown
//
// the args parameter is the active soak
func (r *reader) Run(args interface{}, shutdown <-chan struct{}) {

	s := args.(*soak)

	r.log.Infof("reader[%d]: starting", r.n)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}

		s.search(stressItem(r.rand.Intn(s.conf.KeySpace)))

		if 0 == r.rand.Intn(64) {
			s.traverse()
		}
	}

	r.log.Infof("reader[%d]: finished", r.n)
}
