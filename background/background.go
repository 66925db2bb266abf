// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background

// Process - object that represents a background process
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// the shutdown and completed channels for a background process
type process struct {
	shutdown chan<- struct{}
	finished <-chan struct{}
}

// T - handle for the stop
type T struct {
	processes []process
}

// Start - start up a set of background processes
// all with the same args value
func Start(processes Processes, args interface{}) *T {

	register := new(T)
	register.processes = make([]process, len(processes))

	// start each background
	for i, p := range processes {
		shutdown := make(chan struct{})
		finished := make(chan struct{})
		register.processes[i].shutdown = shutdown
		register.processes[i].finished = finished
		go doit(p, args, shutdown, finished)
	}
	return register
}

// doit - run a single background and flag its completion
func doit(p Process, args interface{}, shutdown <-chan struct{}, finished chan<- struct{}) {
	p.Run(args, shutdown)
	close(finished)
}

// Stop - stop a set of background processes
// and wait for them to finish
func (t *T) Stop() {

	if nil == t {
		return
	}

	// shutdown all background tasks
	for _, p := range t.processes {
		close(p.shutdown)
	}

	// wait for finished
	for _, p := range t.processes {
		<-p.finished
	}
}
