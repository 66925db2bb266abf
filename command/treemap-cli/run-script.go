// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/treemap/avl"
	"github.com/bitmark-inc/treemap/util"
)

func runScript(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	args := c.Args()
	if 0 == len(args) {
		return ErrMissingScript
	}
	if len(args) > 1 {
		return ErrExtraArguments
	}

	fileName, err := filepath.Abs(filepath.Clean(args.Get(0)))
	if nil != err {
		return err
	}

	if !util.EnsureFileExists(fileName) {
		return fmt.Errorf("script does not exist: %q", fileName)
	}

	if !c.Bool("watch") {
		return executeScript(m, fileName)
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return err
	}
	defer watcher.Close()

	err = watcher.Add(fileName)
	if nil != err {
		return err
	}

	// first run, then rerun on every change
	if err := executeScript(m, fileName); nil != err {
		fmt.Fprintf(m.e, "script error: %s\n", err)
	}

loop:
	for {
		event, ok := <-watcher.Events
		if !ok {
			break loop
		}
		if m.verbose {
			fmt.Fprintf(m.e, "file event: %v\n", event)
		}

		if "" == event.Name || event.Op&fsnotify.Remove == fsnotify.Remove {
			fmt.Fprintf(m.e, "script removed: %s\n", fileName)
			break loop
		}

		if path.Base(event.Name) != path.Base(fileName) {
			continue loop
		}

		if event.Op&fsnotify.Write == fsnotify.Write ||
			event.Op&fsnotify.Chmod == fsnotify.Chmod {
			if err := executeScript(m, fileName); nil != err {
				fmt.Fprintf(m.e, "script error: %s\n", err)
			}
		}
	}

	return nil
}

// executeScript - run one script against a fresh tree
func executeScript(m *metadata, fileName string) error {

	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// create the global "arg" table
	// arg[0] = script file
	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	registerTree(L, m, avl.New[textItem, string]())

	return L.DoFile(fileName)
}

// registerTree - bind the tree operations as the global "tree" table
//
// tree.insert(key [,value]) → added        tree.delete(key) → removed
// tree.search(key) → value|nil             tree.keys() → table
// tree.height() → n                        tree.count() → n
// tree.check() → nil|message               tree.print([detail]) → depth
func registerTree(L *lua.LState, m *metadata, tree *avl.Tree[textItem, string]) {

	t := L.NewTable()

	L.SetField(t, "insert", L.NewFunction(func(L *lua.LState) int {
		key := textItem(L.CheckString(1))
		value := L.OptString(2, "")
		L.Push(lua.LBool(tree.Insert(key, value)))
		return 1
	}))

	L.SetField(t, "delete", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LBool(tree.Delete(textItem(L.CheckString(1)))))
		return 1
	}))

	L.SetField(t, "search", L.NewFunction(func(L *lua.LState) int {
		value, ok := tree.Search(textItem(L.CheckString(1)))
		if ok {
			L.Push(lua.LString(value))
		} else {
			L.Push(lua.LNil)
		}
		return 1
	}))

	L.SetField(t, "keys", L.NewFunction(func(L *lua.LState) int {
		keys := L.NewTable()
		tree.Traverse(func(key textItem, _ string) bool {
			keys.Append(lua.LString(key))
			return true
		})
		L.Push(keys)
		return 1
	}))

	L.SetField(t, "height", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(tree.Height()))
		return 1
	}))

	L.SetField(t, "count", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(tree.Count()))
		return 1
	}))

	L.SetField(t, "check", L.NewFunction(func(L *lua.LState) int {
		if err := tree.Check(); nil != err {
			L.Push(lua.LString(err.Error()))
		} else {
			L.Push(lua.LNil)
		}
		return 1
	}))

	L.SetField(t, "print", L.NewFunction(func(L *lua.LState) int {
		withDetail := L.OptBool(1, false)
		L.Push(lua.LNumber(tree.Print(m.w, withDetail)))
		return 1
	}))

	L.SetGlobal("tree", t)
}
