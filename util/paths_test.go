// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/treemap/util"
)

func TestEnsureAbsolute(t *testing.T) {

	testItems := []struct {
		directory string
		filePath  string
		expected  string
	}{
		{"/var/lib/treemap", "data.conf", "/var/lib/treemap/data.conf"},
		{"/var/lib/treemap", "./data.conf", "/var/lib/treemap/data.conf"},
		{"/var/lib/treemap", "../data.conf", "/var/lib/data.conf"},
		{"/var/lib/treemap", "/etc/data.conf", "/etc/data.conf"},
		{"/var/lib/treemap/", "sub//file", "/var/lib/treemap/sub/file"},
		{"relative", "file", "relative/file"},
	}

	for i, item := range testItems {
		actual := util.EnsureAbsolute(item.directory, item.filePath)
		if item.expected != actual {
			t.Errorf("%d: EnsureAbsolute(%q, %q) = %q  expected: %q",
				i, item.directory, item.filePath, actual, item.expected)
		}
	}
}

func TestEnsureFileExists(t *testing.T) {

	dir := t.TempDir()

	present := filepath.Join(dir, "present.txt")
	err := os.WriteFile(present, []byte("x"), 0o600)
	if nil != err {
		t.Fatalf("write failed: %s", err)
	}

	if !util.EnsureFileExists(present) {
		t.Errorf("existing file reported missing: %q", present)
	}

	absent := filepath.Join(dir, "absent.txt")
	if util.EnsureFileExists(absent) {
		t.Errorf("missing file reported present: %q", absent)
	}

	// a directory counts as existing
	if !util.EnsureFileExists(dir) {
		t.Errorf("existing directory reported missing: %q", dir)
	}
}
