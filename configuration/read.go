// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"
	"reflect"
	"strings"

	"github.com/bitmark-inc/treemap/fault"
)

// ParseConfigurationFile - read a configuration file and assign the
// result to a configuration structure
//
// the reader is selected by file extension: ".lua" scripts are
// executed and their final value mapped, ".yaml"/".yml" files are
// decoded directly
//
// ".conf" is the historic extension and is always a Lua script
func ParseConfigurationFile(fileName string, config interface{}) error {

	// since interface{} is untyped, have to verify type compatibility at run-time
	rv := reflect.ValueOf(config)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fault.InvalidStructPointer
	}

	// now sure item is a pointer, make sure it points to some kind of struct
	s := rv.Elem()
	if s.Kind() != reflect.Struct {
		return fault.InvalidStructPointer
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".conf", ".lua":
		return parseLuaFile(fileName, config)
	case ".yaml", ".yml":
		return parseYamlFile(fileName, config)
	default:
		return fault.UnsupportedFormat
	}
}
