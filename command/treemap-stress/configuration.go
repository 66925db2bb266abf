// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treemap/configuration"
	"github.com/bitmark-inc/treemap/fault"
	"github.com/bitmark-inc/treemap/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "treemap-stress.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultKeySpace      = 10000
	defaultOperations    = 50000
	defaultInsertPercent = 50
	defaultDeletePercent = 25
	defaultSearchPercent = 25
	defaultBurst         = 100
	defaultReaders       = 2
	defaultCheckInterval = 1000
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"stress":          "info",
		"reader":          "warn",
		logger.DefaultTag: "critical",
	}
)

// StressType - parameters of the soak run
type StressType struct {
	KeySpace      int     `gluamapper:"key_space" json:"key_space" yaml:"key_space"`
	Operations    int     `gluamapper:"operations" json:"operations" yaml:"operations"`
	InsertPercent int     `gluamapper:"insert_percent" json:"insert_percent" yaml:"insert_percent"`
	DeletePercent int     `gluamapper:"delete_percent" json:"delete_percent" yaml:"delete_percent"`
	SearchPercent int     `gluamapper:"search_percent" json:"search_percent" yaml:"search_percent"`
	Rate          float64 `gluamapper:"rate" json:"rate" yaml:"rate"`
	Burst         int     `gluamapper:"burst" json:"burst" yaml:"burst"`
	Readers       int     `gluamapper:"readers" json:"readers" yaml:"readers"`
	CheckInterval int     `gluamapper:"check_interval" json:"check_interval" yaml:"check_interval"`
	Seed          int64   `gluamapper:"seed" json:"seed" yaml:"seed"`
}

// Configuration - configuration file data
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory" yaml:"data_directory"`
	PidFile       string               `gluamapper:"pidfile" json:"pidfile" yaml:"pidfile"`
	Stress        StressType           `gluamapper:"stress" json:"stress" yaml:"stress"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging" yaml:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if err != nil {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Stress: StressType{
			KeySpace:      defaultKeySpace,
			Operations:    defaultOperations,
			InsertPercent: defaultInsertPercent,
			DeletePercent: defaultDeletePercent,
			SearchPercent: defaultSearchPercent,
			Rate:          0, // unlimited
			Burst:         defaultBurst,
			Readers:       defaultReaders,
			CheckInterval: defaultCheckInterval,
			Seed:          0, // derive from clock
		},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if err := options.Stress.validate(); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if options.DataDirectory == "" || options.DataDirectory == "~" {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if options.DataDirectory == "." {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); err != nil {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if *f != "" {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if the log file is not a simple file name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0o700); err != nil {
			return nil, err
		}
	}

	// done
	return options, nil
}

// validate - range check the soak parameters
func (s *StressType) validate() error {

	if s.KeySpace < 2 {
		return fault.InvalidKeySpace
	}
	if s.Operations <= 0 {
		return fault.InvalidCount
	}
	if s.InsertPercent < 0 || s.DeletePercent < 0 || s.SearchPercent < 0 {
		return fault.InvalidRate
	}
	if total := s.InsertPercent + s.DeletePercent + s.SearchPercent; total != 100 {
		return fmt.Errorf("stress mix must total 100 percent, got: %d", total)
	}
	if s.Rate < 0 {
		return fault.InvalidRate
	}
	if s.Rate > 0 && s.Burst <= 0 {
		return fault.InvalidCount
	}
	if s.Readers < 0 {
		return fault.InvalidCount
	}
	if s.CheckInterval < 0 {
		return fault.InvalidCount
	}
	return nil
}
