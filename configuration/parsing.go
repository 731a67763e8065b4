// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/daniel7grant/tinystamp/datetime"
	"github.com/daniel7grant/tinystamp/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "tinystamp.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	DefaultSamples = 10000
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"config":          "info",
		logger.DefaultTag: "critical",
	}
)

// Configuration - the decoded configuration file
type Configuration struct {
	DataDirectory  string               `gluamapper:"data_directory" json:"data_directory"`
	UTCSuffixStyle string               `gluamapper:"utc_suffix_style" json:"utc_suffix_style"`
	Samples        int                  `gluamapper:"samples" json:"samples"`
	Logging        logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Suffix - the validated suffix style
func (c *Configuration) Suffix() datetime.Suffix {
	s, err := datetime.ParseSuffix(c.UTCSuffixStyle)
	if nil != err {
		return datetime.DefaultSuffix
	}
	return s
}

// Default - configuration with no file, all paths relative to directory
func Default(directory string) (*Configuration, error) {
	options := defaults()
	options.DataDirectory = directory
	if err := finish(options); nil != err {
		return nil, err
	}
	return options, nil
}

// GetConfiguration - will read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	if !fileExists(configurationFileName) {
		return nil, fault.ErrNotFoundConfigFile
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaults()

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrInvalidDirectory
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}

	if err := finish(options); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

func defaults() *Configuration {
	levels := make(LoglevelMap, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}
	return &Configuration{
		DataDirectory:  defaultDataDirectory,
		UTCSuffixStyle: string(datetime.DefaultSuffix),
		Samples:        DefaultSamples,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}
}

// validate values and expand paths
func finish(options *Configuration) error {

	suffix, err := datetime.ParseSuffix(options.UTCSuffixStyle)
	if nil != err {
		return err
	}
	options.UTCSuffixStyle = string(suffix)

	if options.Samples <= 0 {
		return fault.ErrInvalidSampleCount
	}

	if "" == options.DataDirectory {
		return fault.ErrInvalidDirectory
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return err
	} else if !fileInfo.IsDir() {
		return fault.ErrInvalidDirectory
	}

	// fail if the log file is not a simple file name i.e. must
	// not contain path seperator
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return fault.ErrNotPlainFileName
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return err
	}

	return nil
}

// ensure the path is absolute
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

func fileExists(name string) bool {
	info, err := os.Stat(name)
	return nil == err && !info.IsDir()
}
