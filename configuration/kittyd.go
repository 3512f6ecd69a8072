// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/chain"
	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultKittiesDatabase  = chain.Kitties + ".leveldb"
	defaultTestingDatabase  = chain.Testing + ".leveldb"
	defaultLocalDatabase    = chain.Local + ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "kittyd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultMaximumOwned       = 100
	defaultStake              = 5000
	defaultIndexWidth         = uint(counter.Width32)
	defaultExistentialDeposit = 500
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"kitties":         "info",
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the LevelDB database
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// KittiesType - engine parameters
type KittiesType struct {
	MaximumOwned int    `gluamapper:"maximum_owned" json:"maximum_owned"`
	Stake        uint64 `gluamapper:"stake" json:"stake"`
	IndexWidth   uint   `gluamapper:"index_width" json:"index_width"`
}

// EndowmentType - genesis balance of one account
type EndowmentType struct {
	Account string `gluamapper:"account" json:"account"`
	Amount  uint64 `gluamapper:"amount" json:"amount"`
}

// BalancesType - ledger parameters
type BalancesType struct {
	ExistentialDeposit uint64          `gluamapper:"existential_deposit" json:"existential_deposit"`
	Endowments         []EndowmentType `gluamapper:"endowments" json:"endowments"`
}

// Configuration - the kittyd configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Chain         string               `gluamapper:"chain" json:"chain"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Kitties       KittiesType          `gluamapper:"kitties" json:"kitties"`
	Balances      BalancesType         `gluamapper:"balances" json:"balances"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Get - will read decode and verify the configuration
func Get(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Chain:         chain.Kitties,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultKittiesDatabase,
		},

		Kitties: KittiesType{
			MaximumOwned: defaultMaximumOwned,
			Stake:        defaultStake,
			IndexWidth:   defaultIndexWidth,
		},

		Balances: BalancesType{
			ExistentialDeposit: defaultExistentialDeposit,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// if any test mode and the database file was not specified
	// switch to appropriate default.  Abort if then chain name is
	// not recognised.
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fault.ErrInvalidChain
	}

	// if database was not changed from default
	if options.Database.Name == defaultKittiesDatabase {
		switch options.Chain {
		case chain.Kitties:
			// already correct default
		case chain.Testing:
			options.Database.Name = defaultTestingDatabase
		case chain.Local:
			options.Database.Name = defaultLocalDatabase
		}
	}

	if options.Kitties.MaximumOwned <= 0 {
		return nil, fault.ErrInvalidMaximumOwned
	}
	if !counter.Width(options.Kitties.IndexWidth).Valid() {
		return nil, fault.ErrInvalidIndexWidth
	}
	if _, err := options.Endowments(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = filepath.Clean(dataDirectory) // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = ensureAbsolute(options.DataDirectory, *f)
	}

	// fail if the database directory does not exist
	if fileInfo, err := os.Stat(options.Database.Directory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.Database.Directory)
	}

	// optional absolute path for the database name
	options.Database.Name = ensureAbsolute(options.Database.Directory, options.Database.Name)

	return options, nil
}

// Endowments - decoded genesis balances
func (c *Configuration) Endowments() ([]Endowment, error) {
	endowments := make([]Endowment, 0, len(c.Balances.Endowments))
	for _, e := range c.Balances.Endowments {
		a, err := account.FromBase58(e.Account)
		if nil != err {
			return nil, err
		}
		if a.Test != chain.IsTesting(c.Chain) {
			return nil, fault.ErrWrongNetworkForAccount
		}
		endowments = append(endowments, Endowment{
			Account: a,
			Amount:  e.Amount,
		})
	}
	return endowments, nil
}

// Endowment - an account and its initial free balance
type Endowment struct {
	Account account.Account
	Amount  uint64
}

// ensure the path is absolute
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
