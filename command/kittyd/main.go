// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/kittyd/balance"
	"github.com/bitmark-inc/kittyd/block"
	"github.com/bitmark-inc/kittyd/blockheader"
	"github.com/bitmark-inc/kittyd/configuration"
	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitties"
	"github.com/bitmark-inc/kittyd/messagebus"
	"github.com/bitmark-inc/kittyd/origin"
	"github.com/bitmark-inc/kittyd/randomness"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := configuration.Get(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	log.Infof("chain: %s", theConfiguration.Chain)
	log.Infof("database: %q", theConfiguration.Database.Name)

	// start the data storage
	log.Info("initialise storage")
	store, err := storage.Open(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer store.Close()

	header := blockheader.Restore(store.Pool.Chain)
	random := randomness.NewSeeded(nil)
	events := messagebus.New()
	ledger := balance.New(store.Pool.Balances, theConfiguration.Balances.ExistentialDeposit)

	engine, err := kitties.New(kitties.Configuration{
		MaximumOwned:       theConfiguration.Kitties.MaximumOwned,
		Stake:              theConfiguration.Kitties.Stake,
		IndexWidth:         counter.Width(theConfiguration.Kitties.IndexWidth),
		ExistentialDeposit: theConfiguration.Balances.ExistentialDeposit,
	}, kitties.Handles{
		Store:    store,
		Verifier: origin.SignedVerifier{},
		Currency: ledger,
		Random:   random,
		Context:  header,
		Events:   events,
	})
	if nil != err {
		log.Criticalf("kitties initialise error: %s", err)
		exitwithstatus.Message("kitties initialise error: %s", err)
	}

	executor := block.New(block.Handles{
		Store:  store,
		Header: header,
		Random: random,
		Events: events,
		Engine: engine,
	})

	// balances for a new database
	endowments, err := theConfiguration.Endowments()
	if nil != err {
		exitwithstatus.Message("endowments error: %s", err)
	}
	err = executor.Genesis(theConfiguration.Chain, ledger, endowments)
	if fault.ErrAlreadyInitialised == err {
		log.Infof("resume at block: %d", header.Height())
	} else if nil != err {
		log.Criticalf("genesis error: %s", err)
		exitwithstatus.Message("genesis error: %s", err)
	} else {
		log.Infof("genesis: %d endowments", len(endowments))
	}

	// execute the block files in order
	for _, fileName := range arguments {
		b, err := block.ReadFile(fileName)
		if nil != err {
			log.Errorf("block file: %q  error: %s", fileName, err)
			exitwithstatus.Message("block file: %q  error: %s", fileName, err)
		}

		receipt, err := executor.Execute(b)
		if nil != err {
			log.Errorf("block file: %q  execute error: %s", fileName, err)
			exitwithstatus.Message("block file: %q  execute error: %s", fileName, err)
		}

		if len(options["verbose"]) > 0 {
			printJson(receipt)
			continue
		}

		failed := 0
		for _, r := range receipt.Results {
			if "" != r.Error {
				failed += 1
			}
		}
		fmt.Printf("block: %d  digest: %s  calls: %d  failed: %d  events: %d\n",
			receipt.Number, receipt.Digest, len(receipt.Results), failed, len(receipt.Events))
	}
}

// print a JSON structure
func printJson(message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		exitwithstatus.Message("formatting error: %s", err)
	}
	fmt.Printf("%s\n", b)
}
