// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittyd/balance"
	"github.com/bitmark-inc/kittyd/blockheader"
	"github.com/bitmark-inc/kittyd/chain"
	"github.com/bitmark-inc/kittyd/configuration"
	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/kitties"
	"github.com/bitmark-inc/kittyd/messagebus"
	"github.com/bitmark-inc/kittyd/origin"
	"github.com/bitmark-inc/kittyd/randomness"
	"github.com/bitmark-inc/kittyd/storage"
)

type metadata struct {
	config  *configuration.Configuration
	store   *storage.Store
	header  *blockheader.Header
	ledger  *balance.Ledger
	engine  *kitties.Engine
	logging bool
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "kitty-cli"
	app.Usage = "inspect a kittyd database"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: " kittyd configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate an account key pair",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "testnet, t",
					Usage: " account for the testing and local chains",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "kitty",
			Usage:     "display a kitty",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "id, i",
					Usage: "*kitty `ID`",
				},
			},
			Action: runKitty,
		},
		{
			Name:      "list",
			Usage:     "list kitties in id order",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " first kitty `ID`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum number of kitties `N`",
				},
			},
			Action: runList,
		},
		{
			Name:      "check",
			Usage:     "check the ownership index against the kitty owners",
			ArgsUsage: " ",
			Action:    runCheck,
		},
		{
			Name:      "owned",
			Usage:     "list the kitties of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "*owner `ACCOUNT`",
				},
			},
			Action: runOwned,
		},
		{
			Name:      "balance",
			Usage:     "display the balance of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "*`ACCOUNT`",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "info",
			Usage:     "display the chain state and engine configuration",
			ArgsUsage: " ",
			Action:    runInfo,
		},
		{
			Name:  "version",
			Usage: "display kitty-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		m := &metadata{
			verbose: verbose,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "generate", "help", "h":
			return nil
		}

		file := c.GlobalString("config-file")
		if "" == file {
			return fmt.Errorf("config-file is required")
		}
		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := configuration.Get(file)
		if nil != err {
			return err
		}
		m.config = config
		m.testnet = chain.IsTesting(config.Chain)

		logging := logger.Configuration{
			Directory: config.DataDirectory,
			File:      "kitty-cli.log",
			Size:      1048576,
			Count:     10,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		}
		if err = logger.Initialise(logging); nil != err {
			return err
		}
		m.logging = true

		if verbose {
			fmt.Fprintf(e, "database: %s\n", config.Database.Name)
		}
		store, err := storage.Open(config.Database.Name, storage.ReadOnly)
		if nil != err {
			return err
		}
		m.store = store
		m.header = blockheader.Restore(store.Pool.Chain)
		m.ledger = balance.New(store.Pool.Balances, config.Balances.ExistentialDeposit)

		// queries only: randomness and events are never used
		m.engine, err = kitties.New(kitties.Configuration{
			MaximumOwned:       config.Kitties.MaximumOwned,
			Stake:              config.Kitties.Stake,
			IndexWidth:         counter.Width(config.Kitties.IndexWidth),
			ExistentialDeposit: config.Balances.ExistentialDeposit,
		}, kitties.Handles{
			Store:    store,
			Verifier: origin.SignedVerifier{},
			Currency: m.ledger,
			Random:   randomness.Fixed{},
			Context:  m.header,
			Events:   messagebus.New(),
		})
		return err
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if nil != m.store {
			if m.verbose {
				fmt.Fprintf(m.e, "closing database\n")
			}
			m.store.Close()
		}
		if m.logging {
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
