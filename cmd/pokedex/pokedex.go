// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"strings"

	"github.com/btcsuite/treapdex/internal/log"
	"github.com/btcsuite/treapdex/internal/query"
	"github.com/btcsuite/treapdex/pokedex"
	"github.com/btcsuite/treapdex/priority"
)

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain() error {
	// Load configuration and parse command line.
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.LogFile != "" {
		if err := log.InitLogRotator(cfg.LogFile); err != nil {
			return err
		}
		defer log.LogRotator.Close()
	}

	var in io.Reader = os.Stdin
	switch {
	case cfg.Demo:
		in = strings.NewReader(query.DemoScript)
	case cfg.InFile != "":
		fi, err := os.Open(cfg.InFile)
		if err != nil {
			log.MainLog.Errorf("Failed to open file %v: %v", cfg.InFile, err)
			return err
		}
		defer fi.Close()
		in = fi
	}

	var src priority.Source
	if cfg.Seed != 0 {
		src = priority.NewSeeded(cfg.Seed)
	}
	dex := pokedex.New(src)
	session := query.NewPokedexSession(dex)
	if err := session.Run(in, os.Stdout); err != nil {
		log.MainLog.Errorf("%v", err)
		return err
	}

	log.MainLog.Infof("Answered %d queries with %d pokemon caught",
		session.Queries(), dex.Len())
	return nil
}

func main() {
	// Work around defer not working after os.Exit()
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
