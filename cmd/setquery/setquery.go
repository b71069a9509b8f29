// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/btcsuite/treapdex/internal/log"
	"github.com/btcsuite/treapdex/internal/query"
	"github.com/btcsuite/treapdex/priority"
)

// newSourceFunc returns the function used to give each new set its priority
// source.  A zero seed gives every set an unpredictable source.  Otherwise
// each set is seeded with the configured seed offset by its creation index so
// sets made in the same run do not share a priority sequence.
func newSourceFunc(seed uint64) func() priority.Source {
	if seed == 0 {
		return nil
	}
	var made uint64
	return func() priority.Source {
		src := priority.NewSeeded(seed + made)
		made++
		return src
	}
}

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
	if cfg.InFile != "" {
		fi, err := os.Open(cfg.InFile)
		if err != nil {
			log.MainLog.Errorf("Failed to open file %v: %v", cfg.InFile, err)
			return err
		}
		defer fi.Close()
		in = fi
	}

	processor := query.NewSetProcessor(&query.SetConfig{
		NewSource: newSourceFunc(cfg.Seed),
		Strict:    cfg.Strict,
	})
	if err := processor.Run(in, os.Stdout); err != nil {
		log.MainLog.Errorf("%v", err)
		return err
	}
	if cfg.Verify {
		if err := processor.Verify(); err != nil {
			log.MainLog.Errorf("Verification failed: %v", err)
			return err
		}
		log.MainLog.Debugf("All sets passed verification")
	}

	stats := processor.Stats()
	log.MainLog.Infof("Processed %d commands across %d sets holding %d keys",
		stats.Commands, stats.Sets, stats.Keys)
	return nil
}

func main() {
	// Work around defer not working after os.Exit()
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
