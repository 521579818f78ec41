// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/ezrec/lc3vm/console"
	"github.com/ezrec/lc3vm/emulator"
)

func main() {
	var verbose bool

	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "usage: %v [-v] image-file ...\n", os.Args[0])
		os.Exit(2)
	}

	con := console.NewStdio(os.Stdin, os.Stdout)
	emu := emulator.New(con)
	emu.Verbose = verbose

	for _, path := range flag.Args() {
		if err := emu.LoadImageFile(path); err != nil {
			log.Fatalf("%v: %v", path, err)
		}
	}

	// Raw mode only applies when a real terminal is attached; piped
	// input runs without it.
	var raw *console.RawMode
	if term.IsTerminal(int(os.Stdin.Fd())) {
		var err error
		raw, err = console.EnterRawMode(os.Stdin.Fd())
		if err != nil {
			log.Fatalf("raw mode: %v", err)
		}
		defer raw.Restore()

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)
		go func() {
			<-interrupt
			raw.Restore()
			os.Exit(130)
		}()
	}

	err := emu.Run()
	if raw != nil {
		raw.Restore()
	}
	if err != nil {
		log.Fatalf("lc3vm: %v", err)
	}
}
