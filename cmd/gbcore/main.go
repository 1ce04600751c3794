// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"
	"golang.org/x/text/language"

	"github.com/ezrec/gbcore/cpu"
	"github.com/ezrec/gbcore/debugger"
	"github.com/ezrec/gbcore/emulator"
	"github.com/ezrec/gbcore/logger"
	"github.com/ezrec/gbcore/rom"
	"github.com/ezrec/gbcore/translate"
)

// parseList parses a comma separated list of numbers.
func parseList(list string, bits int) (values []uint64, err error) {
	for _, word := range strings.Split(list, ",") {
		word = strings.TrimSpace(word)
		if len(word) == 0 {
			continue
		}
		var value uint64
		value, err = strconv.ParseUint(word, 0, bits)
		if err != nil {
			return
		}
		values = append(values, value)
	}
	return
}

func main() {
	var romfile string
	var logfile string
	var breaks string
	var opcodes string
	var cond string
	var step bool
	var limit int
	var verbose bool
	var lang string
	var config cpu.Config

	flag.StringVar(&romfile, "rom", "", "Cartridge image to run")
	flag.StringVar(&logfile, "log", "", "Append log entries to this file")
	flag.StringVar(&breaks, "b", "", "Comma separated breakpoint addresses")
	flag.StringVar(&opcodes, "op", "", "Comma separated breakpoint opcodes")
	flag.StringVar(&cond, "cond", "", "Breakpoint expression, e.g. 'pc == 0x150 and a > 3'")
	flag.BoolVar(&step, "step", false, "Start in single step mode")
	flag.IntVar(&limit, "n", 0, "Maximum instructions to run (0 is unlimited)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&lang, "lang", "", "Message language (default from the environment)")
	flag.BoolVar(&config.DelayedEI, "delayed-ei", false, "EI takes effect after the next instruction")
	flag.BoolVar(&config.PostBootState, "post-boot", false, "Start with the post-boot register values")

	flag.Parse()

	if flag.NArg() == 1 && len(romfile) == 0 {
		romfile = flag.Arg(0)
	} else if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(romfile) == 0 {
		log.Fatalf("%v: no -rom given", os.Args[0])
	}

	if len(lang) != 0 {
		tag, err := language.Parse(lang)
		if err != nil {
			log.Fatalf("-lang: %v", err)
		}
		translate.SetLanguage(tag)
	}

	config.Verbose = verbose

	central := logger.NewCentral(256)
	sinks := logger.Multi{central, &logger.Std{Verbose: verbose}}

	if len(logfile) != 0 {
		ouf, err := os.OpenFile(logfile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatalf("%v: %v", logfile, err)
		}
		defer ouf.Close()
		file := logger.NewFile(ouf, time.Now())
		if verbose {
			file.MinimumLevel = logger.LEVEL_DEBUG
		}
		sinks = append(sinks, file)
	}

	img, err := rom.Load(os.DirFS(filepath.Dir(romfile)), filepath.Base(romfile))
	if err != nil {
		log.Fatalf("%v: %v", romfile, err)
	}

	emu := emulator.NewEmulator(sinks, config)
	err = emu.LoadImage(img)
	if err != nil {
		log.Fatalf("%v: %v", romfile, err)
	}

	addrs, err := parseList(breaks, 16)
	if err != nil {
		log.Fatalf("-b: %v", err)
	}
	for _, addr := range addrs {
		emu.Debugger.AddAddress(uint16(addr))
	}

	ops, err := parseList(opcodes, 8)
	if err != nil {
		log.Fatalf("-op: %v", err)
	}
	for _, op := range ops {
		emu.Debugger.AddOpcode(uint8(op))
	}

	if len(cond) != 0 {
		err = emu.Debugger.AddCondition(cond)
		if err != nil {
			log.Fatalf("-cond: %v", err)
		}
	}

	if step {
		emu.Debugger.Mode = debugger.MODE_STEP
	}

	if step || len(addrs) != 0 || len(ops) != 0 || len(cond) != 0 {
		console := debugger.NewConsole(os.Stdin, os.Stdout)
		console.Prompt = term.IsTerminal(int(os.Stdin.Fd()))
		console.Log = central
		emu.Inspector = console
	}

	ticks, err := emu.Run(limit)
	if err != nil {
		log.Print(emu.Cpu.String())
		log.Fatal(err)
	}

	if verbose {
		log.Printf("%v: %v instructions", romfile, ticks)
	}
}
