package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"regexlab/internal/config"
	"regexlab/internal/regexlib"
	"regexlab/internal/script"
)

func main() {
	pattern := flag.String("re", "", "regular expression over single-character symbols")
	cfgPath := flag.String("config", "", "YAML config file")
	scriptPath := flag.String("script", "", "run a scenario script instead of -re")
	render := flag.String("render", "", "automata to export as DOT: nfa,dfa,min,direct")
	outDir := flag.String("o", "", "output directory for DOT files ('-' = stdout)")
	table := flag.Bool("table", false, "print the minimal DFA transition table")
	interactive := flag.Bool("i", false, "prompt for strings to match")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	if *render != "" {
		cfg.Render = strings.Split(*render, ",")
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(cfg.Level())
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	opts := []regexlib.Option{
		regexlib.WithEndMarker(cfg.Marker()),
		regexlib.WithLogger(log),
	}

	if *scriptPath != "" {
		if err := runScript(*scriptPath, log, opts); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if *pattern == "" {
		fmt.Fprintln(os.Stderr, "usage: regexlab -re <pattern> [-render nfa,dfa,min,direct] [-o dir] [-table] [-i] [strings...]")
		fmt.Fprintln(os.Stderr, "       regexlab -script <file>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	re, err := regexlib.Compile(*pattern, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("postfix: %s\n", re.Postfix())

	for _, name := range cfg.Render {
		if err := exportDOT(re, regexlib.Engine(name), cfg.OutputDir); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if *table {
		if err := regexlib.WriteTable(os.Stdout, re.DFA()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	for _, s := range flag.Args() {
		printVerdicts(re, s)
	}

	if *interactive {
		if err := runInteractive(re); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func runScript(path string, log logrus.FieldLogger, opts []regexlib.Option) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read script")
	}
	s, err := script.Parse(path, string(data))
	if err != nil {
		return err
	}
	rep := s.Run(&script.Context{Logger: log, Options: opts})
	fmt.Println(rep)
	return rep.Err()
}

func exportDOT(re *regexlib.Regex, e regexlib.Engine, dir string) error {
	g, err := re.Automaton(e)
	if err != nil {
		return err
	}
	if dir == "-" {
		regexlib.ExportDOT(os.Stdout, g)
		return nil
	}
	path := filepath.Join(dir, string(e)+".dot")
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create %s", path)
	}
	regexlib.ExportDOT(f, g)
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	fmt.Printf("DOT written to %s\n", path)
	return nil
}

func printVerdicts(re *regexlib.Regex, s string) {
	fmt.Printf("%q:", s)
	for _, e := range regexlib.Engines {
		ok, _ := re.MatchWith(e, s)
		fmt.Printf(" %s=%v", e, ok)
	}
	fmt.Println()
}
