// Command wordlist builds words.json from the Oxford 3000 and Oxford 5000
// word lists. It preflights every input, extracts headwords level by level,
// removes duplicates keeping the easiest level, sorts and numbers the list,
// writes it atomically and prints a summary.
//
// Flags:
//
//	--config   path to YAML config file (default: CONFIG_PATH or ./wordlist.yaml)
//	--mode     pdf (default) or text
//	--out      output file (default: words.json)
//	--dry-run  parse and report without writing the output
//	--version  print the build version and exit
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/aruytehno/english-trainer/internal/app"
)

func main() {
	configFlag := flag.String("config", "", "path to YAML config file")
	modeFlag := flag.String("mode", "", "input mode: pdf or text")
	outFlag := flag.String("out", "", "output JSON file")
	dryRunFlag := flag.Bool("dry-run", false, "parse and report without writing output")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println(app.BuildVersion())
		return
	}

	err := app.Run(context.Background(), app.Options{
		ConfigPath: *configFlag,
		Mode:       *modeFlag,
		OutputPath: *outFlag,
		DryRun:     *dryRunFlag,
		Stdout:     os.Stdout,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "wordlist: %v\n", err)
		os.Exit(1)
	}
}
