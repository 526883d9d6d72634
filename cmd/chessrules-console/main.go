// Command chessrules-console plays a two-player game in the terminal.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/term"

	"github.com/hailam/chessrules/internal/console"
	"github.com/hailam/chessrules/internal/storage"
)

var (
	dataDir = flag.String("data", "", "data directory (default: platform data directory)")
	noColor = flag.Bool("no-color", false, "disable coloured output")
	noStore = flag.Bool("no-store", false, "do not record statistics")
	verbose = flag.Bool("v", false, "log every move to stderr")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() (err error) {
	colored := !*noColor && term.IsTerminal(int(os.Stdout.Fd()))
	opts := []console.Option{console.WithColor(colored)}

	if *verbose {
		opts = append(opts, console.WithLogger(log.New(os.Stderr, "", log.Ltime)))
	}

	if !*noStore {
		store, serr := storage.Open(*dataDir)
		if serr != nil {
			log.Printf("Warning: statistics disabled: %v", serr)
		} else {
			defer func() {
				if cerr := store.Close(); cerr != nil {
					err = multierror.Append(err, cerr).ErrorOrNil()
				}
			}()
			opts = append(opts, console.WithStore(store))
		}
	}

	return console.New(os.Stdin, os.Stdout, opts...).Run()
}
