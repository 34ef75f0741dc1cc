package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/signbook/internal/cli"
	"github.com/mrlokans/signbook/internal/config"
	"github.com/mrlokans/signbook/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

// command is implemented by every CLI subcommand.
type command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		entrypoint.Run(cfg, Version)
		return
	}

	name := os.Args[1]
	args := os.Args[2:]

	var cmd command
	switch name {
	case "favourites-export":
		cmd = cli.NewFavouritesExportCommand()
	case "favourites-import":
		cmd = cli.NewFavouritesImportCommand()
	case "search":
		cmd = cli.NewSearchCommand()
	case "categories":
		cmd = cli.NewCategoriesCommand()
	case "version":
		fmt.Printf("signbook %s (%s)\n", Version, Commit)
		return
	case "-h", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve               Start the HTTP server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  favourites-export   Export favourites to Merken.json\n")
	fmt.Fprintf(os.Stderr, "  favourites-import   Merge favourites from a Merken.json document\n")
	fmt.Fprintf(os.Stderr, "  search              Search sign terms in the catalog\n")
	fmt.Fprintf(os.Stderr, "  categories          List categories or the entries of one category\n")
	fmt.Fprintf(os.Stderr, "  version             Print version information\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
