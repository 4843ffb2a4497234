package main

import (
	"context"
	"flag"
	"os"
	"path"

	"quote_service/internal/cli"

	"github.com/google/subcommands"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	for _, c := range cli.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
