package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/artcom/cheminova-backend/data"
	"github.com/artcom/cheminova-backend/internal/config"
	"github.com/artcom/cheminova-backend/internal/database"
	"github.com/artcom/cheminova-backend/internal/logging"
	"github.com/artcom/cheminova-backend/internal/sitedata"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

const usage = `
Dump or load the site content of the configured database.

Usage:

sitedata [-h] [-f ENV_FILE_PATH] COMMAND [ARGS]

Commands:
  dump [-o FILE]   write the site as JSON to FILE or stdout
  load [-i FILE]   load a site JSON from FILE or stdin into an empty database
  seed             load the built in sample site into an empty database
  schema           print the table definitions the models migrate to

example
  sitedata -f /path/to/something/.env dump -o site.json
`

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.Parse()

	if showHelp || flag.NArg() == 0 {
		fmt.Print(usage)
		return
	}

	if envFilename != "" {
		if err := godotenv.Load(envFilename); err != nil {
			logging.Fatal().Err(err).Str("file", envFilename).Msg("Failed to load environment variables")
		}
	}

	command, args := flag.Arg(0), flag.Args()[1:]
	if command == "schema" {
		if err := database.WriteSchema(os.Stdout); err != nil {
			logging.Fatal().Err(err).Msg("Failed to write schema")
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: "console", Output: os.Stderr})

	db, err := database.Connect(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		logging.Fatal().Err(err).Msg("Failed to run migrations")
	}

	ctx := context.Background()
	switch command {
	case "dump":
		err = dump(ctx, db, args)
	case "load":
		err = load(ctx, db, args)
	case "seed":
		err = loadFrom(ctx, db, bytes.NewReader(data.SampleSite))
	default:
		fmt.Print(usage)
		os.Exit(2)
	}
	if err != nil {
		logging.Fatal().Err(err).Str("command", command).Msg("Site data command failed")
	}
}

func dump(ctx context.Context, db *gorm.DB, args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	output := fs.String("o", "", "output file, stdout if empty")
	_ = fs.Parse(args)

	doc, err := sitedata.Dump(ctx, db)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if err := doc.Encode(w); err != nil {
		return err
	}
	logging.Info().
		Int("collections", len(doc.Collections)).
		Int("images", len(doc.Images)).
		Int("pages", len(doc.Pages)).
		Msg("Site dumped")
	return nil
}

func load(ctx context.Context, db *gorm.DB, args []string) error {
	fs := flag.NewFlagSet("load", flag.ExitOnError)
	input := fs.String("i", "", "input file, stdin if empty")
	_ = fs.Parse(args)

	var r io.Reader = os.Stdin
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	return loadFrom(ctx, db, r)
}

func loadFrom(ctx context.Context, db *gorm.DB, r io.Reader) error {
	doc, err := sitedata.Decode(r)
	if err != nil {
		return fmt.Errorf("failed to decode site data: %w", err)
	}
	if err := sitedata.Load(ctx, db, doc); err != nil {
		return err
	}
	logging.Info().
		Int("collections", len(doc.Collections)).
		Int("images", len(doc.Images)).
		Int("pages", len(doc.Pages)).
		Msg("Site loaded")
	return nil
}
