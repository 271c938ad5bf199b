package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strconv"

	"packing/cmd"
	"packing/internal/adapters/out/postgres/migrations"
	"packing/internal/pkg/logger"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	var (
		envFile  string
		logLevel string
	)
	flag.StringVar(&envFile, "env", ".env", "Path to an optional .env file")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	log, err := logger.New(logger.Config{Level: logLevel, Format: "console", Output: "stdout"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := cmd.LoadConfig(envFile)
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := sql.Open("postgres", cfg.DatabaseConfig().DSN())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database", zap.Error(err))
	}

	m, err := migrations.New(db, log)
	if err != nil {
		log.Fatal("Failed to create migrator", zap.Error(err))
	}
	defer func() { _ = m.Close() }()

	switch command {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "steps":
		var n int
		if n, err = intArg(args); err == nil {
			err = m.Steps(n)
		}
	case "force":
		var version int
		if version, err = intArg(args); err == nil {
			err = m.Force(version)
		}
	case "version":
		var (
			version uint
			dirty   bool
		)
		if version, dirty, err = m.Version(); err == nil {
			log.Info("Current migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))
		}
	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		log.Fatal("Migration command failed", zap.String("command", command), zap.Error(err))
	}
}

func intArg(args []string) (int, error) {
	if len(args) < 2 {
		return 0, fmt.Errorf("%s requires a numeric argument", args[0])
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", args[1], err)
	}
	return n, nil
}

func printUsage() {
	fmt.Println(`Usage: migrate [flags] <command> [args]

Commands:
  up             Apply all pending migrations
  down           Roll back all migrations
  steps <n>      Apply n migrations (negative rolls back)
  force <v>      Set the version without running migrations
  version        Print the current version

Flags:
  -env string        Path to an optional .env file (default ".env")
  -log-level string  Log level (default "info")`)
}
