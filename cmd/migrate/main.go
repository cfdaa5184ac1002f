package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/farmstore/backend/internal/infrastructure/config"
	"github.com/farmstore/backend/internal/infrastructure/logger"
	"github.com/farmstore/backend/internal/infrastructure/migration"
	"go.uber.org/zap"

	_ "github.com/lib/pq"
)

const usage = `Usage: migrate [flags] <command>

Commands:
  up              Apply all pending migrations
  down            Roll back all migrations
  steps <n>       Apply n migrations (negative rolls back)
  version         Print the current migration version
  force <v>       Force the version without running migrations

Flags:
`

func main() {
	path := flag.String("path", "migrations", "path to the migration files")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	command := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	migrator, err := migration.New(db, *path, log)
	if err != nil {
		log.Fatal("Failed to initialize migrator", zap.Error(err))
	}
	defer func() {
		_ = migrator.Close()
	}()

	switch command {
	case "up":
		err = migrator.Up()
	case "down":
		err = migrator.Down()
	case "steps":
		n, parseErr := intArg(1)
		if parseErr != nil {
			log.Fatal("steps requires a numeric argument", zap.Error(parseErr))
		}
		err = migrator.Steps(n)
	case "version":
		version, dirty, vErr := migrator.Version()
		if vErr != nil {
			log.Fatal("Failed to read migration version", zap.Error(vErr))
		}
		fmt.Printf("version: %d, dirty: %t\n", version, dirty)
		return
	case "force":
		v, parseErr := intArg(1)
		if parseErr != nil {
			log.Fatal("force requires a numeric version", zap.Error(parseErr))
		}
		err = migrator.Force(v)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal("Migration failed", zap.String("command", command), zap.Error(err))
	}
	log.Info("Migration command completed", zap.String("command", command))
}

func intArg(i int) (int, error) {
	if flag.NArg() <= i {
		return 0, fmt.Errorf("missing argument")
	}
	return strconv.Atoi(flag.Arg(i))
}
