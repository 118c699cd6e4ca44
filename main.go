package main

import (
	"fmt"
	"os"
	"strings"

	"blognest/app/config"
	"blognest/routes"

	"github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("blognest version %s\n", cliVersion)
	case "serve":
		serve()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: blognest <command>
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve                          Run the blog API server (configured via env / .env).
`
	fmt.Println(helpText)
}

// serve opens the database and runs the HTTP server until it fails.
func serve() {
	cfg := config.Load()

	opts := badger.DefaultOptions(cfg.DBPath).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open Badger DB")
	}
	defer db.Close()

	router := routes.SetupRoutes(db, cfg)

	logrus.WithFields(logrus.Fields{
		"addr":      cfg.Addr,
		"db_path":   cfg.DBPath,
		"read_open": cfg.ReadOpen,
	}).Info("starting blog API server")

	if err := routes.StartServer(cfg.Addr, router); err != nil {
		logrus.WithError(err).Fatal("server error")
	}
}
