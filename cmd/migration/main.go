package main

import (
	"bufio"
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	"gitlab.com/dirk.krummacker/persons-service/internal/config"
	"gitlab.com/dirk.krummacker/persons-service/internal/logging"
	"gitlab.com/dirk.krummacker/persons-service/internal/store"
)

// Usage example on the command line:
// > DBHOST=localhost:3306 DBUSER=dirk DBPWD=bullo92 go run main.go -file=../../scripts/database.sql
func main() {
	filePtr := flag.String("file", "database.sql", "the sql file to execute")
	flag.Parse()

	cfg := config.MustLoad()
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	sqlDB, err := store.OpenDatabase(cfg.Database)
	if err != nil {
		panic(err)
	}
	db := sqlx.NewDb(sqlDB, "mysql")
	defer db.Close()

	readFile, err := os.Open(*filePtr) // nosemgrep
	if err != nil {
		panic(err)
	}
	defer readFile.Close()

	// Statements may span several lines and end with a semicolon.
	fileScanner := bufio.NewScanner(readFile)
	fileScanner.Split(bufio.ScanLines)
	builder := strings.Builder{}
	executed := 0
	for fileScanner.Scan() {
		line := fileScanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		builder.WriteString(line)
		builder.WriteString(" ")
		if strings.Contains(line, ";") {
			db.MustExec(builder.String())
			executed++
			builder = strings.Builder{}
		}
	}
	if err := fileScanner.Err(); err != nil {
		panic(err)
	}
	slog.Info("sql script executed", "file", *filePtr, "statements", executed)

	orm, err := store.OpenORM(sqlDB)
	if err != nil {
		panic(err)
	}
	if err := store.MigrateOrders(orm); err != nil {
		panic(err)
	}
	slog.Info("order tables migrated")
}
