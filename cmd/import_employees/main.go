// import_employees carga funcionarios desde una exportación CSV del sistema de RH.
//
// Uso: go run ./cmd/import_employees [-utf8] [-delimiter ';'] funcionarios.csv
// Encabezado esperado: nome;matricula;empresa;admissao;tipo_sanguineo;cpf;rg[;foto]
// Por defecto el archivo se lee como ISO-8859-1. Usa la base configurada (DB_DRIVER).
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"unicode/utf8"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/canvacrancha/badge-api/internal/application/importing"
	"github.com/canvacrancha/badge-api/internal/infrastructure/migrations"
	"github.com/canvacrancha/badge-api/internal/infrastructure/postgres"
	"github.com/canvacrancha/badge-api/internal/infrastructure/sqlite"
	"github.com/canvacrancha/badge-api/pkg/config"
	"github.com/canvacrancha/badge-api/pkg/logger"
)

func main() {
	useUTF8 := flag.Bool("utf8", false, "el archivo está en UTF-8 (por defecto ISO-8859-1)")
	delimiter := flag.String("delimiter", ";", "separador de columnas")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: import_employees [-utf8] [-delimiter ';'] archivo.csv")
		os.Exit(2)
	}
	sep, size := utf8.DecodeRuneInString(*delimiter)
	if size == 0 || size != len(*delimiter) {
		fmt.Fprintf(os.Stderr, "delimitador inválido: %q\n", *delimiter)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	ctx := context.Background()
	tx, closeDB, err := openTxRunner(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar base de datos: %v\n", err)
		os.Exit(1)
	}
	defer closeDB()

	res, err := importing.NewImportUseCase(tx).Import(ctx, f, importing.Options{UTF8: *useUTF8, Delimiter: sep})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Importar: %v\n", err)
		os.Exit(1)
	}

	for _, r := range res.Rejected {
		log.Warn().Int("line", r.Line).Str("reason", r.Reason).Msg("fila descartada")
	}
	fmt.Printf("Importados: %d, duplicados: %d, descartados: %d\n", res.Inserted, res.Duplicates, len(res.Rejected))
}

// openTxRunner abre la base configurada, aplica migraciones y devuelve el runner transaccional.
func openTxRunner(ctx context.Context, cfg *config.Config, log *logger.Logger) (importing.TxRunner, func(), error) {
	if cfg.DB.Driver == config.DriverSQLite {
		db, err := sqlite.Open(ctx, cfg.DB.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := migrations.UpSQLite(db, log); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return sqlite.NewTxRunner(db), func() { _ = db.Close() }, nil
	}

	db, err := sql.Open("pgx", cfg.DB.ConnectionString())
	if err != nil {
		return nil, nil, err
	}
	err = migrations.UpPostgres(db, log)
	_ = db.Close()
	if err != nil {
		return nil, nil, err
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	return postgres.NewTxRunner(pool), pool.Close, nil
}
