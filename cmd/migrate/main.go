package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"mottufind/config"
	"mottufind/internal/pkg/database"
)

// Uso: go run ./cmd/migrate [up|down|status|redo|version] [args...]
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: arquivo .env não encontrado. Usando apenas variáveis do ambiente: %v", err)
	}
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("goose: configuração inválida: %v", err)
	}

	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("goose: falha ao conectar ao DB: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("goose: falha ao fechar o DB: %v", err)
		}
	}()

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}
	command, args := arguments[0], arguments[1:]

	if err := database.Migrate(db, command, args...); err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Printf("goose %s concluído\n", command)
}
