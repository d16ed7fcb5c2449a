// seed semeia os padrões de um tenant (taxonomias, departamentos padrão e
// mapa de permissões) a partir da linha de comando.
//
//	go run ./cmd/seed -church <uuid>
package main

import (
	"flag"
	"log"
	"os"

	"github.com/google/uuid"

	"minhaigreja_backend/internals/configs"
	database "minhaigreja_backend/internals/databases"
	"minhaigreja_backend/internals/seeds"
)

func main() {
	churchFlag := flag.String("church", "", "UUID da igreja a semear")
	flag.Parse()

	if *churchFlag == "" {
		log.Println("uso: seed -church <uuid>")
		os.Exit(1)
	}
	churchID, err := uuid.Parse(*churchFlag)
	if err != nil {
		log.Printf("❌ church inválido: %v", err)
		os.Exit(1)
	}

	configs.LoadEnv()
	database.ConnectDB()
	database.TunePool()

	if err := seeds.SeedChurchDefaults(database.DB, churchID); err != nil {
		log.Printf("❌ seed falhou: %v", err)
		os.Exit(1)
	}
	log.Printf("✅ seed concluído church=%s", churchID)
}
