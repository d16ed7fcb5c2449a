// dbcheck verifica a conectividade do banco: conecta via lib/pq, faz ping
// e conta as tabelas principais. Sai com código 0 em caso de sucesso e 1
// em falha, para uso em probes de deploy.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"minhaigreja_backend/internals/configs"
)

var coreTables = []string{
	"churches",
	"members",
	"groups",
	"teaching_classes",
	"discipleship_leaders",
	"departments",
	"services",
	"transactions",
}

func main() {
	configs.LoadEnv()

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=minhaigreja_dbcheck",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		configs.GetEnv("DB_SSLMODE", "require"),
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Printf("❌ abrir conexão: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Printf("❌ ping: %v", err)
		os.Exit(1)
	}
	log.Println("✅ ping ok")

	failed := false
	for _, table := range coreTables {
		var count int64
		q := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
		if err := db.QueryRowContext(ctx, q).Scan(&count); err != nil {
			log.Printf("❌ %s: %v", table, err)
			failed = true
			continue
		}
		log.Printf("✅ %s: %d linhas", table, count)
	}
	if failed {
		os.Exit(1)
	}
	log.Println("✅ banco saudável")
}
