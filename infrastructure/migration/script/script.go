package main

import (
	"database/sql"
	"flag"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

const (
	roleMaster      = 1
	roleSalesperson = 2
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(100) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		role_id INTEGER NOT NULL DEFAULT 2,
		salesperson_filter VARCHAR(50),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS sales_records (
		id BIGSERIAL PRIMARY KEY,
		sync_id VARCHAR(20) NOT NULL,
		client_id VARCHAR(50) NOT NULL,
		client_name VARCHAR(255) NOT NULL,
		invoice_id VARCHAR(50) NOT NULL,
		salesperson_id VARCHAR(50) NOT NULL,
		product_code VARCHAR(50),
		product_description VARCHAR(255),
		category VARCHAR(100),
		subcategory VARCHAR(100),
		quantity NUMERIC(14,2) NOT NULL DEFAULT 0,
		amount NUMERIC(14,2) NOT NULL DEFAULT 0,
		date DATE NOT NULL,
		year INTEGER NOT NULL,
		month VARCHAR(20) NOT NULL,
		week INTEGER NOT NULL,
		weekday VARCHAR(20) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS sales_records_salesperson_idx ON sales_records (salesperson_id)`,
	`CREATE INDEX IF NOT EXISTS sales_records_period_idx ON sales_records (year, month)`,
	`CREATE TABLE IF NOT EXISTS budget_records (
		id BIGSERIAL PRIMARY KEY,
		sync_id VARCHAR(20) NOT NULL,
		salesperson_id VARCHAR(50) NOT NULL,
		amount NUMERIC(14,2) NOT NULL DEFAULT 0,
		quantity NUMERIC(14,2) NOT NULL DEFAULT 0,
		month VARCHAR(20) NOT NULL,
		year INTEGER NOT NULL,
		category VARCHAR(100),
		subcategory VARCHAR(100)
	)`,
	`CREATE INDEX IF NOT EXISTS budget_records_period_idx ON budget_records (year, month)`,
	`CREATE TABLE IF NOT EXISTS call_records (
		id BIGSERIAL PRIMARY KEY,
		sync_id VARCHAR(20) NOT NULL,
		salesperson VARCHAR(100) NOT NULL,
		file VARCHAR(255) NOT NULL,
		date DATE,
		month VARCHAR(20),
		duration_seconds NUMERIC(10,2) NOT NULL DEFAULT 0,
		script_adherence NUMERIC(6,2) NOT NULL DEFAULT 0,
		sentiment NUMERIC(6,2) NOT NULL DEFAULT 0,
		fluency_rating VARCHAR(50),
		transcript TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS salesperson_ranking (
		id SERIAL PRIMARY KEY,
		salesperson_id VARCHAR(50) NOT NULL,
		period VARCHAR(7) NOT NULL,
		realized_amount NUMERIC(14,2) NOT NULL DEFAULT 0,
		target_amount NUMERIC(14,2) NOT NULL DEFAULT 0,
		percent_amount NUMERIC(10,2),
		position INTEGER NOT NULL,
		position_change INTEGER NOT NULL DEFAULT 0,
		previous_position INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT salesperson_ranking_salesperson_period_unique UNIQUE (salesperson_id, period)
	)`,
}

type seedUser struct {
	Username string
	RoleID   int
	Filter   *string
}

func salesperson(username, filter string) seedUser {
	return seedUser{Username: username, RoleID: roleSalesperson, Filter: &filter}
}

var seedUsers = []seedUser{
	{Username: "master", RoleID: roleMaster},
	salesperson("VDE1", "VDE_1"),
	salesperson("VDE2", "VDE_2"),
	salesperson("VDE3", "VDE_3"),
	salesperson("VDE4", "VDE_4"),
}

func createSchema(db *sql.DB) error {
	logrus.Infof("Criando %d objetos do schema...", len(schema))
	startTime := time.Now()

	for i, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("erro no comando %d do schema: %w", i+1, err)
		}
	}

	logrus.Infof("Schema criado em %v", time.Since(startTime))
	return nil
}

// seed cria os usuários que ainda não existem. As senhas geradas só aparecem neste log.
func seed(db *sql.DB) error {
	stmt, err := db.Prepare(`
		INSERT INTO users (username, password_hash, active, role_id, salesperson_filter)
		VALUES ($1, $2, TRUE, $3, $4)
		ON CONFLICT (username) DO NOTHING`)
	if err != nil {
		return fmt.Errorf("erro ao preparar insert de usuários: %w", err)
	}
	defer stmt.Close()

	created := 0
	for _, u := range seedUsers {
		password, err := utils.GeneratePassword()
		if err != nil {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		result, err := stmt.Exec(u.Username, string(hash), u.RoleID, u.Filter)
		if err != nil {
			logrus.WithError(err).Errorf("Erro ao inserir usuário %s", u.Username)
			continue
		}

		if rows, _ := result.RowsAffected(); rows == 0 {
			logrus.Infof("Usuário %s já existe, mantido", u.Username)
			continue
		}

		created++
		logrus.WithFields(logrus.Fields{
			"username": u.Username,
			"password": password,
		}).Info("Usuário criado")
	}

	logrus.Infof("Seed concluído. Usuários criados: %d", created)
	return nil
}

func main() {
	withSeed := flag.Bool("seed", true, "cria os usuários iniciais")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("Conectando ao banco de dados...")
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logrus.Fatalf("ERRO ao verificar conexão com o banco: %v", err)
	}

	if err := createSchema(db); err != nil {
		logrus.Fatal(err)
	}

	if *withSeed {
		if err := seed(db); err != nil {
			logrus.Fatal(err)
		}
	}

	logrus.Info("Migração concluída")
}
