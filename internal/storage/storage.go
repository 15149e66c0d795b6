package storage

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/trenlog/trenlog/internal/config"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

type Storage struct {
	DB *sql.DB
}

func NewStorage() *Storage {
	_ = godotenv.Load()

	url := os.Getenv("TRENLOG_DATABASE_URL")
	if url == "" {
		cfg, err := config.LoadConfig()
		if err != nil || cfg.DB.ConnectionString == "" {
			fmt.Fprintln(os.Stderr, "TRENLOG_DATABASE_URL not set and no connection string in config")
			os.Exit(1)
		}
		url = cfg.DB.ConnectionString
	}

	db, err := sql.Open("libsql", url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open db %s: %s", url, err)
		os.Exit(1)
	}

	if err := initializeDB(db); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize database: %v", err)
		os.Exit(1)
	}

	return &Storage{DB: db}
}

func initializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS workout_sessions (
            id TEXT PRIMARY KEY,
            user_id TEXT NOT NULL,
            program_id TEXT NOT NULL,
            program_name TEXT NOT NULL,
            started_at TEXT NOT NULL,
            completed_at TEXT,
            total_duration REAL,
            status TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS set_logs (
            id TEXT PRIMARY KEY,
            user_id TEXT NOT NULL,
            program_id TEXT,
            exercise_id TEXT,
            session_id TEXT,
            timestamp TEXT NOT NULL,
            exercise_name TEXT NOT NULL,
            set_number INTEGER NOT NULL,
            reps INTEGER NOT NULL DEFAULT 0,
            weight REAL NOT NULL DEFAULT 0,
            duration REAL NOT NULL DEFAULT 0,
            distance REAL NOT NULL DEFAULT 0,
            comment TEXT,
            FOREIGN KEY (session_id) REFERENCES workout_sessions(id)
        );

        CREATE TABLE IF NOT EXISTS personal_records (
            id TEXT PRIMARY KEY,
            user_id TEXT NOT NULL,
            exercise_name TEXT NOT NULL,
            exercise_type TEXT NOT NULL,
            achieved_at TEXT NOT NULL,
            session_id TEXT,
            log_id TEXT,
            is_current INTEGER NOT NULL DEFAULT 1,
            previous_record_id TEXT,
            weight REAL NOT NULL DEFAULT 0,
            reps INTEGER NOT NULL DEFAULT 0,
            estimated_1rm REAL NOT NULL DEFAULT 0,
            duration REAL NOT NULL DEFAULT 0,
            distance REAL NOT NULL DEFAULT 0
        );
    `)
	return err
}
