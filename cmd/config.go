package cmd

import "time"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// StaleAssignmentAge is how long an order may rest in assigned before the
	// sweep releases it back to the pending pool.
	StaleAssignmentAge time.Duration

	// StockCount seeds the static inventory provider backing the dashboard.
	StockCount int
}
