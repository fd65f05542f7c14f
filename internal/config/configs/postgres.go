package configs

import "net/url"

// Postgres holds configuration for connecting to a PostgreSQL database. The
// Addr field is a full connection string accepted by pgxpool.New. RunMigrations
// enables automatic migration execution on startup; RunSeed loads demo data
// after migrating.
type Postgres struct {
	// Addr is a PostgreSQL connection string. It should include the
	// sslmode parameter if required.
	Addr url.URL `env:"ADDRESS,notEmpty"`
	// RunMigrations controls whether database migrations are executed on
	// startup. Only honoured by main.
	RunMigrations bool `env:"RUN_MIGRATIONS" envDefault:"false"`
	// RunSeed inserts demo data after migrations. Development only.
	RunSeed bool `env:"RUN_SEED" envDefault:"false"`
}
