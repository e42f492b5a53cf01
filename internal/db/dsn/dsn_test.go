package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alshoaa/siteadmin/internal/config"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name     string
		db       config.DB
		want     string
		redacted string
	}{
		{
			name: "mysql default extras",
			db: config.DB{
				GormEngine: config.EngineMySQL,
				Host:       "localhost",
				Port:       3306,
				User:       "site",
				Password:   "pw",
				Name:       "portfolio",
			},
			want:     "site:pw@tcp(localhost:3306)/portfolio?" + MySQLDefaultExtras,
			redacted: "site:xxxxx@tcp(localhost:3306)/portfolio?" + MySQLDefaultExtras,
		},
		{
			name: "mysql custom extras",
			db: config.DB{
				GormEngine: config.EngineMySQL,
				Host:       "db",
				Port:       3307,
				User:       "site",
				Password:   "pw",
				Name:       "portfolio",
				Extras:     "parseTime=true",
			},
			want:     "site:pw@tcp(db:3307)/portfolio?parseTime=true",
			redacted: "site:xxxxx@tcp(db:3307)/portfolio?parseTime=true",
		},
		{
			name: "postgres",
			db: config.DB{
				GormEngine: config.EnginePostgres,
				Host:       "pg",
				Port:       5432,
				User:       "site",
				Password:   "pw",
				Name:       "portfolio",
			},
			want:     "host=pg port=5432 user=site password=pw dbname=portfolio " + PostgresDefaultExtras,
			redacted: "host=pg port=5432 user=site password=xxxxx dbname=portfolio " + PostgresDefaultExtras,
		},
		{
			name:     "sqlite file",
			db:       config.DB{GormEngine: config.EngineSQLite, Name: "site.db"},
			want:     "site.db",
			redacted: "site.db",
		},
		{
			name:     "sqlite with options",
			db:       config.DB{GormEngine: config.EngineSQLite, Name: "site.db", Extras: "_pragma=foreign_keys(1)"},
			want:     "site.db?_pragma=foreign_keys(1)",
			redacted: "site.db?_pragma=foreign_keys(1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{DB: tt.db}

			assert.Equal(t, tt.want, Create(cfg))
			assert.Equal(t, tt.redacted, Redacted(cfg))
		})
	}
}
