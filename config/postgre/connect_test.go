package postgre

import (
	"testing"

	"donation-report-srv/config"
)

func TestBuildDSN(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		got := BuildDSN(config.PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "donations"})
		want := "host=db port=5432 user=u password=p dbname=donations sslmode=disable search_path=public"
		if got != want {
			t.Errorf("BuildDSN() = %q, want %q", got, want)
		}
	})

	t.Run("explicit schema and ssl", func(t *testing.T) {
		got := BuildDSN(config.PostgresConfig{Host: "db", Port: 5433, User: "u", Password: "p", DBName: "d", SSLMode: "require", Schema: "reporting"})
		want := "host=db port=5433 user=u password=p dbname=d sslmode=require search_path=reporting"
		if got != want {
			t.Errorf("BuildDSN() = %q, want %q", got, want)
		}
	})
}
