package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("MYSQL_DB", "")
	t.Setenv("IDEMPOTENCY_TTL_SECONDS", "")
	c := Load()
	if c.AppPort != "8080" {
		t.Fatalf("AppPort = %q", c.AppPort)
	}
	if c.MySQLDB != "loanflow" {
		t.Fatalf("MySQLDB = %q", c.MySQLDB)
	}
	if c.IdempTTLSecs != 300 {
		t.Fatalf("IdempTTLSecs = %d", c.IdempTTLSecs)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9999")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("JWT_TTL_HOURS", "2")
	c := Load()
	if c.AppPort != "9999" {
		t.Fatalf("AppPort = %q", c.AppPort)
	}
	if c.RedisDB != 3 {
		t.Fatalf("RedisDB = %d", c.RedisDB)
	}
	if c.JWTTTL.Hours() != 2 {
		t.Fatalf("JWTTTL = %v", c.JWTTTL)
	}
}

func TestValidate_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("MYSQL_PORT", "")
	c := Load()
	if err := c.Validate(); err == nil || !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Fatalf("Validate err = %v, want missing JWT_SECRET", err)
	}
	c.JWTSecret = "s3cret"
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate err = %v", err)
	}
}

func TestValidate_BadPort(t *testing.T) {
	t.Setenv("MYSQL_PORT", "not-a-port")
	c := Load()
	c.JWTSecret = "x"
	if err := c.Validate(); err == nil {
		t.Fatal("want error for invalid MYSQL_PORT")
	}
}

func TestMySQLDSN_Shape(t *testing.T) {
	c := Load()
	dsn := c.MySQLDSN()
	for _, want := range []string{"tcp(", "parseTime=true", "multiStatements=true", c.MySQLDB} {
		if !strings.Contains(dsn, want) {
			t.Fatalf("dsn %q missing %q", dsn, want)
		}
	}
}
