package config

import (
	"flag"
	"os"
)

type Config struct {
	Addr          string
	DatabaseDSN   string
	SessionSecret string
	TemplatesGlob string
	StaticDir     string
	DebugFlag     bool
}

const (
	defaultAddr      = ":8080"
	defaultTemplates = "web/templates/*.tmpl"
	defaultStatic    = "./static"
)

// Read разбирает флаги запуска; переменные окружения имеют приоритет
// только если флаг оставлен по умолчанию.
func Read(args []string) (Config, error) {
	fs := flag.NewFlagSet("shoppingmol", flag.ContinueOnError)
	var cfg Config
	fs.StringVar(&cfg.Addr, "addr", defaultAddr, "server address")
	fs.StringVar(&cfg.DatabaseDSN, "db", "", "database connection dsn")
	fs.StringVar(&cfg.TemplatesGlob, "templates", defaultTemplates, "html templates glob")
	fs.StringVar(&cfg.StaticDir, "static", defaultStatic, "static assets directory")
	fs.BoolVar(&cfg.DebugFlag, "debug", false, "enable debug logger level")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if temp := os.Getenv("SERVER_ADDR"); temp != "" && cfg.Addr == defaultAddr {
		cfg.Addr = temp
	}
	if temp := os.Getenv("DB_DSN"); temp != "" && cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = temp
	}
	if temp := os.Getenv("TEMPLATES_GLOB"); temp != "" && cfg.TemplatesGlob == defaultTemplates {
		cfg.TemplatesGlob = temp
	}
	if temp := os.Getenv("STATIC_DIR"); temp != "" && cfg.StaticDir == defaultStatic {
		cfg.StaticDir = temp
	}
	cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	return cfg, nil
}
