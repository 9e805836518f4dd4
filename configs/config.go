package configs

import "os"

type Config struct {
	MongoURI  string
	DBName    string
	Port      string
	JWTSecret string
}

// LoadConfig reads the environment; godotenv has already overlaid .env by
// the time this runs (see main's init).
func LoadConfig() Config {
	cfg := Config{
		MongoURI:  os.Getenv("MONGO_URI"),
		DBName:    os.Getenv("DB_NAME"),
		Port:      os.Getenv("PORT"),
		JWTSecret: os.Getenv("JWT_SECRET"),
	}
	if cfg.DBName == "" {
		cfg.DBName = "postboard"
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	return cfg
}
