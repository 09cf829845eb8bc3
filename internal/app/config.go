package app

import (
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/logger"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/utils"
)

type Config struct {
	JWTSecretKey   string
	AllowedOrigins string
	ServiceName    string
	Environment    string
	Version        string
	// MarksTablePath points at a YAML override of the embedded marks table;
	// empty means the embedded default.
	MarksTablePath string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		JWTSecretKey:   utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log),
		AllowedOrigins: utils.GetEnv("CORS_ALLOWED_ORIGINS", "", log),
		ServiceName:    utils.GetEnv("SERVICE_NAME", "assessment-core", log),
		Environment:    utils.GetEnv("ENVIRONMENT", "development", log),
		Version:        utils.GetEnv("SERVICE_VERSION", "dev", log),
		MarksTablePath: utils.GetEnv("MARKS_TABLE_PATH", "", log),
	}
}
