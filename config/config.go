package config

import (
	"os"

	"kitchenops/entity"
	"kitchenops/logger"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

// ReadConfig reads the configuration from the YAML file. Environment
// variables override the database password and JWT secret so neither has to
// live in the file.
func ReadConfig(filePath string) (*entity.Config, error) {
	var config entity.Config

	data, err := os.ReadFile(filePath)
	if err != nil {
		logger.Error("unable to read config file", zap.String("path", filePath), zap.Error(err))
		return nil, err
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		logger.Error("unable to unmarshal YAML", zap.Error(err))
		return nil, err
	}

	if v := os.Getenv("DB_PASSWORD"); v != "" {
		config.PostgresConfig.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.JWTSecretKey = []byte(v)
	}
	if v := os.Getenv("PORT"); v != "" {
		config.ServerConfig.Port = v
	}

	return &config, nil
}
