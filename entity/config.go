package entity

type Config struct {
	ServerConfig   ServerConfig   `yaml:"server"`
	PostgresConfig PostgresConfig `yaml:"database"`
	JWTSecretKey   []byte         `yaml:"jwt_secret"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type PostgresConfig struct {
	Host     string `yaml:"host"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	Port     string `yaml:"port"`
	SSLMode  string `yaml:"sslmode"`
}
