package config

import (
	"fmt"
	"strings"
	"time"

	viper "github.com/spf13/viper"
)

// Config 啟動時讀取一次, 不支援執行期重載
type Config struct {
	Environment         string        `mapstructure:"ENVIRONMENT"`
	ServerPort          string        `mapstructure:"SERVER_PORT"`
	DbName              string        `mapstructure:"POSTGRES_DB"`
	DbHost              string        `mapstructure:"POSTGRES_HOST"`
	DbPort              string        `mapstructure:"POSTGRES_PORT"`
	DbUser              string        `mapstructure:"POSTGRES_USER"`
	DbPas               string        `mapstructure:"POSTGRES_PASSWORD"`
	AuthTokenKey        string        `mapstructure:"AUTH_TOKEN_KEY"`
	AccessTokenDuration time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	RedisAddr           string        `mapstructure:"REDIS_ADDR"`
	KafkaBrokers        string        `mapstructure:"KAFKA_BROKERS"`
	KafkaOrderTopic     string        `mapstructure:"KAFKA_ORDER_TOPIC"`
}

// LoadConfig 從指定目錄讀取 .env, 環境變數可覆蓋
func LoadConfig(path string) (*Config, error) {
	viper.SetConfigFile(fmt.Sprintf("%s/.env", path))
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	cf := &Config{}
	if err := viper.Unmarshal(cf); err != nil {
		return nil, err
	}

	if cf.AccessTokenDuration == 0 {
		cf.AccessTokenDuration = 24 * time.Hour
	}
	return cf, nil
}

// BrokerList 將逗號分隔的 broker 設定拆成 slice, 未設定回傳 nil
func (c *Config) BrokerList() []string {
	if c.KafkaBrokers == "" {
		return nil
	}
	brokers := strings.Split(c.KafkaBrokers, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}
	return brokers
}
