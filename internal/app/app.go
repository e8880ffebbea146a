package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"grocery-cart/internal/bag"
	"grocery-cart/internal/shopping_cart"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	CfgCart         ConfigCart    `yaml:"cart"`
	CfgKafka        ConfigKafka   `yaml:"kafka"`
	ServerPort      string        `yaml:"srv_port"`
	AnalyticsPort   string        `yaml:"analytics_port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type ConfigCart struct {
	Capacity     int     `yaml:"capacity"`
	WeightBudget float64 `yaml:"weight_budget"`
}

type ConfigKafka struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
	GroupID string   `yaml:"group_id"`
}

// Enabled брокеры указаны в конфиге
func (c ConfigKafka) Enabled() bool {
	return len(c.Brokers) > 0
}

func NewConfig(configPath string) (*Config, error) {
	cfg, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	return ParseConfig(cfg)
}

// ParseConfig разбирает yaml, подставляет значения по умолчанию и проверяет их
func ParseConfig(data []byte) (*Config, error) {
	c := Config{
		CfgCart: ConfigCart{
			Capacity:     bag.DefaultCapacity,
			WeightBudget: shopping_cart.DefaultWeightBudget,
		},
		CfgKafka: ConfigKafka{
			Topic:   "cart-events",
			GroupID: "cart-analytics",
		},
		ServerPort:      ":8080",
		AnalyticsPort:   ":8082",
		ShutdownTimeout: 10 * time.Second,
	}

	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}

	if c.CfgCart.Capacity <= 0 {
		return nil, fmt.Errorf("%w: cart.capacity must be positive, got %d", ErrInvalidConfig, c.CfgCart.Capacity)
	}
	if c.CfgCart.WeightBudget <= 0 {
		return nil, fmt.Errorf("%w: cart.weight_budget must be positive, got %v", ErrInvalidConfig, c.CfgCart.WeightBudget)
	}

	return &c, nil
}
