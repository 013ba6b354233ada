package transport

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig é a configuração do servidor local do emulador.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LoadServerConfig carrega a configuração YAML do emulador. Um arquivo
// ausente não é erro: o servidor sobe com os defaults.
func LoadServerConfig(path string) (ServerConfig, error) {
	cfg := ServerConfig{Addr: ":8080"}

	if path == "" {
		path = os.Getenv("EMULATOR_CONFIG_PATH")
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("transport: read config failed: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("transport: parse config failed: %w", err)
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	return cfg, nil
}
