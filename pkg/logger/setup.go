package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Configure inicializa o logger global baseando-se na configuração do processo.
func Configure(level string) zerolog.Logger {
	// Define o nível de log (default: info)
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)

	// Saída JSON estruturada (CloudWatch)
	return zerolog.New(os.Stdout).
		With().
		Timestamp().
		Logger()
}
