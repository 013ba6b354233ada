// O emulator expõe os três handlers num servidor HTTP local para
// desenvolvimento: POST /register, /login e /validate com o mesmo envelope
// das funções Lambda. Aponte TABLE_NAME para uma tabela local
// (dynamodb-local) e defina JWT_SECRET.
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/raywall/tenant-auth-service/pkg/bootstrap"
	"github.com/raywall/tenant-auth-service/pkg/transport"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// run contém a lógica principal testável
func run(ctx context.Context) error {
	cfg, err := transport.LoadServerConfig("")
	if err != nil {
		return err
	}

	h, err := bootstrap.New(ctx)
	if err != nil {
		return err
	}

	log.Printf("emulator listening on %s", cfg.Addr)
	return http.ListenAndServe(cfg.Addr, transport.NewRouter(h))
}
