// Command devtoken emite un JWT firmado con JWT_SECRET para probar la API en local.
//
//	go run ./cmd/devtoken -user u1 -role scoped-operator
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/album-inventory/internal/domain/entity"
	"github.com/jhoicas/album-inventory/pkg/config"
	"github.com/jhoicas/album-inventory/pkg/jwt"
)

func main() {
	userID := flag.String("user", "dev-user", "user_id del token")
	role := flag.String("role", entity.RoleOperator, "full-admin | operator | scoped-operator | scoped-manager | viewer")
	flag.Parse()

	if !entity.ValidRole(*role) {
		fmt.Fprintf(os.Stderr, "rol desconocido: %s\n", *role)
		os.Exit(2)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	token, err := jwt.Generate(cfg.JWT.Secret, *userID, *role, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generar token:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
