package main

import (
	"github.com/datachef-lab/academic360-sub015/internal/bootstrap"
	pkg "github.com/datachef-lab/academic360-sub015/pkg/routes"

	"go.uber.org/fx"
)

func main() {
	bootstrap.Loadenv()

	app := fx.New(
		pkg.EchoModules,
	)

	app.Run()
}
