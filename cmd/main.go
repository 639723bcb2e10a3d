package main

import (
	"go.uber.org/fx"

	"voicefront/cmd/bootstrap"
)

//	@title			Voicefront API
//	@version		1.0
//	@description	Voice booking gateway in front of a Checkfront-compatible reservation engine.
//	@BasePath		/

func main() {
	fx.New(bootstrap.Module()).Run()
}
