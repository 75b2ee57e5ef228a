package main

import (
	"embed"

	"github.com/egoavara/spin-hub/cmd"
	"github.com/egoavara/spin-hub/internal/i18n"
)

//go:embed locales/*.json
var localeFS embed.FS

func main() {
	// The configured locale is applied once the config is loaded
	_ = i18n.Init(localeFS, "en-US")

	cmd.Execute()
}
