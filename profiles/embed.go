package profiles

import (
	"embed"
)

// ConfigFiles embeds all YAML scoring-profile definitions from the config
// subdirectory
//
//go:embed all:config
var ConfigFiles embed.FS
