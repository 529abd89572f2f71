// Package config loads editor settings for textcore hosts.
//
// Settings are resolved in layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← TEXTCORE_MAX_LENGTH, ...
//	├─────────────────────────────┤
//	│  2. Settings File           │  ← textcore.toml or textcore.yaml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// The file format is chosen by extension: .toml is decoded with go-toml,
// .yaml and .yml with yaml.v3. A missing file is not an error.
//
// # Example
//
//	max_length   = 256
//	blink_rate   = "500ms"
//	wrap_width   = 80
//	backend      = "gap"
//
//	[keys]
//	"Ctrl+S" = "submit"
//	"Ctrl+Y" = "none"
//
// Watch reloads the file whenever it changes on disk.
package config
