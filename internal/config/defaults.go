package config

const (
	defaultDataFile  = "data/menu_db.json"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"

	defaultConfigPath = "~/.config/menureorg/config.toml"
	projectConfigFile = "menureorg.toml"
)

// Environment variables that override file settings.
const (
	EnvDataFile  = "MENUREORG_DATA_FILE"
	EnvMovesFile = "MENUREORG_MOVES_FILE"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataFile: defaultDataFile,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
