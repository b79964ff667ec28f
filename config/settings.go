package config

// SettingsConfig contains persisted overlay settings
type SettingsConfig struct {
	AppName string
	ItemKey string
}

// Settings is the global persistence configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName: "tilebound",
		ItemKey: "overlay",
	}
}
