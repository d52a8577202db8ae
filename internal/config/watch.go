package config

import (
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Watch reloads the configuration whenever the file backing v is written
// and hands the result to onChange. It does nothing when v was not loaded
// from a file.
func Watch(v *viper.Viper, onChange func(cfg *Config, err error)) bool {
	if v.ConfigFileUsed() == "" {
		return false
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		onChange(LoadFrom(v))
	})
	v.WatchConfig()
	return true
}
