package config

import (
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Viper is a Config implementation backed by github.com/spf13/viper.
//
// Every key can be overridden from the environment by upper-casing it and
// replacing dots with underscores, so "otp.daily_limit" reads OTP_DAILY_LIMIT
// when that variable is set.
type Viper struct {
	v *viper.Viper
}

// NewViper loads configuration from the given file path and returns a
// Viper-backed Config. The config file type is inferred from the extension,
// and the file is watched for live reloads.
func NewViper(pathFile string) (*Viper, error) {
	v := viper.New()

	filename := path.Base(pathFile)
	configName := path.Base(filename[:len(filename)-len(path.Ext(filename))])

	v.AddConfigPath(path.Dir(pathFile))
	v.SetConfigName(configName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	v.OnConfigChange(func(_ fsnotify.Event) {
		if err := v.ReadInConfig(); err != nil {
			slog.Error("config reload failed", "path", pathFile, "err", err)
			return
		}
		slog.Info("config reloaded", "path", pathFile)
	})
	v.WatchConfig()

	return &Viper{v: v}, nil
}

// GetBool returns the value for key as bool.
func (vc *Viper) GetBool(key string) bool {
	return vc.v.GetBool(key)
}

// GetString returns the value for key as string.
func (vc *Viper) GetString(key string) string {
	return vc.v.GetString(key)
}

// GetInt returns the value for key as int.
func (vc *Viper) GetInt(key string) int {
	return vc.v.GetInt(key)
}

// GetInt32 returns the value for key as int32.
func (vc *Viper) GetInt32(key string) int32 {
	return vc.v.GetInt32(key)
}

// GetInt64 returns the value for key as int64.
func (vc *Viper) GetInt64(key string) int64 {
	return vc.v.GetInt64(key)
}

// GetFloat64 returns the value for key as float64.
func (vc *Viper) GetFloat64(key string) float64 {
	return vc.v.GetFloat64(key)
}

// GetSecond returns the value for key as seconds.
func (vc *Viper) GetSecond(key string) time.Duration {
	return time.Duration(vc.v.GetInt64(key)) * time.Second
}

// GetMinute returns the value for key as minutes.
func (vc *Viper) GetMinute(key string) time.Duration {
	return time.Duration(vc.v.GetInt64(key)) * time.Minute
}

// GetHour returns the value for key as hours.
func (vc *Viper) GetHour(key string) time.Duration {
	return time.Duration(vc.v.GetInt64(key)) * time.Hour
}

// GetArray returns the value for key split by commas.
func (vc *Viper) GetArray(key string) []string {
	raw := strings.TrimSpace(vc.v.GetString(key))
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

// Close implements io.Closer for interface compatibility.
func (vc *Viper) Close() error {
	return nil
}
