package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers the configuration flags on fs and returns the config
// they fill once fs is parsed. Flags left unset stay zero and therefore do
// not override lower layers.
//
// Flags:
//
//	-s, --server            server address, [scheme://]host:port
//	    --request-timeout   timeout of a single HTTP request
//	-d, --db                SQLite database file
//	    --token-file        session token file
//	-c, --config            JSON/YAML/TOML config file
//	    --env-file          .env file to load
//	    --op-timeout        timeout of a single sync operation
//	    --debounce          connectivity debounce window
//	    --sync-interval     background replay interval
//	    --log-level         zerolog level
//	    --log-file          log file path
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.Adapter.HTTPAddress, "server", "s", "", "Адрес сервера [scheme://]host:port")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Таймаут HTTP-запроса (например 15s)")
	fs.StringVarP(&cfg.Storage.DB.DSN, "db", "d", "", "Файл базы SQLite")
	fs.StringVar(&cfg.Session.TokenFile, "token-file", "", "Файл с токеном сессии")
	fs.StringVarP(&cfg.ConfigFilePath, "config", "c", "", "Файл конфигурации (.json, .yaml, .yml, .toml)")
	fs.StringVar(&cfg.DotEnvPath, "env-file", "", "Env-файл, загружаемый до чтения окружения")
	fs.DurationVar(&cfg.Sync.OperationTimeout, "op-timeout", 0, "Таймаут одной операции синхронизации (например 30s)")
	fs.DurationVar(&cfg.Sync.DebounceWindow, "debounce", 0, "Окно подавления повторных запусков при смене связи (например 5s)")
	fs.DurationVar(&cfg.Sync.SyncInterval, "sync-interval", 0, "Интервал фоновой отправки очереди (например 5m)")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Уровень логирования (debug, info, warn, error)")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Путь к файлу лога")

	return cfg
}
