package main

import "time"

type Config struct {
	LogLevel                  string        `env:"LOG_LEVEL,required=true"`
	Host                      string        `env:"HOST,default=localhost"`
	Port                      int           `env:"PORT,default=8000"`
	GRPCPort                  int           `env:"GRPC_PORT,default=8001"`
	BadgerFilepath            string        `env:"BADGER_FILEPATH,required=true"`
	JWTSecret                 string        `env:"JWT_SECRET,required=true"`
	AuthTokenDuration         time.Duration `env:"AUTH_TOKEN_DURATION,default=30m"`
	SendTimeout               time.Duration `env:"SEND_TIMEOUT,default=2s"`
	ConnectionBufferSize      int           `env:"CONNECTION_BUFFER_SIZE,default=32"`
	ReaperBufferSize          int           `env:"REAPER_BUFFER_SIZE,default=256"`
	RestartInterval           time.Duration `env:"RESTART_INTERVAL,default=1s"`
	StatsInterval             time.Duration `env:"STATS_INTERVAL,default=15s"`
	InboundRate               float64       `env:"INBOUND_RATE,default=10"`
	InboundBurst              int           `env:"INBOUND_BURST,default=20"`
	CensoredWords             string        `env:"CENSORED_WORDS"`
	CensoredWordsDir          string        `env:"CENSORED_WORDS_DIR"`
	ModerationCharReplacement string        `env:"MODERATION_CHARACTER_REPLACEMENT,default=*"`
	LimitMessages             *int          `env:"LIMIT_MESSAGES"`
	MaxMessageSize            int64         `env:"MAX_MESSAGE_SIZE,default=65536"`
	PingInterval              time.Duration `env:"PING_INTERVAL,default=30s"`
}
