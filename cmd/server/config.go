package main

import "time"

type Config struct {
	Domain            string        `env:"DOMAIN,required=true"`
	Host              string        `env:"HOST,default=localhost"`
	Port              int           `env:"PORT,default=8080"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath     string        `env:"BLUGE_FILEPATH,required=true"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO"`
	FederationTimeout time.Duration `env:"FEDERATION_TIMEOUT,default=3s"`
	Domains           string        `env:"DOMAINS"`
	SearchLimit       int           `env:"SEARCH_LIMIT,default=50"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}
