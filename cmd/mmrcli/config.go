package main

// Config is the CLI's own plain-struct settings bag, populated from cobra
// persistent flags rather than reaching for a config-file library.
type Config struct {
	DBPath string
	Algo   string
}

var cfg Config
