package config

// PromptOptions holds the identity shown in the interactive prompt
// (user@host:path$). No display escape sequences are configured here.
type PromptOptions struct {
	User string `env:"USER"` // prompt user name
	Host string `env:"HOST"` // prompt host name
}
