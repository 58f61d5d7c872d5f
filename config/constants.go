package config

// CLI/config verbosity values between 1 (error) and 5 (trace)
const (
	ErrorVerbose = iota + 1
	WarnVerbose
	InfoVerbose
	DebugVerbose
	TraceVerbose
)

// DefaultVerbose keeps diagnostics quiet unless something goes wrong
const DefaultVerbose = WarnVerbose

// Environment variable prefix for config overrides
const EnvPrefix = "NETNODE_"
