package types

type contextKey string

// ClientAppKey is the context key the root command uses to hand the
// initialized app to subcommands.
const ClientAppKey contextKey = "clientApp"
