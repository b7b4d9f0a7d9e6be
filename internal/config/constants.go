package config

// EnvPrefix is prepended to every environment variable name, e.g. ITEMSIM_PORT.
const EnvPrefix = "ITEMSIM"

// EnvFile is loaded into the environment when present.
const EnvFile = ".env"

// Example values shipped in .env.example that must not reach production.
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)
