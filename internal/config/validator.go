package config

// Warnings reports settings that are valid but probably unintended
func (c *Config) Warnings() []string {
	var warnings []string

	if c.CatalogSource == CatalogSourcePostgres && c.Environment == EnvProd && c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if c.MaxRounds == 0 {
		warnings = append(warnings, "MAX_ROUNDS is 0 - battles between armies that cannot hurt each other never end")
	}

	if c.Environment == EnvProd && c.LogLevel == "debug" {
		warnings = append(warnings, "LOG_LEVEL is debug in production")
	}

	return warnings
}
