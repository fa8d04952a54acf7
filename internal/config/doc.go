// Package config handles YAML configuration loading for the playmoney CLI.
//
// Configuration files support ${VAR} syntax for environment variable
// interpolation. A .env file next to the config file, or in the working
// directory, is loaded first and never overrides variables that are already
// set. PLAYMONEY_BASE_URL, PLAYMONEY_API_KEY and PLAYMONEY_LOG_LEVEL override
// the file.
package config
