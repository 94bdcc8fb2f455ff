// Package config loads typed configuration from the environment.
//
// Structs declare their variables with caarlos0/env tags; dotenv files are
// read with joho/godotenv before parsing, so local development can keep
// settings in .env while deployments set real environment variables.
package config
