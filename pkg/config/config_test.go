package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	// Set up test environment variables
	os.Setenv("botToken", "test-token")
	os.Setenv("prefix", "?")
	os.Setenv("ownerId", "1234567890")
	os.Setenv("enviroment", "test")
	defer func() {
		os.Unsetenv("botToken")
		os.Unsetenv("prefix")
		os.Unsetenv("ownerId")
		os.Unsetenv("enviroment")
	}()

	// Reset global config
	resetForTesting()

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if config.BotToken != "test-token" {
		t.Errorf("BotToken = %v, want %v", config.BotToken, "test-token")
	}

	if config.Prefix != "?" {
		t.Errorf("Prefix = %v, want %v", config.Prefix, "?")
	}

	if config.OwnerID != "1234567890" {
		t.Errorf("OwnerID = %v, want %v", config.OwnerID, "1234567890")
	}

	if config.Environment != "test" {
		t.Errorf("Environment = %v, want %v", config.Environment, "test")
	}
}

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_VAR", "test-value")
	defer os.Unsetenv("TEST_VAR")

	if got := getEnv("TEST_VAR", "default"); got != "test-value" {
		t.Errorf("getEnv() = %v, want %v", got, "test-value")
	}

	if got := getEnv("NON_EXISTENT_VAR", "default"); got != "default" {
		t.Errorf("getEnv() = %v, want %v", got, "default")
	}
}

func TestIsProd(t *testing.T) {
	resetForTesting()
	os.Setenv("enviroment", "prod")
	config, _ := Load()

	if !config.IsProd() {
		t.Error("IsProd() should return true when environment is 'prod'")
	}

	resetForTesting()
	os.Setenv("enviroment", "dev")
	config, _ = Load()

	if config.IsProd() {
		t.Error("IsProd() should return false when environment is not 'prod'")
	}

	os.Unsetenv("enviroment")
}

func TestGet(t *testing.T) {
	resetForTesting()

	// Get should create a new config if none exists
	config := Get()
	if config == nil {
		t.Fatal("Get() returned nil")
	}

	// Get should return the same config on subsequent calls
	config2 := Get()
	if config != config2 {
		t.Error("Get() should return the same config on subsequent calls")
	}
}

func TestDefaultValues(t *testing.T) {
	// Clear all environment variables
	os.Unsetenv("botToken")
	os.Unsetenv("prefix")
	os.Unsetenv("ownerId")
	os.Unsetenv("adminFile")
	os.Unsetenv("PORT")
	os.Unsetenv("enviroment")

	resetForTesting()
	config, _ := Load()

	// Check default values
	if config.Prefix != "!" {
		t.Errorf("Prefix default = %v, want %v", config.Prefix, "!")
	}

	if config.AdminFile != "admins.json" {
		t.Errorf("AdminFile default = %v, want %v", config.AdminFile, "admins.json")
	}

	if config.Port != "3000" {
		t.Errorf("Port default = %v, want %v", config.Port, "3000")
	}

	if config.Environment != "dev" {
		t.Errorf("Environment default = %v, want %v", config.Environment, "dev")
	}

	if config.OwnerID != "" {
		t.Errorf("OwnerID default = %v, want empty", config.OwnerID)
	}
}
