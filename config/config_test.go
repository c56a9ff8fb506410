package config

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors t.Chdir (Go 1.24+), unavailable on this toolchain.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}

func TestLoad(t *testing.T) {
	t.Run("missing uri fails", func(t *testing.T) {
		t.Setenv("MONGODB_URI", "")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
		os.Unsetenv("PORT")
		os.Unsetenv("MONGODB_DB")
		os.Unsetenv("JWT_SECRET")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "5000", cfg.Port)
		assert.Equal(t, "chatstore", cfg.DBName)
		assert.Empty(t, cfg.JWTSecret)
	})

	t.Run("reads values from .env", func(t *testing.T) {
		chdir(t, t.TempDir())
		require.NoError(t, os.WriteFile(".env", []byte("PORT=7070\n"), 0o600))
		t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
		t.Setenv("PORT", "ignored") // registers restore; godotenv needs it unset
		os.Unsetenv("PORT")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "7070", cfg.Port)
	})

	t.Run("malformed .env does not fail startup", func(t *testing.T) {
		chdir(t, t.TempDir())
		require.NoError(t, os.WriteFile(".env", []byte("NOT A VALID LINE\n"), 0o600))
		t.Setenv("MONGODB_URI", "mongodb://localhost:27017")

		var buf bytes.Buffer
		log.SetOutput(&buf)
		t.Cleanup(func() { log.SetOutput(os.Stderr) })

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
		assert.Contains(t, buf.String(), "could not load .env")
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("MONGODB_URI", "mongodb://db.example.com:27017")
		t.Setenv("PORT", "8080")
		t.Setenv("MONGODB_DB", "chats_prod")
		t.Setenv("JWT_SECRET", "s3cret")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "mongodb://db.example.com:27017", cfg.MongoURI)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "chats_prod", cfg.DBName)
		assert.Equal(t, "s3cret", cfg.JWTSecret)
	})
}
