package services

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError, // Reduce noise in tests
	}))
}

func setupTestRedis(t *testing.T) (*RedisService, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	redisService, err := NewRedisService("redis://"+mr.Addr(), testLogger())
	if err != nil {
		mr.Close()
		t.Fatalf("Failed to create redis service: %v", err)
	}

	t.Cleanup(func() {
		_ = redisService.Close()
		mr.Close()
	})
	return redisService, mr
}

func TestRedisService_Basic(t *testing.T) {
	redisService, mr := setupTestRedis(t)
	ctx := context.Background()

	if err := redisService.Ping(ctx); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}

	key := "test:key:123"
	value := "test value"

	if err := redisService.Set(ctx, key, value, time.Minute); err != nil {
		t.Fatalf("Failed to set key: %v", err)
	}

	retrievedValue, err := redisService.Get(ctx, key)
	if err != nil {
		t.Fatalf("Failed to get key: %v", err)
	}
	if retrievedValue != value {
		t.Errorf("Expected '%s', got '%s'", value, retrievedValue)
	}

	if !mr.Exists(key) {
		t.Error("Key should exist")
	}

	if ttl := mr.TTL(key); ttl != time.Minute {
		t.Errorf("Expected TTL of 1m, got %v", ttl)
	}

	mr.Del(key)

	retrievedValue, err = redisService.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get on non-existent key should not return error: %v", err)
	}
	if retrievedValue != "" {
		t.Errorf("Expected empty string for non-existent key, got '%s'", retrievedValue)
	}
}

func TestRedisService_Expiry(t *testing.T) {
	redisService, mr := setupTestRedis(t)
	ctx := context.Background()

	if err := redisService.Set(ctx, "short", "lived", time.Second); err != nil {
		t.Fatalf("Failed to set key: %v", err)
	}
	mr.FastForward(2 * time.Second)

	value, err := redisService.Get(ctx, "short")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "" {
		t.Errorf("Expected key to expire, got %q", value)
	}
}

func TestRedisService_ErrorsWhenServerGone(t *testing.T) {
	redisService, mr := setupTestRedis(t)
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := redisService.Ping(ctx); err == nil {
		t.Error("Expected ping to fail once the server is closed")
	}
	if _, err := redisService.Get(ctx, "any"); err == nil {
		t.Error("Expected get to fail once the server is closed")
	}
}

func TestRedisService_WaitForConnection(t *testing.T) {
	t.Run("successful connection", func(t *testing.T) {
		redisService, _ := setupTestRedis(t)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisService.WaitForConnection(ctx); err != nil {
			t.Errorf("Expected connection, got %v", err)
		}
	})

	t.Run("connection timeout", func(t *testing.T) {
		// Use a non-existent Redis instance
		redisService, err := NewRedisService("localhost:1", testLogger())
		if err != nil {
			t.Fatalf("Failed to create redis service: %v", err)
		}
		defer func() {
			_ = redisService.Close()
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		if err := redisService.WaitForConnection(ctx); err == nil {
			t.Error("Expected timeout error, got nil")
		}
	})

	t.Run("retries exhausted", func(t *testing.T) {
		redisService, err := NewRedisService("localhost:1", testLogger())
		if err != nil {
			t.Fatalf("Failed to create redis service: %v", err)
		}
		defer func() {
			_ = redisService.Close()
		}()
		redisService.maxRetries = 2
		redisService.retryDelay = time.Millisecond

		err = redisService.WaitForConnection(context.Background())
		if err == nil {
			t.Fatal("Expected error after retries")
		}
	})
}

func TestNewRedisService_BadURL(t *testing.T) {
	if _, err := NewRedisService("redis://localhost:6379/notanumber", testLogger()); err == nil {
		t.Error("Expected error for malformed URL")
	}
}
