// File: cmd/cacheprobe/main.go
//
// cacheprobe reports on the health of the Redis cache and the HTTP API:
// server info, per-database keyspace stats, round-trip latency and the
// /health endpoint status. Meant for operators checking a deployment.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"backmoney/config"

	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	ok := probeRedis(ctx)
	if !probeHealth(ctx) {
		ok = false
	}
	if !ok {
		os.Exit(1)
	}
}

func probeRedis(ctx context.Context) bool {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	defer client.Close()

	fmt.Printf("Redis %s (cache db %d)\n", config.AppConfig.RedisAddr, config.AppConfig.RedisCacheDB)

	start := time.Now()
	if err := client.Ping(ctx).Err(); err != nil {
		fmt.Printf("  ping: FAILED (%v)\n", err)
		return false
	}
	fmt.Printf("  ping: ok (%s)\n", time.Since(start).Round(time.Microsecond))

	if info, err := client.Info(ctx, "server").Result(); err == nil {
		for _, line := range strings.Split(info, "\n") {
			line = strings.TrimSpace(line)
			if strings.HasPrefix(line, "redis_version:") || strings.HasPrefix(line, "uptime_in_seconds:") {
				fmt.Printf("  %s\n", line)
			}
		}
	}

	if info, err := client.Info(ctx, "memory").Result(); err == nil {
		for _, line := range strings.Split(info, "\n") {
			line = strings.TrimSpace(line)
			if strings.HasPrefix(line, "used_memory_human:") {
				fmt.Printf("  %s\n", line)
			}
		}
	}

	// Keyspace stats per logical database.
	if info, err := client.Info(ctx, "keyspace").Result(); err == nil {
		fmt.Println("  keyspace:")
		any := false
		for _, line := range strings.Split(info, "\n") {
			line = strings.TrimSpace(line)
			if strings.HasPrefix(line, "db") {
				fmt.Printf("    %s\n", line)
				any = true
			}
		}
		if !any {
			fmt.Println("    (empty)")
		}
	}

	// Hit/miss ratio gives a quick read on cache effectiveness.
	if info, err := client.Info(ctx, "stats").Result(); err == nil {
		var hits, misses string
		for _, line := range strings.Split(info, "\n") {
			line = strings.TrimSpace(line)
			if v, ok := strings.CutPrefix(line, "keyspace_hits:"); ok {
				hits = v
			}
			if v, ok := strings.CutPrefix(line, "keyspace_misses:"); ok {
				misses = v
			}
		}
		if hits != "" {
			fmt.Printf("  keyspace hits/misses: %s/%s\n", hits, misses)
		}
	}

	return true
}

func probeHealth(ctx context.Context) bool {
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	url := "http://localhost:" + port + "/health"
	fmt.Printf("API %s\n", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		fmt.Printf("  health: FAILED (%v)\n", err)
		return false
	}

	start := time.Now()
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Printf("  health: FAILED (%v)\n", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("  health: status %d\n", resp.StatusCode)
		return false
	}
	fmt.Printf("  health: ok (%s)\n", time.Since(start).Round(time.Millisecond))
	return true
}
