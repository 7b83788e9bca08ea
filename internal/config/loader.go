package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"wrequest/header"
	"wrequest/types"

	"github.com/joho/godotenv"
)

var (
	ErrInvalidMethod = fmt.Errorf("invalid METHOD value")
	ErrInvalidHeader = fmt.Errorf("invalid HEADERS value")
)

type config struct {
	method types.Method
	target string

	headers *header.Map
	params  [][2]string
	cookies [][2]string

	jsonBody string
}

func parse() (*config, error) {
	method, err := parseMethod()
	if err != nil {
		return nil, err
	}

	target := getenv("TARGET", "http://localhost/")

	headers, err := parseHeaders()
	if err != nil {
		return nil, err
	}

	return &config{
		method:   method,
		target:   target,
		headers:  headers,
		params:   parsePairs("PARAMS"),
		cookies:  parsePairs("COOKIES"),
		jsonBody: getenv("JSON_BODY", ""),
	}, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

func parseMethod() (types.Method, error) {
	m, err := types.ParseMethod(getenv("METHOD", "GET"))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidMethod, err)
	}
	return m, nil
}

// parseHeaders reads HEADERS as newline-separated "Name: value" lines, so
// values may contain commas. In a .env file use HEADERS="A: 1\nB: 2".
func parseHeaders() (*header.Map, error) {
	raw := strings.TrimSpace(getenv("HEADERS", ""))
	if raw == "" {
		return header.NewMap(), nil
	}

	headers, err := header.ParseBlock([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}
	return headers, nil
}

func parsePairs(key string) [][2]string {
	raw := getenv(key, "")
	if raw == "" {
		return nil
	}

	var pairs [][2]string
	for _, item := range strings.Split(raw, ",") {
		k, v, ok := strings.Cut(item, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			log.Printf("Ignoring malformed %s entry %q", key, item)
			continue
		}
		pairs = append(pairs, [2]string{k, strings.TrimSpace(v)})
	}
	return pairs
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
