package main

import (
	"log"
	"os"
	"wrequest/internal/config"
	"wrequest/internal/version"
	"wrequest/message"
	"wrequest/request"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	log.Println(version.Full())

	cfg, err := config.MustLoad()
	if err != nil {
		log.Fatalf("Failed to load configuration: %s", err)
	}

	req, err := build(cfg)
	if err != nil {
		log.Fatalf("Failed to build request: %s", err)
	}

	if req.URL() == nil {
		log.Printf("Target %q is not a valid request URI, keeping it verbatim", req.Target())
	}

	log.Printf("Request:\n%s", req)
	for name, value := range req.Params().All() {
		log.Printf("param %s=%s", name, value)
	}
	for name, value := range req.Cookies().All() {
		log.Printf("cookie %s=%s", name, value)
	}
	if body, ok := req.Body(); ok {
		log.Printf("Body:\n%s", body)
	}
}

func build(cfg config.Config) (*request.Request, error) {
	req := request.New(cfg.Method(), cfg.Target()).
		InsertHeader("User-Agent", version.UserAgent())

	for name, value := range cfg.Headers().All() {
		req.InsertHeader(name, value)
	}
	for _, p := range cfg.Params() {
		req.InsertParam(p[0], p[1])
	}
	for _, c := range cfg.Cookies() {
		req.InsertCookie(c[0], c[1])
	}

	if raw := cfg.JSONBody(); raw != "" {
		// Round trip through the codec so the logged body is the canonical
		// indented form.
		value, err := message.New().SetBody([]byte(raw)).JSON()
		if err != nil {
			return nil, err
		}
		if err := req.SetJSON(value); err != nil {
			return nil, err
		}
	}
	return req, nil
}
