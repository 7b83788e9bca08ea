package config

import (
	"wrequest/header"
	"wrequest/types"
)

type Config interface {
	Method() types.Method
	Target() string

	Headers() *header.Map
	Params() [][2]string
	Cookies() [][2]string

	JSONBody() string
}

func MustLoad() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) Method() types.Method { return c.method }
func (c *config) Target() string       { return c.target }
func (c *config) Headers() *header.Map { return c.headers }
func (c *config) Params() [][2]string  { return c.params }
func (c *config) Cookies() [][2]string { return c.cookies }
func (c *config) JSONBody() string     { return c.jsonBody }
