package main

import (
	"context"
	"strings"

	"github.com/raphi011/shakti/internal/output"
	"github.com/raphi011/shakti/internal/registry"
)

func (a *app) hello(ctx context.Context, req registry.Request) error {
	name := strings.Join(req.Args, " ")
	if name == "" {
		name = "World"
	}
	output.FromContext(ctx).Printf("Hello, %s!\n", name)
	return nil
}

func (a *app) bye(ctx context.Context, _ registry.Request) error {
	output.FromContext(ctx).Println("Goodbye!")
	return nil
}
