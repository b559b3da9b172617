package main

import (
	"bytes"
	"net"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/pkg/logger"
)

func TestServe_DevuelveErrorSiListenFalla(t *testing.T) {
	// puerto ocupado
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	done := make(chan error, 1)
	go func() { done <- serve(app, ln.Addr().String(), make(chan os.Signal), logger.Nop()) }()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve no terminó con el puerto ocupado")
	}
}

func TestComponent_AgregaCampo(t *testing.T) {
	var buf bytes.Buffer
	log := component(logger.New(logger.Config{Env: "production", Output: &buf}), "auth")
	log.Info().Msg("x")
	assert.Contains(t, buf.String(), `"component":"auth"`)
}
