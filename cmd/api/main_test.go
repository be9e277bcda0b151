package main

import (
	"bytes"
	"context"
	"net"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Subcomandos(t *testing.T) {
	root := NewRootCommand()

	for _, path := range [][]string{{"serve"}, {"migrate", "up"}, {"migrate", "status"}, {"usuario", "criar"}} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestUsuarioCriar_FlagsObligatorios(t *testing.T) {
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"usuario", "criar", "--email", "maria@example.com"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nome")
	assert.Contains(t, err.Error(), "senha")
}

func TestWaitForShutdown_ErrorDeListenSePropaga(t *testing.T) {
	// Puerto ya ocupado: Listen falla al instante.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	errCh := make(chan error, 1)
	go func() { errCh <- app.Listen(ln.Addr().String()) }()

	err = waitForShutdown(context.Background(), errCh, make(chan os.Signal, 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "address already in use")
}

func TestWaitForShutdown_SenalYContexto(t *testing.T) {
	t.Run("señal", func(t *testing.T) {
		quit := make(chan os.Signal, 1)
		quit <- syscall.SIGTERM
		assert.NoError(t, waitForShutdown(context.Background(), make(chan error), quit))
	})

	t.Run("contexto cancelado", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- waitForShutdown(ctx, make(chan error), make(chan os.Signal)) }()
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("waitForShutdown no terminó tras cancelar el contexto")
		}
	})
}
