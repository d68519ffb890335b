package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil syntax service returns error", func(t *testing.T) {
		ports := &Ports{}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingSyntaxService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Syntax: &mockSyntaxService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestInstructions(t *testing.T) {
	t.Run("lists tools and extensions", func(t *testing.T) {
		got := instructions(&Ports{Syntax: &mockSyntaxService{extensions: []string{"py", "vue"}}})

		assert.Contains(t, got, "check_syntax")
		assert.Contains(t, got, "check_paths")
		assert.Contains(t, got, "Checked extensions: py, vue.")
		assert.Contains(t, got, "snipcheck://extensions")
		assert.NotContains(t, got, "snipcheck://settings")
	})

	t.Run("mentions settings when available", func(t *testing.T) {
		got := instructions(&Ports{Syntax: &mockSyntaxService{}, Settings: &mockSettingsService{}})

		assert.Contains(t, got, "snipcheck://settings")
		assert.NotContains(t, got, "Checked extensions")
	})
}

func TestServer_InitializeSendsInstructions(t *testing.T) {
	ctx := context.Background()
	ports := &Ports{Syntax: &mockSyntaxService{extensions: []string{"scss"}}}
	server, err := NewServer(ports)
	require.NoError(t, err)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	result := session.InitializeResult()
	require.NotNil(t, result)
	assert.Equal(t, "snipcheck", result.ServerInfo.Name)
	assert.Equal(t, Version, result.ServerInfo.Version)
	assert.Equal(t, instructions(ports), result.Instructions)
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil syntax service returns error", func(t *testing.T) {
		ports := &Ports{}
		err := ports.Validate()
		assert.ErrorIs(t, err, ErrMissingSyntaxService)
	})

	t.Run("syntax only is valid", func(t *testing.T) {
		ports := &Ports{Syntax: &mockSyntaxService{}}
		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			Syntax:   &mockSyntaxService{},
			Settings: &mockSettingsService{},
		}
		assert.NoError(t, ports.Validate())
	})
}
