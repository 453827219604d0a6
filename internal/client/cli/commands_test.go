package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gratitude/internal/client/auth"
	"github.com/dmitrijs2005/gratitude/internal/client/config"
	"github.com/dmitrijs2005/gratitude/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoginTestApp() *App {
	return &App{
		config: &config.Config{},
		tokens: auth.NewStaticTokenSource(""),
		log:    logging.Discard(),
		reader: bufio.NewReader(strings.NewReader("")),
	}
}

func TestLogin_InstallsTokenIntoRunningSource(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(fd int) ([]byte, error) { return []byte("  jwt-abc123  "), nil }

	a := newLoginTestApp()
	a.login(context.Background())

	token, err := a.tokens.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc123", token)
	assert.Equal(t, "jwt-abc123", a.config.AuthToken)
}

func TestLogin_EmptyInputKeepsExistingToken(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(fd int) ([]byte, error) { return []byte("   "), nil }

	a := newLoginTestApp()
	a.tokens.SetToken("existing")
	a.config.AuthToken = "existing"

	a.login(context.Background())

	token, err := a.tokens.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "existing", token)
	assert.Equal(t, "existing", a.config.AuthToken)
}
