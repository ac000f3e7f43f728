package testing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type PostgresContainer struct {
	testcontainers.Container
	URI string
}

// SetupPostgres starts a throwaway PostgreSQL server, terminated when the test ends.
func SetupPostgres(t *testing.T) *PostgresContainer {
	t.Helper()

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		Env: map[string]string{
			"POSTGRES_DB":       "lutece",
			"POSTGRES_USER":     "lutece",
			"POSTGRES_PASSWORD": "lutece",
		},
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	uri := fmt.Sprintf("postgres://lutece:lutece@%s:%s/lutece?sslmode=disable", host, port.Port())

	postgres := &PostgresContainer{
		Container: container,
		URI:       uri,
	}

	// The server restarts once after init, give it a moment
	time.Sleep(time.Second)

	return postgres
}
