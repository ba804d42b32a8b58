package broker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRedis_PingWithoutClient(t *testing.T) {
	var r *Redis
	require.Error(t, r.Ping(context.Background()))
	r.Close()

	require.Error(t, (&Redis{}).Ping(context.Background()))
}
