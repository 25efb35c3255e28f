package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/ponto-eletronico/internal/dto"
)

func TestEncodeDecode(t *testing.T) {
	in := &dto.StatsDTO{
		Pizza:  []dto.PizzaItemDTO{{Name: "ENTRADA", Value: 3}},
		Barras: []dto.BarraItemDTO{{Nome: "Ana", Registros: 3}},
		Resumo: dto.ResumoDTO{TotalRegistro: 3, TotalUsuarios: 1},
	}

	raw, err := encode(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"pizza":[{"name":"ENTRADA","value":3}],"barras":[{"nome":"Ana","registros":3}],"resumo":{"totalRegistro":3,"totalUsuarios":1}}`, string(raw))

	out, err := decode(raw)
	require.NoError(t, err)
	require.Equal(t, in, out)

	_, err = decode([]byte("{"))
	require.Error(t, err)
}

func TestNewClientBadURL(t *testing.T) {
	_, err := NewClient(context.Background(), "not-a-url")
	require.Error(t, err)
}

func TestStatsCacheUnreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	c := NewStatsCache(client, time.Second)
	ctx := context.Background()

	_, err := c.Version(ctx)
	require.Error(t, err)

	_, ok, err := c.Get(ctx, 0)
	require.Error(t, err)
	require.False(t, ok)

	require.Error(t, c.Set(ctx, 0, &dto.StatsDTO{}))
	require.Error(t, c.Invalidate(ctx))
}

func TestSummaryKey(t *testing.T) {
	require.Equal(t, "ponto:stats:summary:0", summaryKey(0))
	require.Equal(t, "ponto:stats:summary:17", summaryKey(17))
}
