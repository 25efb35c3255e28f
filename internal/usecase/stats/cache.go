package stats

import (
	"context"

	"github.com/BruksfildServices01/ponto-eletronico/internal/dto"
)

// Cache guarda o resumo do painel por versão. Invalidate avança a versão,
// então um resumo calculado antes de uma mutação só pode ser gravado na
// versão antiga, que ninguém mais lê. Falhas de cache nunca devem derrubar a
// requisição; quem chama só registra o erro.
type Cache interface {
	Version(ctx context.Context) (int64, error)
	Get(ctx context.Context, version int64) (*dto.StatsDTO, bool, error)
	Set(ctx context.Context, version int64, s *dto.StatsDTO) error
	Invalidate(ctx context.Context) error
}

// NoCache é usado quando REDIS_URL não está configurado.
type NoCache struct{}

func (NoCache) Version(context.Context) (int64, error)                  { return 0, nil }
func (NoCache) Get(context.Context, int64) (*dto.StatsDTO, bool, error) { return nil, false, nil }
func (NoCache) Set(context.Context, int64, *dto.StatsDTO) error         { return nil }
func (NoCache) Invalidate(context.Context) error                        { return nil }

var _ Cache = NoCache{}
