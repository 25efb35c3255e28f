package stats

import (
	"context"
	"fmt"
	"log/slog"

	domain "github.com/BruksfildServices01/ponto-eletronico/internal/domain/stats"
	"github.com/BruksfildServices01/ponto-eletronico/internal/dto"
)

type GetSummary struct {
	repo  domain.Repository
	cache Cache
}

func NewGetSummary(repo domain.Repository, cache Cache) *GetSummary {
	if cache == nil {
		cache = NoCache{}
	}
	return &GetSummary{
		repo:  repo,
		cache: cache,
	}
}

func (uc *GetSummary) Execute(ctx context.Context) (*dto.StatsDTO, error) {
	// a versão é lida antes do banco; ver Cache
	version, err := uc.cache.Version(ctx)
	cacheOK := err == nil
	if err != nil {
		slog.WarnContext(ctx, "stats cache version read failed", "error", err)
	}

	if cacheOK {
		if cached, ok, err := uc.cache.Get(ctx, version); err != nil {
			slog.WarnContext(ctx, "stats cache read failed", "error", err)
		} else if ok {
			return cached, nil
		}
	}

	snap, err := uc.repo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats snapshot: %w", err)
	}

	out := &dto.StatsDTO{
		Pizza:  make([]dto.PizzaItemDTO, 0, len(snap.PorTipo)),
		Barras: make([]dto.BarraItemDTO, 0, len(snap.PorUsuario)),
		Resumo: dto.ResumoDTO{
			TotalRegistro: snap.TotalPontos,
			TotalUsuarios: snap.TotalUsuarios,
		},
	}

	for _, t := range snap.PorTipo {
		out.Pizza = append(out.Pizza, dto.PizzaItemDTO{Name: t.Type, Value: t.Total})
	}
	for _, u := range snap.PorUsuario {
		out.Barras = append(out.Barras, dto.BarraItemDTO{Nome: u.Name, Registros: u.Total})
	}

	if cacheOK {
		if err := uc.cache.Set(ctx, version, out); err != nil {
			slog.WarnContext(ctx, "stats cache write failed", "error", err)
		}
	}

	return out, nil
}
