package stats

import "context"

type TipoCount struct {
	Type  string
	Total int64
}

type UserCount struct {
	UserID uint
	Name   string
	Total  int64
}

// Snapshot reúne as contagens do painel lidas de uma mesma visão do banco,
// então Σ PorTipo = Σ PorUsuario = TotalPontos.
type Snapshot struct {
	PorTipo []TipoCount
	// PorUsuario inclui usuários sem nenhum registro.
	PorUsuario    []UserCount
	TotalPontos   int64
	TotalUsuarios int64
}

type Repository interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}
