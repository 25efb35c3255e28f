package dto

type PizzaItemDTO struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type BarraItemDTO struct {
	Nome      string `json:"nome"`
	Registros int64  `json:"registros"`
}

type ResumoDTO struct {
	TotalRegistro int64 `json:"totalRegistro"`
	TotalUsuarios int64 `json:"totalUsuarios"`
}

type StatsDTO struct {
	Pizza  []PizzaItemDTO `json:"pizza"`
	Barras []BarraItemDTO `json:"barras"`
	Resumo ResumoDTO      `json:"resumo"`
}
