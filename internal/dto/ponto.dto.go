package dto

import (
	"time"

	"github.com/BruksfildServices01/ponto-eletronico/internal/models"
)

type PontoUserDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type PontoDTO struct {
	ID        uint         `json:"id"`
	UserID    uint         `json:"userId"`
	Type      string       `json:"type"`
	Timestamp time.Time    `json:"timestamp"`
	User      PontoUserDTO `json:"user"`
}

func FromPonto(p models.Ponto) PontoDTO {
	return PontoDTO{
		ID:        p.ID,
		UserID:    p.UserID,
		Type:      p.Type,
		Timestamp: p.Timestamp,
		User: PontoUserDTO{
			ID:   p.User.ID,
			Name: p.User.Name,
		},
	}
}

func FromPontos(pontos []models.Ponto) []PontoDTO {
	out := make([]PontoDTO, 0, len(pontos))
	for _, p := range pontos {
		out = append(out, FromPonto(p))
	}
	return out
}
