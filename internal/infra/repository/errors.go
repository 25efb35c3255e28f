package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/ponto-eletronico/internal/domain"
)

// SQLSTATE do postgres
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translate converte erros do gorm/driver nos sentinelas de domain,
// preservando o erro original na cadeia.
func translate(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", domain.ErrDuplicateKey, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %w", domain.ErrForeignKey, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %w", domain.ErrDuplicateKey, err)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %w", domain.ErrForeignKey, err)
		}
	}

	// sqlite não exporta erros tipados pelo gorm em todas as versões
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %w", domain.ErrDuplicateKey, err)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%w: %w", domain.ErrForeignKey, err)
	}

	return err
}
