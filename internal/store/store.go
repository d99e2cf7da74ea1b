// Package store mediates between the HTTP layer and the database: it owns
// field normalization, fail-fast validation, the per-resource list cache and
// the mutation-outcome notifications.
package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	MEDICAMENTOS_CACHE_KEY = "medicamentos:list"
	FORNECEDORES_CACHE_KEY = "fornecedores:list"
	VENDAS_CACHE_KEY       = "vendas:list"
	PROMOCOES_CACHE_KEY    = "promocoes:list"
	ESTOQUE_CACHE_KEY      = "estoque-filiais:list"
	CACHE_TTL_SHORT        = 5 * time.Minute
	CACHE_TTL_MEDIUM       = 30 * time.Minute
)

const (
	tituloSucesso = "Sucesso"
	tituloErro    = "Erro"
)

// trimPtr normalizes an optional string: trimmed value, or nil when the
// result is empty. Blank optionals are stored as NULL, never as "".
func trimPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// parseMoney coerces a required money field. Blank, unparseable and negative
// inputs all fail before any database call.
func parseMoney(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%s deve ser um valor válido maior ou igual a zero", field)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "", fmt.Errorf("%s deve ser um valor válido maior ou igual a zero", field)
	}
	if d.IsNegative() {
		return "", fmt.Errorf("%s deve ser um valor válido maior ou igual a zero", field)
	}
	return d.StringFixed(2), nil
}

// parseMoneyDefault is parseMoney for fields that fall back to a default
// when left blank (desconto, estoque values).
func parseMoneyDefault(field, s, def string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	return parseMoney(field, s)
}

// moneyOrZero applies the update-path coercion: a blank value resets the
// column to zero rather than keeping the old one.
func moneyOrZero(field, s string) (string, error) {
	return parseMoneyDefault(field, s, "0.00")
}
