package dto

import (
	"fmt"
	"strconv"
	"strings"
)

// FlexID aceita o id como número JSON ou como string numérica, que é o que
// o <select> do painel envia.
type FlexID uint

func (f *FlexID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = 0
		return nil
	}

	s = strings.TrimSpace(strings.Trim(s, `"`))
	if s == "" {
		*f = 0
		return nil
	}

	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", s)
	}
	*f = FlexID(n)
	return nil
}
