package clients

import (
	"strings"

	"github.com/juju/errors"
)

const taxIDDigits = 11

// NormalizeTaxID saca todo lo que no sea dígito, exige 11 dígitos
// y devuelve la forma canónica 3-3-3-2: 123.456.789-01.
func NormalizeTaxID(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	d := b.String()
	if len(d) != taxIDDigits {
		return "", errors.NotValidf("tax id %q (must contain %d digits)", raw, taxIDDigits)
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11], nil
}
