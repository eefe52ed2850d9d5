package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const digits = "0123456789"

// GenerateNumericID gera um identificador numérico no formato usado pelo Meta
// para campanhas, conjuntos e anúncios (ex.: 23851234567890).
func GenerateNumericID() (string, error) {
	suffix, err := gonanoid.Generate(digits, 10)
	if err != nil {
		return "", err
	}

	return "2385" + suffix, nil
}
