package utils

import (
	"bytes"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DecodeBody lê o corpo JSON da requisição em um valor do tipo T.
// Corpo vazio, malformado ou que não seja um objeto é tratado como ausente:
// retorna o valor zero de T e false, nunca um erro.
// Campos com tipo diferente do esperado são convertidos quando possível
// (123 vira "123") e, se não der, ficam com o valor zero sem afetar os demais.
func DecodeBody[T any](r *http.Request) (T, bool) {
	var zero T

	if r == nil || r.Body == nil {
		return zero, false
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return zero, false
	}

	var out T
	if err := json.Unmarshal(raw, &out); err == nil {
		return out, true
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return zero, false
	}

	return decodeFields[T](fields), true
}

// decodeFields decodifica campo a campo; erros de um campo não descartam os outros
func decodeFields[T any](fields map[string]any) T {
	var out T

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &out,
	})
	if err != nil {
		return out
	}

	// O erro agregado só lista os campos incompatíveis, que ficam com o valor zero
	_ = decoder.Decode(fields)

	return out
}

// WriteJSON serializa body como JSON com o status informado.
func WriteJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(body)
}
