package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain words", "Ganhar Dinheiro Online", "ganhar-dinheiro-online"},
		{"portuguese accents", "Programação e Configuração", "programacao-e-configuracao"},
		{"cedilla", "Como Liberar Espaço", "como-liberar-espaco"},
		{"punctuation stripped", "Wi-Fi: Mais Rápido!", "wi-fi-mais-rapido"},
		{"repeated separators", "a  --  b", "a-b"},
		{"leading and trailing", " -abc- ", "abc"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.input))
		})
	}
}

func TestRemoveDiacritics(t *testing.T) {
	assert.Equal(t, "Mocambique", RemoveDiacritics("Moçambique"))
	assert.Equal(t, "AEIOU aeiou", RemoveDiacritics("ÁÉÍÓÚ áéíóú"))
}
