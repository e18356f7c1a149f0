package documento

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeAcentos decompõe (NFD), remove marcas combinantes e recompõe (NFC).
var removeAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizarNome devolve o nome em minúsculas, sem acentos e com espaços
// colapsados, para agrupamento de homônimos em cadastros sem CPF.
func NormalizarNome(nome string) string {
	s, _, err := transform.String(removeAcentos, nome)
	if err != nil {
		s = nome
	}
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}
