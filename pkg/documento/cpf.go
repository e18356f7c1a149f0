// Package documento normaliza e valida documentos de identificação
// brasileiros (CPF, CNPJ) e nomes, para comparação e detecção de duplicidade.
package documento

import (
	"strings"
	"unicode"
)

// NormalizarCPF remove pontuação e devolve apenas os dígitos do CPF.
// "529.982.247-25" -> "52998224725".
func NormalizarCPF(cpf string) string {
	return extrairDigitos(cpf)
}

// CPFValido valida o CPF (com ou sem pontuação) pelos dois dígitos
// verificadores módulo 11. CPFs com todos os dígitos iguais são rejeitados.
func CPFValido(cpf string) bool {
	digits := extrairDigitos(cpf)
	if len(digits) != 11 {
		return false
	}
	if todosIguais(digits) {
		return false
	}
	if dv := calcularDV(digits[:9], 10); digits[9] != dv {
		return false
	}
	if dv := calcularDV(digits[:10], 11); digits[10] != dv {
		return false
	}
	return true
}

// calcularDV calcula um dígito verificador módulo 11 com pesos decrescentes
// a partir de pesoInicial.
func calcularDV(base string, pesoInicial int) byte {
	var soma int
	peso := pesoInicial
	for i := 0; i < len(base); i++ {
		soma += int(base[i]-'0') * peso
		peso--
	}
	resto := soma % 11
	if resto < 2 {
		return '0'
	}
	return byte('0' + (11 - resto))
}

func todosIguais(s string) bool {
	return strings.Count(s, s[:1]) == len(s)
}

func extrairDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
