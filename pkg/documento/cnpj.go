package documento

// pesos do cálculo dos dígitos verificadores do CNPJ, da esquerda para a direita.
var (
	cnpjPesos1 = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjPesos2 = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// NormalizarCNPJ remove pontuação e devolve apenas os dígitos do CNPJ.
// "11.222.333/0001-81" -> "11222333000181".
func NormalizarCNPJ(cnpj string) string {
	return extrairDigitos(cnpj)
}

// CNPJValido valida o CNPJ (com ou sem pontuação) pelos dois dígitos
// verificadores módulo 11.
func CNPJValido(cnpj string) bool {
	digits := extrairDigitos(cnpj)
	if len(digits) != 14 {
		return false
	}
	if todosIguais(digits) {
		return false
	}
	if dv := cnpjDV(digits[:12], cnpjPesos1[:]); digits[12] != dv {
		return false
	}
	if dv := cnpjDV(digits[:13], cnpjPesos2[:]); digits[13] != dv {
		return false
	}
	return true
}

func cnpjDV(base string, pesos []int) byte {
	var soma int
	for i := 0; i < len(base); i++ {
		soma += int(base[i]-'0') * pesos[i]
	}
	resto := soma % 11
	if resto < 2 {
		return '0'
	}
	return byte('0' + (11 - resto))
}
