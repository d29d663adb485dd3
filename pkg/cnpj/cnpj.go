// Package cnpj valida y formatea el CNPJ (identificador fiscal de empresas en Brasil).
package cnpj

import (
	"fmt"
	"unicode"
)

// pesos del módulo 11 para el primer y segundo dígito verificador.
var (
	weightsDV1 = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	weightsDV2 = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Validate verifica que taxID (con o sin puntos, barra y guion) tenga 14 dígitos y
// dígitos verificadores correctos. Ej: "12.345.678/0001-95" o "12345678000195".
func Validate(taxID string) error {
	digits := extractDigits(taxID)
	if len(digits) != 14 {
		return fmt.Errorf("cnpj: se esperaban 14 dígitos, se encontraron %d", len(digits))
	}
	if allEqual(digits) {
		return fmt.Errorf("cnpj: secuencia repetida inválida")
	}
	dv, err := ComputeVerificationDigits(string(digits[:12]))
	if err != nil {
		return err
	}
	if string(digits[12:]) != dv {
		return fmt.Errorf("cnpj: dígitos verificadores inválidos: esperado %s, recibido %s", dv, digits[12:])
	}
	return nil
}

// ComputeVerificationDigits calcula los dos dígitos verificadores para los 12 primeros dígitos.
func ComputeVerificationDigits(base string) (string, error) {
	digits := extractDigits(base)
	if len(digits) < 12 {
		return "", fmt.Errorf("cnpj: se requieren 12 dígitos base, se encontraron %d", len(digits))
	}
	digits = digits[:12]
	dv1 := checkDigit(digits, weightsDV1[:])
	dv2 := checkDigit(append(append([]byte{}, digits...), dv1), weightsDV2[:])
	return string([]byte{dv1, dv2}), nil
}

// Format devuelve el CNPJ como "00.000.000/0000-00" si tiene 14 dígitos; si no, lo devuelve intacto.
func Format(taxID string) string {
	d := extractDigits(taxID)
	if len(d) != 14 {
		return taxID
	}
	return fmt.Sprintf("%s.%s.%s/%s-%s", d[0:2], d[2:5], d[5:8], d[8:12], d[12:14])
}

func checkDigit(digits []byte, weights []int) byte {
	var sum int
	for i, d := range digits {
		sum += int(d-'0') * weights[i]
	}
	remainder := sum % 11
	if remainder < 2 {
		return '0'
	}
	return byte('0' + (11 - remainder))
}

func allEqual(digits []byte) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
