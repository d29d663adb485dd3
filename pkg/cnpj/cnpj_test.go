package cnpj_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canvacrancha/badge-api/pkg/cnpj"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, cnpj.Validate("12.345.678/0001-95"))
	assert.NoError(t, cnpj.Validate("12345678000195"))
	assert.NoError(t, cnpj.Validate("11.222.333/0001-81"))

	assert.Error(t, cnpj.Validate("12345678000199"), "dígitos verificadores incorrectos")
	assert.Error(t, cnpj.Validate("1234567800019"), "13 dígitos")
	assert.Error(t, cnpj.Validate("00000000000000"), "secuencia repetida")
	assert.Error(t, cnpj.Validate("X"))
}

func TestComputeVerificationDigits(t *testing.T) {
	dv, err := cnpj.ComputeVerificationDigits("112223330001")
	require.NoError(t, err)
	assert.Equal(t, "81", dv)

	_, err = cnpj.ComputeVerificationDigits("123")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "12.345.678/0001-95", cnpj.Format("12345678000195"))
	assert.Equal(t, "X", cnpj.Format("X"))
}
