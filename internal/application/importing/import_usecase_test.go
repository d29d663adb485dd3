package importing_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canvacrancha/badge-api/internal/application/importing"
	"github.com/canvacrancha/badge-api/internal/domain"
	"github.com/canvacrancha/badge-api/internal/domain/entity"
	"github.com/canvacrancha/badge-api/internal/domain/repository"
)

// memEmployees aplica la misma regla de duplicados que el almacenamiento.
type memEmployees struct {
	items   []*entity.Employee
	failErr error
}

func (m *memEmployees) Create(_ context.Context, e *entity.Employee) error {
	if m.failErr != nil {
		return m.failErr
	}
	for _, x := range m.items {
		if e.RegistrationNumber != "" && x.CompanyName == e.CompanyName && x.RegistrationNumber == e.RegistrationNumber {
			return domain.ErrDuplicate
		}
	}
	e.ID = int64(len(m.items) + 1)
	m.items = append(m.items, e)
	return nil
}
func (m *memEmployees) GetByID(context.Context, int64) (*entity.Employee, error) { return nil, nil }
func (m *memEmployees) List(context.Context, string) ([]*entity.Employee, error) { return m.items, nil }
func (m *memEmployees) ListCompanyNames(context.Context) ([]string, error)       { return nil, nil }

// fakeTx simula commit/rollback copiando el estado solo si fn no falla.
type fakeTx struct {
	committed *memEmployees
}

func (f *fakeTx) Run(ctx context.Context, fn func(repository.EmployeeRepository) error) error {
	work := &memEmployees{items: append([]*entity.Employee{}, f.committed.items...), failErr: f.committed.failErr}
	if err := fn(work); err != nil {
		return err
	}
	f.committed.items = work.items
	return nil
}

func TestImport_Latin1(t *testing.T) {
	// "José Araújo" y "Matrícula" codificados en ISO-8859-1
	csv := []byte("Nome;Matr\xedcula;Empresa;Admiss\xe3o;Tipo Sangu\xedneo;CPF;RG\n" +
		"Jos\xe9 Ara\xfajo;001;Acme;15/03/2021;o+;111.222.333-44;12.345.678-9\n" +
		"Ana;002;Acme;2020-01-31;;;\n")
	store := &memEmployees{}
	uc := importing.NewImportUseCase(&fakeTx{committed: store})

	res, err := uc.Import(context.Background(), bytes.NewReader(csv), importing.Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Inserted)
	assert.Empty(t, res.Rejected)

	require.Len(t, store.items, 2)
	jose := store.items[0]
	assert.Equal(t, "José Araújo", jose.Name)
	assert.Equal(t, "001", jose.RegistrationNumber)
	assert.Equal(t, "O+", jose.BloodType)
	require.NotNil(t, jose.AdmissionDate)
	assert.Equal(t, "2021-03-15", jose.AdmissionDate.Format("2006-01-02"))
	require.NotNil(t, store.items[1].AdmissionDate)
}

func TestImport_DuplicadosYRechazos(t *testing.T) {
	csv := "nome;matricula;empresa;admissao\n" +
		"Ana;1;Acme;\n" +
		"Ana Repetida;1;Acme;\n" +
		";2;Acme;\n" +
		"Bia;3;Acme;31/02/2020\n" +
		"Caio;1;Beta;\n"
	store := &memEmployees{}
	uc := importing.NewImportUseCase(&fakeTx{committed: store})

	res, err := uc.Import(context.Background(), strings.NewReader(csv), importing.Options{UTF8: true})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Inserted)
	assert.Equal(t, 1, res.Duplicates)
	require.Len(t, res.Rejected, 2)
	assert.Equal(t, 4, res.Rejected[0].Line)
	assert.Equal(t, 5, res.Rejected[1].Line)
}

func TestImport_SinColumnaNome(t *testing.T) {
	uc := importing.NewImportUseCase(&fakeTx{committed: &memEmployees{}})
	_, err := uc.Import(context.Background(), strings.NewReader("matricula;empresa\n1;Acme\n"), importing.Options{UTF8: true})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestImport_ErrorDePersistenciaRevierte(t *testing.T) {
	boom := errors.New("disk full")
	store := &memEmployees{failErr: boom}
	uc := importing.NewImportUseCase(&fakeTx{committed: store})

	_, err := uc.Import(context.Background(), strings.NewReader("nome\nAna\n"), importing.Options{UTF8: true})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, store.items)
}

func TestImport_DelimitadorComa(t *testing.T) {
	store := &memEmployees{}
	uc := importing.NewImportUseCase(&fakeTx{committed: store})
	res, err := uc.Import(context.Background(), strings.NewReader("nome,empresa\nAna,Acme\n"), importing.Options{UTF8: true, Delimiter: ','})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Inserted)
	assert.Equal(t, "Acme", store.items[0].CompanyName)
}
