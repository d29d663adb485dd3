package badge

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/canvacrancha/badge-api/internal/domain/entity"
)

// Tags dinámicos conocidos (forma canónica: minúsculas, sin acentos).
const (
	TagNome          = "nome"
	TagMatricula     = "matricula"
	TagCPF           = "cpf"
	TagRG            = "rg"
	TagEmpresa       = "empresa"
	TagTipoSanguineo = "tipo_sanguineo"
	TagAdmissao      = "admissao"
	TagFoto          = "foto"
	TagCargo         = "cargo"
	TagSetor         = "setor"
)

var tagPattern = regexp.MustCompile(`\{\{\s*([^{}]*?)\s*\}\}`)

// TagValues valores por tag canónico.
type TagValues map[string]string

// EmployeeTags construye los valores de los tags a partir de un funcionario.
// Cargo y setor no existen en el registro y quedan vacíos.
func EmployeeTags(e *entity.Employee) TagValues {
	v := TagValues{
		TagNome:          e.Name,
		TagMatricula:     e.RegistrationNumber,
		TagCPF:           e.CPF,
		TagRG:            e.RG,
		TagEmpresa:       e.CompanyName,
		TagTipoSanguineo: e.BloodType,
		TagFoto:          e.Photo,
		TagCargo:         "",
		TagSetor:         "",
	}
	if e.AdmissionDate != nil {
		v[TagAdmissao] = e.AdmissionDate.Format("02/01/2006")
	}
	return v
}

// IsDynamic informa si el contenido completo es un tag ("{{nome}}").
func IsDynamic(content string) bool {
	t := strings.TrimSpace(content)
	return strings.HasPrefix(t, "{{") && strings.HasSuffix(t, "}}")
}

// CanonicalTag normaliza el nombre de un tag: "Matrícula" -> "matricula", "Tipo Sanguíneo" -> "tipo_sanguineo".
func CanonicalTag(name string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		folded = name
	}
	folded = strings.ToLower(strings.TrimSpace(folded))
	return strings.Join(strings.Fields(folded), "_")
}

// Resolve sustituye cada tag del contenido por su valor. Con values nil el contenido
// se devuelve intacto (vista previa del template). Tags desconocidos quedan vacíos.
func Resolve(content string, values TagValues) string {
	if values == nil {
		return content
	}
	return tagPattern.ReplaceAllStringFunc(content, func(m string) string {
		sub := tagPattern.FindStringSubmatch(m)
		return values[CanonicalTag(sub[1])]
	})
}
