package entity

import "time"

// Employee es un funcionario de una empresa cliente. Solo lectura desde la API.
type Employee struct {
	ID                 int64
	Name               string
	RegistrationNumber string // matrícula
	Photo              string // data URI
	CompanyName        string
	AdmissionDate      *time.Time
	BloodType          string
	CPF                string
	RG                 string
}
