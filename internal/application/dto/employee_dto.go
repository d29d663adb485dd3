package dto

// EmployeeResponse salida de un funcionario.
type EmployeeResponse struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	RegistrationNumber string `json:"registration_number"`
	Photo              string `json:"photo,omitempty"`
	CompanyName        string `json:"company_name"`
	AdmissionDate      string `json:"admission_date,omitempty"` // YYYY-MM-DD
	BloodType          string `json:"blood_type,omitempty"`
	CPF                string `json:"cpf,omitempty"`
	RG                 string `json:"rg,omitempty"`
}
