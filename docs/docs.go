// Package docs registra la especificación OpenAPI de la API en swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/templates": {
            "post": {
                "security": [{"Bearer": []}],
                "description": "Clave natural (company_id, slot_number). slot_number entre 1 y 3.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["templates"],
                "summary": "Guardar template (crea o sobrescribe el slot)",
                "parameters": [
                    {
                        "description": "Template",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.UpsertBadgeTemplateRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BadgeTemplateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/templates/byId/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["templates"],
                "summary": "Obtener template por ID",
                "parameters": [
                    {"type": "integer", "description": "ID del template", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BadgeTemplateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/templates/{companyId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["templates"],
                "summary": "Listar templates de una empresa",
                "parameters": [
                    {"type": "string", "description": "CNPJ de la empresa", "name": "companyId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.BadgeTemplateResponse"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/templates/{companyId}/{slot}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["templates"],
                "summary": "Obtener template por empresa y slot",
                "parameters": [
                    {"type": "string", "description": "CNPJ de la empresa", "name": "companyId", "in": "path", "required": true},
                    {"type": "integer", "description": "Slot (1..3)", "name": "slot", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BadgeTemplateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/templates/{companyId}/{slot}/print": {
            "get": {
                "description": "Con employee_id los tags dinámicos del layout (nome, matricula, cpf, ...) se resuelven con los datos del funcionario.",
                "produces": ["application/pdf"],
                "tags": ["templates"],
                "summary": "Hoja imprimible (PDF) del template",
                "parameters": [
                    {"type": "string", "description": "CNPJ de la empresa", "name": "companyId", "in": "path", "required": true},
                    {"type": "integer", "description": "Slot (1..3)", "name": "slot", "in": "path", "required": true},
                    {"type": "integer", "description": "ID del funcionario", "name": "employee_id", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/employees": {
            "get": {
                "produces": ["application/json"],
                "tags": ["employees"],
                "summary": "Listar funcionarios",
                "parameters": [
                    {"type": "string", "description": "Nombre de la empresa", "name": "company", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.EmployeeResponse"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/employees/companies": {
            "get": {
                "produces": ["application/json"],
                "tags": ["employees"],
                "summary": "Nombres de empresa distintos",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/employees/export": {
            "get": {
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["employees"],
                "summary": "Exportar funcionarios a Excel",
                "parameters": [
                    {"type": "string", "description": "Nombre de la empresa", "name": "company", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.BadgeTemplateResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "company_id": {"type": "string"},
                "slot_number": {"type": "integer"},
                "template_name": {"type": "string"},
                "front_image": {"type": "string"},
                "back_image": {"type": "string"},
                "layout": {"type": "object"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"},
                "cnpj": {"type": "string"},
                "slotNumber": {"type": "integer"},
                "templateName": {"type": "string"},
                "layoutJson": {"type": "string"}
            }
        },
        "dto.EmployeeResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "registration_number": {"type": "string"},
                "photo": {"type": "string"},
                "company_name": {"type": "string"},
                "admission_date": {"type": "string"},
                "blood_type": {"type": "string"},
                "cpf": {"type": "string"},
                "rg": {"type": "string"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "dto.UpsertBadgeTemplateRequest": {
            "type": "object",
            "properties": {
                "company_id": {"type": "string"},
                "slot_number": {"type": "integer", "minimum": 1, "maximum": 3},
                "template_name": {"type": "string"},
                "front_image": {"type": "string"},
                "back_image": {"type": "string"},
                "layout": {"type": "object"},
                "cnpj": {"type": "string", "description": "alias de company_id"},
                "slotNumber": {"type": "integer", "description": "alias de slot_number"},
                "templateName": {"type": "string", "description": "alias de template_name"},
                "frenteImagem": {"type": "string", "description": "alias de front_image"},
                "versoImagem": {"type": "string", "description": "alias de back_image"},
                "layoutJson": {"type": "string", "description": "layout serializado como string"}
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo información de la API exportada para que pueda modificarse en runtime.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Badge API",
	Description:      "Templates de crachá por empresa (slots 1..3) y consulta de funcionarios.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
