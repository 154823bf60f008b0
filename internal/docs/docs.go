// Package docs registra los documentos OpenAPI (swagger 2.0) de cada servicio
// en el registro de swag, para que http-swagger los sirva en /swagger/doc.json.
package docs

import "github.com/swaggo/swag"

const (
	InstanceCatalog = "catalog"
	InstanceRecords = "records"
)

const catalogTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/animals": {
            "get": {
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "List animals available for adoption",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Animal"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/animals/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Get one animal by id",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Animal"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/animals/{id}/adopt": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Submit an adoption application",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AdoptRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/AdoptResponse"}},
                    "400": {"description": "Already adopted or invalid input", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "500": {"description": "Records service failure", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "Animal": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "type": {"type": "string"},
                "age": {"type": "integer"},
                "breed": {"type": "string"},
                "description": {"type": "string"},
                "image_url": {"type": "string"},
                "status": {"type": "string", "enum": ["available", "adopted"]}
            }
        },
        "AdoptRequest": {
            "type": "object",
            "required": ["adopterName", "adopterEmail"],
            "properties": {
                "adopterName": {"type": "string"},
                "adopterEmail": {"type": "string"},
                "adopterPhone": {"type": "string"},
                "adopterAddress": {"type": "string"}
            }
        },
        "AdoptResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "animal": {"type": "string"},
                "adoptionId": {"type": "integer"}
            }
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "details": {"type": "string"}
            }
        }
    }
}`

const recordsTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/adoptions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["adoptions"],
                "summary": "List adoption records, newest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/AdoptionRecord"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/CreateAdoptionResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["adoptions"],
                "summary": "Register a confirmed adoption",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateAdoptionRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CreateAdoptionResponse"}},
                    "400": {"description": "Missing fields or already adopted", "schema": {"$ref": "#/definitions/CreateAdoptionResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/CreateAdoptionResponse"}}
                }
            }
        }
    },
    "definitions": {
        "CreateAdoptionRequest": {
            "type": "object",
            "required": ["animalId", "animalName", "adopterName", "adopterEmail"],
            "properties": {
                "animalId": {"type": "integer"},
                "animalName": {"type": "string"},
                "adopterName": {"type": "string"},
                "adopterEmail": {"type": "string"},
                "adopterPhone": {"type": "string"},
                "adopterAddress": {"type": "string"}
            }
        },
        "CreateAdoptionResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "adoptionId": {"type": "integer"},
                "animalName": {"type": "string"},
                "adopterName": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "AdoptionRecord": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "animal_id": {"type": "integer"},
                "animal_name": {"type": "string"},
                "adopter_name": {"type": "string"},
                "adopter_email": {"type": "string"},
                "adopter_phone": {"type": "string"},
                "adopter_address": {"type": "string"},
                "adoption_date": {"type": "string", "format": "date-time"},
                "status": {"type": "string", "enum": ["pending", "confirmed"]}
            }
        }
    }
}`

// SwaggerInfoCatalog describe la API del catálogo.
var SwaggerInfoCatalog = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pet Adoption Catalog API",
	Description:      "Animals available for adoption and the adoption workflow.",
	InfoInstanceName: InstanceCatalog,
	SwaggerTemplate:  catalogTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

// SwaggerInfoRecords describe la API de registros de adopción.
var SwaggerInfoRecords = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pet Adoption Records API",
	Description:      "Append-only log of adoption applications.",
	InfoInstanceName: InstanceRecords,
	SwaggerTemplate:  recordsTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfoCatalog.InstanceName(), SwaggerInfoCatalog)
	swag.Register(SwaggerInfoRecords.InstanceName(), SwaggerInfoRecords)
}
