// Package docs registra el documento OpenAPI del Pet Service para /swagger/*.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Pet Service API",
        "description": "Pets and pet kinds consumed by petdesk",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": ["http"],
    "tags": [
        {"name": "pets", "description": "Pet records and kind catalog"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/pets/kinds": {
            "get": {
                "tags": ["pets"],
                "summary": "List pet kinds",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Kind"}}}
                }
            }
        },
        "/pets": {
            "get": {
                "tags": ["pets"],
                "summary": "List pets",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Pet"}}}
                }
            },
            "post": {
                "tags": ["pets"],
                "summary": "Create a pet",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "pet", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Pet"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Pet"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/pets/{petID}": {
            "get": {
                "tags": ["pets"],
                "summary": "Get a pet",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "petID", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Pet"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "put": {
                "tags": ["pets"],
                "summary": "Update a pet",
                "description": "kind and addedDate are fixed at creation and ignored here",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "petID", "in": "path", "required": true, "type": "integer"},
                    {"name": "pet", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Pet"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Pet"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "delete": {
                "tags": ["pets"],
                "summary": "Delete a pet",
                "parameters": [
                    {"name": "petID", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        }
    },
    "definitions": {
        "Kind": {
            "type": "object",
            "properties": {
                "value": {"type": "string", "example": "DOG"},
                "displayName": {"type": "string", "example": "Dog"}
            }
        },
        "Pet": {
            "type": "object",
            "required": ["petName", "age", "kind"],
            "properties": {
                "petId": {"type": "integer", "example": 7},
                "petName": {"type": "string", "example": "Rex"},
                "age": {"type": "integer", "minimum": 0, "example": 3},
                "kind": {"type": "string", "example": "DOG"},
                "addedDate": {"type": "string", "format": "date", "example": "2024-01-01"},
                "notes": {"type": "string"},
                "healthProblems": {"type": "boolean"}
            }
        },
        "Error": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "fields": {"type": "array", "items": {"type": "string"}}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc devuelve el documento OpenAPI.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
