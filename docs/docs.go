// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/calc_api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "Apache 2.0",
            "url": "https://opensource.org/licenses/Apache-2.0"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/calculate": {
            "post": {
                "description": "Evaluates an arithmetic expression and records it in the history when auto-save is on.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["calculator"],
                "summary": "Evaluate an expression",
                "parameters": [
                    {
                        "description": "Expression and optional angle unit",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.CalculateRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CalculateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.ErrorResponse"}},
                    "422": {"description": "Expression could not be evaluated", "schema": {"$ref": "#/definitions/apperr.ErrorResponse"}}
                }
            }
        },
        "/api/v1/validate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["calculator"],
                "summary": "Check an expression without evaluating it",
                "parameters": [
                    {
                        "description": "Expression",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.ValidateRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ValidateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.ErrorResponse"}}
                }
            }
        },
        "/api/v1/format": {
            "get": {
                "produces": ["application/json"],
                "tags": ["calculator"],
                "summary": "Format a number with the saved display settings",
                "parameters": [
                    {"type": "number", "description": "Value to format", "name": "value", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FormatResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.ErrorResponse"}}
                }
            }
        },
        "/api/v1/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["history"],
                "summary": "Calculation history, newest first",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 20, "description": "Page size", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pagination.OffsetResult-dto_HistoryEntry"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["history"],
                "summary": "Delete the whole history",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/api/v1/history/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["history"],
                "summary": "Search history by expression or error message",
                "parameters": [
                    {"type": "string", "description": "Text to look for, case-insensitive", "name": "q", "in": "query", "required": true},
                    {"type": "integer", "default": 20, "description": "Maximum results", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.HistoryEntry"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.ErrorResponse"}}
                }
            }
        },
        "/api/v1/history/import": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["history"],
                "summary": "Import history entries",
                "parameters": [
                    {
                        "description": "Entries to store",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.ImportHistoryRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ImportHistoryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.ErrorResponse"}}
                }
            }
        },
        "/api/v1/history/{id}": {
            "delete": {
                "tags": ["history"],
                "summary": "Delete one history entry",
                "parameters": [
                    {"type": "string", "description": "Entry ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperr.ErrorResponse"}}
                }
            }
        },
        "/api/v1/settings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Current settings",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Settings"}}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Replace settings",
                "parameters": [
                    {"description": "Settings", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.Settings"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Settings"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.ErrorResponse"}}
                }
            }
        },
        "/api/v1/settings/angle-unit/toggle": {
            "post": {
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Switch between degrees and radians",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Settings"}}}
            }
        },
        "/api/v1/functions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["help"],
                "summary": "Supported operators, functions and constants",
                "parameters": [
                    {"type": "string", "description": "Filter by category", "name": "category", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/catalog.FunctionDescription"}}}
                }
            }
        },
        "/api/v1/tips": {
            "get": {
                "produces": ["application/json"],
                "tags": ["help"],
                "summary": "Usage tips",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/catalog.Tip"}}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/server.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/server.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "apperr.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"description": "Code is the calcerr code of a failed calculation.", "type": "string"},
                "error": {"type": "string"},
                "expression": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "angle.Unit": {
            "type": "string",
            "enum": ["deg", "rad"],
            "x-enum-varnames": ["Degree", "Radian"]
        },
        "catalog.FunctionDescription": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "description": {"type": "string"},
                "example": {"type": "string"},
                "name": {"description": "Name is the text typed in an expression.", "type": "string"},
                "symbol": {"type": "string"},
                "usage": {"type": "string"}
            }
        },
        "catalog.Tip": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "daily": {"type": "boolean"},
                "level": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "domain.Settings": {
            "type": "object",
            "properties": {
                "angle_unit": {"$ref": "#/definitions/angle.Unit"},
                "auto_save_history": {"type": "boolean"},
                "decimal_places": {"type": "integer"},
                "first_launch": {"type": "boolean"},
                "max_history_count": {"type": "integer"},
                "show_tips": {"type": "boolean"},
                "use_scientific_notation": {"type": "boolean"}
            }
        },
        "dto.CalculateRequest": {
            "type": "object",
            "required": ["expression"],
            "properties": {
                "angle_unit": {"description": "AngleUnit overrides the saved unit for this call (\"deg\" or \"rad\").", "allOf": [{"$ref": "#/definitions/angle.Unit"}]},
                "expression": {"type": "string"}
            }
        },
        "dto.CalculateResponse": {
            "type": "object",
            "properties": {
                "angle_unit": {"$ref": "#/definitions/angle.Unit"},
                "expression": {"type": "string"},
                "formatted": {"type": "string"},
                "history_id": {"type": "string"},
                "result": {"type": "number"}
            }
        },
        "dto.FormatResponse": {
            "type": "object",
            "properties": {
                "formatted": {"type": "string"},
                "value": {"type": "number"}
            }
        },
        "dto.HistoryEntry": {
            "type": "object",
            "properties": {
                "angle_unit": {"$ref": "#/definitions/angle.Unit"},
                "error_message": {"type": "string"},
                "expression": {"type": "string"},
                "formatted": {"type": "string"},
                "id": {"type": "string"},
                "result": {"type": "number"},
                "timestamp": {"type": "string"}
            }
        },
        "dto.ImportHistoryRequest": {
            "type": "object",
            "properties": {
                "entries": {"type": "array", "items": {"$ref": "#/definitions/dto.HistoryEntry"}}
            }
        },
        "dto.ImportHistoryResponse": {
            "type": "object",
            "properties": {
                "imported": {"type": "integer"}
            }
        },
        "dto.ValidateRequest": {
            "type": "object",
            "properties": {
                "expression": {"type": "string"}
            }
        },
        "dto.ValidateResponse": {
            "type": "object",
            "properties": {
                "balanced_parentheses": {"type": "boolean"},
                "valid": {"type": "boolean"}
            }
        },
        "pagination.OffsetResult-dto_HistoryEntry": {
            "type": "object",
            "properties": {
                "has_more": {"type": "boolean"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/dto.HistoryEntry"}},
                "page": {"type": "integer"},
                "size": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "server.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Scientific Calculator API",
	Description:      "Expression evaluation with degree/radian trigonometry, calculation history and settings",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
