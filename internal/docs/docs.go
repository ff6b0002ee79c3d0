// Package docs registra el documento swagger que sirve /swagger/*.
// Mantener en sync con las anotaciones godoc de los handlers (swag init -g cmd/api/main.go).
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
        "/licenses": {
            "get": {
                "produces": ["application/json"],
                "tags": ["licenses"],
                "summary": "Lista licencias con fechas formateadas y estilo de estado",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/licenses.listLicensesResponse"}}}
            }
        },
        "/licenses/metrics": {
            "get": {
                "produces": ["application/json"],
                "tags": ["licenses"],
                "summary": "Contadores derivados (active, expiring soon, pending, ...)",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/licenses.Metrics"}}}
            }
        },
        "/licenses/{licenseID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["licenses"],
                "summary": "Detalle de una licencia",
                "parameters": [{"type": "string", "description": "License ID", "name": "licenseID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/licenses.Response"}},
                    "404": {"description": "license not found", "schema": {"type": "string"}}
                }
            }
        },
        "/activity": {
            "get": {
                "produces": ["application/json"],
                "tags": ["activity"],
                "summary": "Feed de actividad reciente con tiempo relativo",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/activity.FeedItemResponse"}}}}
            }
        },
        "/store/counter": {
            "get": {
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "Valor actual del contador compartido",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/sharedstore.CounterState"}}}
            }
        },
        "/store/counter/{action}": {
            "post": {
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "increment, decrement o reset del contador compartido",
                "parameters": [{"type": "string", "description": "increment | decrement | reset", "name": "action", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/sharedstore.CounterState"}},
                    "404": {"description": "unknown action", "schema": {"type": "string"}}
                }
            }
        },
        "/store/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "Total de usuarios del store compartido",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/sharedstore.UsersState"}}}
            }
        },
        "/store/users/license-officers": {
            "post": {
                "produces": ["application/json"],
                "tags": ["store"],
                "summary": "Agrega un License Officer al store compartido",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/store/dispatch": {
            "post": {
                "consumes": ["application/json"],
                "tags": ["store"],
                "summary": "Aplica una acción {type, payload} al store compartido",
                "parameters": [{"description": "acción", "name": "action", "in": "body", "required": true, "schema": {"$ref": "#/definitions/sharedstore.Action"}}],
                "responses": {"204": {"description": "No Content"}, "400": {"description": "invalid action", "schema": {"type": "string"}}}
            }
        },
        "/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Vista completa del módulo (stats, tabla, feed, store compartido)",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "licenses.Metrics": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "active": {"type": "integer"},
                "expired": {"type": "integer"},
                "suspended": {"type": "integer"},
                "pending": {"type": "integer"},
                "expiring_soon": {"type": "integer"}
            }
        },
        "licenses.StatusStyle": {
            "type": "object",
            "properties": {"foreground": {"type": "string"}, "background": {"type": "string"}}
        },
        "licenses.Response": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "license_number": {"type": "string"},
                "company_name": {"type": "string"},
                "license_type": {"type": "string"},
                "issue_date": {"type": "string"},
                "expiry_date": {"type": "string"},
                "issue_date_label": {"type": "string"},
                "expiry_date_label": {"type": "string"},
                "status": {"type": "string", "enum": ["Active", "Expired", "Suspended", "Pending"]},
                "issued_by": {"type": "string"},
                "expiring_soon": {"type": "boolean"},
                "style": {"$ref": "#/definitions/licenses.StatusStyle"}
            }
        },
        "licenses.listLicensesResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/licenses.Response"}},
                "metrics": {"$ref": "#/definitions/licenses.Metrics"},
                "window_days": {"type": "integer"}
            }
        },
        "activity.FeedItemResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "description": {"type": "string"},
                "timestamp": {"type": "string", "format": "date-time"},
                "type": {"type": "string", "enum": ["issued", "renewed", "suspended", "expired"]},
                "label": {"type": "string"},
                "icon": {"type": "string"}
            }
        },
        "sharedstore.CounterState": {
            "type": "object",
            "properties": {"value": {"type": "integer"}}
        },
        "sharedstore.UsersState": {
            "type": "object",
            "properties": {"totalCount": {"type": "integer"}}
        },
        "sharedstore.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "sharedstore.Action": {
            "type": "object",
            "properties": {
                "type": {"type": "string", "enum": ["counter/increment", "counter/decrement", "counter/reset", "users/addUser"]},
                "payload": {"$ref": "#/definitions/sharedstore.User"}
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
	Title:            "License Management Module API",
	Description:      "Licencias mock, métricas derivadas, feed de actividad y store compartido con el host.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
