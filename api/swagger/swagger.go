package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Case Study API",
        "description": "Password-gated catalogue of published customer case studies",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": ["http", "https"],
    "tags": [
        {"name": "CaseStudies", "description": "Published case study records"},
        {"name": "Filters", "description": "Client-held filter state"},
        {"name": "Authentication", "description": "Shared password and daily token sign-in"}
    ],
    "paths": {
        "/case-studies": {
            "get": {
                "tags": ["CaseStudies"],
                "summary": "List case studies",
                "parameters": [
                    {"name": "theme", "in": "query", "type": "array", "items": {"type": "string"}, "collectionFormat": "multi"},
                    {"name": "brand", "in": "query", "type": "array", "items": {"type": "string"}, "collectionFormat": "multi"},
                    {"name": "state", "in": "query", "type": "array", "items": {"type": "string"}, "collectionFormat": "multi"},
                    {"name": "agencySize", "in": "query", "type": "array", "items": {"type": "string"}, "collectionFormat": "multi"},
                    {"name": "legacySystem", "in": "query", "type": "array", "items": {"type": "string"}, "collectionFormat": "multi"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/CaseStudy"}}},
                    "302": {"description": "Not signed in, redirected to /login"},
                    "500": {"description": "Upstream failure", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/case-studies/options": {
            "get": {
                "tags": ["CaseStudies"],
                "summary": "Filter options",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/FilterOptions"}},
                    "500": {"description": "Upstream failure", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/case-studies/search": {
            "post": {
                "tags": ["CaseStudies"],
                "summary": "Search case studies",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FilterState"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SearchResponse"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/case-studies/export": {
            "get": {
                "tags": ["CaseStudies"],
                "summary": "Export case studies",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Attachment", "schema": {"type": "file"}},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/case-studies/refresh": {
            "post": {
                "tags": ["CaseStudies"],
                "summary": "Invalidate cached case studies",
                "responses": {"204": {"description": "Invalidated"}}
            }
        },
        "/filters/reduce": {
            "post": {
                "tags": ["Filters"],
                "summary": "Apply a filter action",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReduceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/FilterState"}},
                    "400": {"description": "Invalid action", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Sign in with the shared password",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object", "properties": {"password": {"type": "string"}}}}
                ],
                "responses": {
                    "200": {"description": "Signed in, session cookie set", "schema": {"$ref": "#/definitions/Success"}},
                    "401": {"description": "Invalid password", "schema": {"$ref": "#/definitions/Error"}},
                    "500": {"description": "Login failed", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/auth/token": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Sign in with today's access token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object", "properties": {"token": {"type": "string"}}}}
                ],
                "responses": {
                    "200": {"description": "Signed in, session cookie set", "schema": {"$ref": "#/definitions/Success"}},
                    "401": {"description": "Invalid or expired token", "schema": {"$ref": "#/definitions/Error"}},
                    "500": {"description": "Authentication failed", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Sign out",
                "responses": {"200": {"description": "Session cookie cleared", "schema": {"$ref": "#/definitions/Success"}}}
            }
        }
    },
    "definitions": {
        "CaseStudy": {
            "type": "object",
            "properties": {
                "agency": {"type": "string"},
                "brand": {"type": "string"},
                "blog": {"type": "string"},
                "videoLink": {"type": "string"},
                "state": {"type": "string"},
                "theme": {"type": "string"},
                "legacySystem": {"type": "string"},
                "leadVoice": {"type": "string"},
                "yearPublished": {"type": "string"},
                "agencySize": {"type": "string"}
            }
        },
        "FilterState": {
            "type": "object",
            "properties": {
                "themes": {"type": "array", "items": {"type": "string"}},
                "brands": {"type": "array", "items": {"type": "string"}},
                "states": {"type": "array", "items": {"type": "string"}},
                "agencySizes": {"type": "array", "items": {"type": "string"}},
                "legacySystems": {"type": "array", "items": {"type": "string"}}
            }
        },
        "FilterOptions": {
            "type": "object",
            "properties": {
                "themes": {"type": "array", "items": {"type": "string"}},
                "brands": {"type": "array", "items": {"type": "string"}},
                "states": {"type": "array", "items": {"type": "string"}},
                "agencySizes": {"type": "array", "items": {"type": "string"}},
                "legacySystems": {"type": "array", "items": {"type": "string"}},
                "legacySystemCategories": {"type": "array", "items": {"type": "string"}}
            }
        },
        "FilterAction": {
            "type": "object",
            "required": ["type"],
            "properties": {
                "type": {"type": "string", "enum": ["toggle", "selectAll", "clear", "clearAll", "toggleCategory", "toggleNoValue"]},
                "facet": {"type": "string", "enum": ["themes", "brands", "states", "agencySizes", "legacySystems"]},
                "value": {"type": "string"},
                "category": {"type": "string"}
            }
        },
        "ReduceRequest": {
            "type": "object",
            "properties": {
                "filters": {"$ref": "#/definitions/FilterState"},
                "action": {"$ref": "#/definitions/FilterAction"}
            }
        },
        "SearchResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/CaseStudy"}},
                "count": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "Success": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}}
        },
        "Error": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "code": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
