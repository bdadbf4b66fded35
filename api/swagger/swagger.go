package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Homeschool Hub API",
        "description": "Messaging and IHIP compliance reporting for Renaissance Kids Homeschool Hub",
        "version": "0.1.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Authentication"},
        {"name": "Messages", "description": "User-to-user messaging"},
        {"name": "Reports", "description": "IHIP compliance reports"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate a user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/messages/send": {
            "post": {
                "tags": ["Messages"],
                "summary": "Send a message to another user",
                "security": [{"Bearer": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SendMessageRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Missing required fields"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/messages": {
            "get": {
                "tags": ["Messages"],
                "summary": "List messages for a user",
                "security": [{"Bearer": []}],
                "parameters": [
                    {"name": "userId", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Missing userId"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/reports/ihip/quarterly": {
            "get": {
                "tags": ["Reports"],
                "summary": "IHIP quarterly report for a student",
                "security": [{"Bearer": []}],
                "parameters": [
                    {"name": "studentId", "in": "query", "required": true, "type": "string"},
                    {"name": "quarter", "in": "query", "required": true, "type": "integer", "minimum": 1, "maximum": 4},
                    {"name": "year", "in": "query", "required": true, "type": "integer", "minimum": 2000, "maximum": 2100},
                    {"name": "format", "in": "query", "type": "string", "enum": ["json", "pdf"]}
                ],
                "produces": ["application/json", "application/pdf"],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Missing or out-of-range parameters"},
                    "401": {"description": "Unauthorized"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["email", "password"]
        },
        "SendMessageRequest": {
            "type": "object",
            "properties": {
                "recipient_id": {"type": "string"},
                "subject": {"type": "string"},
                "body": {"type": "string"}
            },
            "required": ["recipient_id", "body"]
        },
        "Message": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "sender_id": {"type": "string"},
                "recipient_id": {"type": "string"},
                "subject": {"type": "string"},
                "body": {"type": "string"},
                "sent_at": {"type": "string"},
                "read": {"type": "boolean"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
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

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
