// Package docs contains the swagger specification served at /docs.
// Regenerate with: swag init -g cmd/server/main.go
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
        "/api/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Delegate login",
                "description": "Validates credentials and establishes a session (or returns a bearer token in token mode)",
                "parameters": [
                    {
                        "description": "gmail and password",
                        "name": "credentials",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}
                }
            }
        },
        "/api/auth/me": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Destroy the current session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}
                }
            }
        },
        "/api/forum/doubts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["forum"],
                "summary": "List every doubt (moderation view)",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.ForumDoubt"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["forum"],
                "summary": "Submit a question to a committee",
                "description": "Creates a pending doubt; it appears in the committee feed only after moderation",
                "parameters": [
                    {
                        "description": "committeeName and question",
                        "name": "doubt",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.CreateDoubtRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.ForumDoubt"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}
                }
            }
        },
        "/api/forum/doubts/user/me": {
            "get": {
                "produces": ["application/json"],
                "tags": ["forum"],
                "summary": "List the caller's own doubts",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.ForumDoubt"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}
                }
            }
        },
        "/api/forum/doubts/{committee}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["forum"],
                "summary": "List a committee's approved doubts",
                "parameters": [
                    {"type": "string", "name": "committee", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.ForumDoubt"}}}
                }
            }
        },
        "/api/forum/doubts/{id}": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["forum"],
                "summary": "Moderate a doubt",
                "description": "Sets the chair response and/or the approval flag",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {
                        "description": "response and/or isApproved",
                        "name": "update",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.UpdateDoubtRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ForumDoubt"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}
                }
            }
        },
        "/api/committees": {
            "get": {
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "Committee registry grouped by school level",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.CommitteeGroup"}}}
                }
            }
        },
        "/api/committees/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "One committee by name",
                "parameters": [
                    {"type": "string", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Committee"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}
                }
            }
        },
        "/api/resources/{committee}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "Study resources for a committee",
                "parameters": [
                    {"type": "string", "name": "committee", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.ResourceCategory"}}}
                }
            }
        },
        "/api/contacts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "Conference contact people",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.ContactPerson"}}}
                }
            }
        }
    },
    "definitions": {
        "dto.CreateDoubtRequest": {
            "type": "object",
            "properties": {
                "committeeName": {"type": "string"},
                "question": {"type": "string"}
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "properties": {
                "gmail": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.LoginResponse": {
            "type": "object",
            "properties": {
                "accessToken": {"type": "string"},
                "user": {"$ref": "#/definitions/models.User"}
            }
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "dto.UpdateDoubtRequest": {
            "type": "object",
            "properties": {
                "isApproved": {"type": "boolean"},
                "response": {"type": "string"}
            }
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {
                "user": {"$ref": "#/definitions/models.User"}
            }
        },
        "models.Committee": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "subtitle": {"type": "string"},
                "topic": {"type": "string"},
                "chair": {"type": "string"},
                "level": {"type": "string"},
                "overview": {"type": "string"}
            }
        },
        "models.CommitteeGroup": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "committees": {"type": "array", "items": {"$ref": "#/definitions/models.Committee"}}
            }
        },
        "models.ContactPerson": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "position": {"type": "string"},
                "phone": {"type": "string"},
                "email": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "models.ForumDoubt": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "userId": {"type": "string"},
                "committeeName": {"type": "string"},
                "question": {"type": "string"},
                "response": {"type": "string"},
                "isApproved": {"type": "boolean"},
                "createdAt": {"type": "string"}
            }
        },
        "models.ResourceCategory": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "links": {"type": "array", "items": {"$ref": "#/definitions/models.ResourceLink"}}
            }
        },
        "models.ResourceLink": {
            "type": "object",
            "properties": {
                "text": {"type": "string"},
                "href": {"type": "string"}
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "idNumber": {"type": "string"},
                "gmail": {"type": "string"},
                "committee": {"type": "string"},
                "institution": {"type": "string"},
                "role": {"type": "string"}
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
	Title:            "DYMUN Conference Portal API",
	Description:      "Promotional site backend and delegate portal for the DYMUN conference.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
