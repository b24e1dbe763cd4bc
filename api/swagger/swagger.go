package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Worship Rota API",
        "description": "Sunday worship team rotation, swaps, overrides and song library",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Access code exchange"},
        {"name": "Schedule", "description": "Materialized Sunday rota"},
        {"name": "Teams", "description": "Worship team roster"},
        {"name": "Overrides", "description": "Manual per-date assignments"},
        {"name": "Swaps", "description": "Swap request lifecycle"},
        {"name": "Songs", "description": "Song library"}
    ],
    "paths": {
        "/auth/access": {
            "post": {
                "tags": ["Auth"],
                "summary": "Exchange an access code for a session token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AccessRequest"}}
                ],
                "responses": {
                    "200": {"description": "Session token"},
                    "401": {"description": "Invalid access code"}
                }
            }
        },
        "/schedule": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Get the materialized schedule",
                "responses": {
                    "200": {"description": "Every Sunday from today through the end of next year plus special dates"}
                }
            }
        },
        "/schedule/export": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Export the schedule as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/teams": {
            "get": {
                "tags": ["Teams"],
                "summary": "List teams in rotation order",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Teams"],
                "summary": "Create a team",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TeamRequest"}}
                ],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/teams/{id}": {
            "get": {
                "tags": ["Teams"],
                "summary": "Get a team",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "put": {
                "tags": ["Teams"],
                "summary": "Update a team",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TeamRequest"}}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["Teams"],
                "summary": "Delete a team",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"204": {"description": "Deleted"}}
            }
        },
        "/overrides": {
            "get": {
                "tags": ["Overrides"],
                "summary": "List manual overrides",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/overrides/{date}": {
            "put": {
                "tags": ["Overrides"],
                "summary": "Pin a team onto a date",
                "parameters": [
                    {"name": "date", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/OverrideRequest"}}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["Overrides"],
                "summary": "Remove the override for a date",
                "parameters": [{"name": "date", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}}
            }
        },
        "/swaps": {
            "get": {
                "tags": ["Swaps"],
                "summary": "List swap requests in creation order",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Swaps"],
                "summary": "Create a pending swap request",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSwapRequest"}}
                ],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/swaps/{id}/status": {
            "patch": {
                "tags": ["Swaps"],
                "summary": "Approve or reject a pending swap request",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SwapDecisionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Request already finalized"}
                }
            }
        },
        "/songs": {
            "get": {
                "tags": ["Songs"],
                "summary": "List songs",
                "parameters": [{"name": "search", "in": "query", "type": "string"}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Songs"],
                "summary": "Add or update a song",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SongRequest"}}
                ],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/songs/import": {
            "post": {
                "tags": ["Songs"],
                "summary": "Import a batch of songs",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/songs/export": {
            "get": {
                "tags": ["Songs"],
                "summary": "Export the song library",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/songs/{slug}": {
            "get": {
                "tags": ["Songs"],
                "summary": "Get a song by slug",
                "parameters": [{"name": "slug", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "put": {
                "tags": ["Songs"],
                "summary": "Update a song",
                "parameters": [
                    {"name": "slug", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SongRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "tags": ["Songs"],
                "summary": "Delete a song",
                "parameters": [{"name": "slug", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}}
            }
        }
    },
    "definitions": {
        "AccessRequest": {
            "type": "object",
            "properties": {"code": {"type": "string"}}
        },
        "TeamRequest": {
            "type": "object",
            "properties": {
                "leader": {"type": "string"},
                "members": {"type": "array", "items": {"type": "string"}}
            }
        },
        "OverrideRequest": {
            "type": "object",
            "properties": {"team_id": {"type": "integer"}}
        },
        "CreateSwapRequest": {
            "type": "object",
            "properties": {
                "from_team_id": {"type": "integer"},
                "to_team_id": {"type": "integer"},
                "from_date": {"type": "string"},
                "to_date": {"type": "string"}
            }
        },
        "SwapDecisionRequest": {
            "type": "object",
            "properties": {"status": {"type": "string", "enum": ["approved", "rejected"]}}
        },
        "SongRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "artist": {"type": "string"},
                "link1": {"type": "string"},
                "link2": {"type": "string"},
                "spotify": {"type": "string"}
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
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "per_page": {"type": "integer"},
                "total": {"type": "integer"}
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
