// Package docs registers the CaptionForge swagger spec with
// swaggo/gin-swagger. Hand-maintained in the shape `swag init` generates,
// since the generator itself isn't run as part of this build; keep it in
// sync with the `@Router`/`@Summary`/... annotations in internal/api by hand
// whenever a route changes.
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
        "/v1/pipeline/run": {
            "post": {
                "description": "Applies replacement rules, optional LLM refinement, and normalization to a transcript, then renders VTT/SRT/JSON captions.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pipeline"],
                "summary": "Run the refinement pipeline",
                "parameters": [
                    {
                        "description": "Transcript and optional per-run overrides",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/api.runRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.runResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/v1/runs": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns the 50 most recently persisted pipeline runs, newest first.",
                "produces": ["application/json"],
                "tags": ["runs"],
                "summary": "List pipeline runs",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/v1/runs/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns one persisted run record by its ID.",
                "produces": ["application/json"],
                "tags": ["runs"],
                "summary": "Get a pipeline run",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Run ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/store.Run"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "definitions": {
        "api.runRequest": {
            "type": "object",
            "required": ["transcript"],
            "properties": {
                "transcript": {"type": "object"},
                "replacementRules": {"type": "array", "items": {"type": "object"}},
                "normalization": {"type": "object"},
                "captions": {"type": "object"}
            }
        },
        "api.runResponse": {
            "type": "object",
            "properties": {
                "runId": {"type": "string"},
                "transcript": {"type": "object"},
                "captions": {"type": "object"},
                "replacement": {"type": "object"},
                "refinement": {"type": "object"},
                "normalization": {"type": "object"}
            }
        },
        "store.Run": {
            "type": "object",
            "properties": {
                "ID": {"type": "string"},
                "CreatedAt": {"type": "string"},
                "InputHash": {"type": "string"},
                "SegmentsIn": {"type": "integer"},
                "SegmentsModified": {"type": "integer"},
                "WordChangeCount": {"type": "integer"},
                "LLMUsed": {"type": "boolean"},
                "SegmentsUpdated": {"type": "integer"},
                "SpeakersIdentified": {"type": "integer"},
                "NormalizationSplits": {"type": "integer"},
                "VTTBytes": {"type": "integer"},
                "SRTBytes": {"type": "integer"},
                "JSONBytes": {"type": "integer"},
                "Status": {"type": "string"},
                "ErrorMessage": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported swagger info so callers can override it; values
// here mirror the @title/@version/@description/@BasePath annotations in
// cmd/captionforge/main.go's package comment.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "CaptionForge API",
	Description:      "Post-transcription refinement pipeline: rule-based replacement, LLM-driven refinement, segment normalization, and VTT/SRT/JSON caption rendering.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
