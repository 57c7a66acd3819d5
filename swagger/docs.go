// Package swagger registers the OpenAPI document of the circulation API with swag,
// which echo-swagger serves under /swagger/*.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "schemes": {{ marshal .Schemes }},
    "paths": {
        "/assets/{assetId}/status": {
            "get": {"summary": "Current status of an asset", "parameters": [{"$ref": "#/parameters/assetId"}], "responses": {"200": {"description": "status", "schema": {"$ref": "#/definitions/Status"}}, "404": {"description": "unknown asset"}}},
            "put": {"summary": "Confirm the derived status", "parameters": [{"$ref": "#/parameters/assetId"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/SetStatusRequest"}}], "responses": {"204": {"description": "confirmed"}, "400": {"description": "unknown status"}, "409": {"description": "status contradicts records"}}}
        },
        "/assets/{assetId}/checked-out": {
            "get": {"summary": "Whether the asset has an active checkout", "parameters": [{"$ref": "#/parameters/assetId"}], "responses": {"200": {"description": "flag"}}}
        },
        "/assets/{assetId}/checkout": {
            "get": {"summary": "Latest checkout", "parameters": [{"$ref": "#/parameters/assetId"}], "responses": {"200": {"description": "checkout", "schema": {"$ref": "#/definitions/Checkout"}}, "404": {"description": "not checked out"}}},
            "post": {"summary": "Check out", "parameters": [{"$ref": "#/parameters/assetId"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CardRequest"}}], "responses": {"201": {"description": "checkout", "schema": {"$ref": "#/definitions/Checkout"}}, "404": {"description": "unknown asset or card"}, "409": {"description": "already checked out"}}}
        },
        "/assets/{assetId}/checkin": {
            "post": {"summary": "Check in and promote the earliest hold", "parameters": [{"$ref": "#/parameters/assetId"}], "responses": {"200": {"description": "result", "schema": {"$ref": "#/definitions/CheckInResult"}}, "404": {"description": "not checked out"}}}
        },
        "/assets/{assetId}/patron": {
            "get": {"summary": "Patron of the active checkout", "parameters": [{"$ref": "#/parameters/assetId"}], "responses": {"200": {"description": "patron"}, "404": {"description": "not checked out"}}}
        },
        "/assets/{assetId}/history": {
            "get": {"summary": "Checkout history, newest first", "parameters": [{"$ref": "#/parameters/assetId"}, {"$ref": "#/parameters/page"}, {"$ref": "#/parameters/size"}], "responses": {"200": {"description": "page"}}}
        },
        "/assets/{assetId}/holds": {
            "get": {"summary": "Hold queue", "parameters": [{"$ref": "#/parameters/assetId"}, {"$ref": "#/parameters/page"}, {"$ref": "#/parameters/size"}], "responses": {"200": {"description": "page"}}},
            "post": {"summary": "Place a hold", "parameters": [{"$ref": "#/parameters/assetId"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CardRequest"}}], "responses": {"201": {"description": "hold", "schema": {"$ref": "#/definitions/Hold"}}, "409": {"description": "rejected by hold policy"}}}
        },
        "/assets/{assetId}/holds/earliest": {
            "get": {"summary": "Head of the hold queue", "parameters": [{"$ref": "#/parameters/assetId"}], "responses": {"200": {"description": "hold", "schema": {"$ref": "#/definitions/Hold"}}, "404": {"description": "empty queue"}}}
        },
        "/assets/{assetId}/holds/promote": {
            "post": {"summary": "Promote the earliest hold to a checkout", "parameters": [{"$ref": "#/parameters/assetId"}], "responses": {"200": {"description": "promoted flag"}, "409": {"description": "checked out"}}}
        },
        "/checkouts": {
            "get": {"summary": "Active checkouts", "parameters": [{"$ref": "#/parameters/page"}, {"$ref": "#/parameters/size"}], "responses": {"200": {"description": "page"}}}
        },
        "/checkouts/{checkoutId}": {
            "get": {"summary": "Checkout by id", "parameters": [{"in": "path", "name": "checkoutId", "type": "integer", "required": true}], "responses": {"200": {"description": "checkout", "schema": {"$ref": "#/definitions/Checkout"}}, "404": {"description": "unknown checkout"}}}
        },
        "/holds/{holdId}/patron": {
            "get": {"summary": "Patron of a hold", "parameters": [{"$ref": "#/parameters/holdId"}], "responses": {"200": {"description": "patron"}, "404": {"description": "unknown hold"}}}
        },
        "/holds/{holdId}/placed": {
            "get": {"summary": "Placement time of a hold", "parameters": [{"$ref": "#/parameters/holdId"}], "responses": {"200": {"description": "time"}, "404": {"description": "unknown hold"}}}
        }
    },
    "parameters": {
        "assetId": {"in": "path", "name": "assetId", "type": "integer", "required": true},
        "holdId": {"in": "path", "name": "holdId", "type": "integer", "required": true},
        "page": {"in": "query", "name": "page", "type": "integer", "minimum": 0},
        "size": {"in": "query", "name": "size", "type": "integer", "minimum": 0}
    },
    "definitions": {
        "Status": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}}},
        "SetStatusRequest": {"type": "object", "required": ["status"], "properties": {"status": {"type": "string"}}},
        "CardRequest": {"type": "object", "required": ["cardId"], "properties": {"cardId": {"type": "integer"}}},
        "Checkout": {"type": "object", "properties": {"id": {"type": "integer"}, "assetId": {"type": "integer"}, "cardId": {"type": "integer"}, "since": {"type": "string", "format": "date-time"}, "until": {"type": "string", "format": "date-time"}}},
        "Hold": {"type": "object", "properties": {"id": {"type": "integer"}, "assetId": {"type": "integer"}, "cardId": {"type": "integer"}, "holdPlaced": {"type": "string", "format": "date-time"}}},
        "CheckInResult": {"type": "object", "properties": {"promotedHold": {"type": "boolean"}, "hold": {"$ref": "#/definitions/Hold"}, "checkout": {"$ref": "#/definitions/Checkout"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Circulation API",
	Description:      "Checkout, check-in and hold queues of lendable assets.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
