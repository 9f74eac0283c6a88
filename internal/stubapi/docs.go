package stubapi

import "github.com/swaggo/swag"

const docTemplate = `{
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
        "/predict": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["predict"],
                "summary": "Predict a price",
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/types.PredictRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.PredictResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.PredictResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Model and scaler readiness",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "types.PredictRequest": {
            "type": "object",
            "properties": {
                "property_type": {"type": "integer", "example": 0},
                "bhk": {"type": "integer", "example": 2},
                "size_sqft": {"type": "number", "example": 1000},
                "price_per_sqft": {"type": "number", "example": 5000},
                "furnished_status": {"type": "integer", "example": 0},
                "total_floors": {"type": "integer", "example": 5},
                "age_of_property": {"type": "integer", "example": 5},
                "nearby_schools": {"type": "integer", "example": 2},
                "nearby_hospitals": {"type": "integer", "example": 1},
                "public_transport": {"type": "integer", "example": 1},
                "parking_space": {"type": "integer", "example": 1},
                "security": {"type": "integer", "example": 1},
                "amenities": {"type": "integer", "example": 1},
                "facing": {"type": "integer", "example": 0},
                "owner_type": {"type": "integer", "example": 0},
                "availability_status": {"type": "integer", "example": 0}
            }
        },
        "types.PredictResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "predicted_price": {"type": "number", "example": 52.5},
                "predicted_price_crores": {"type": "number", "example": 0.53},
                "confidence_lower": {"type": "number", "example": 49.88},
                "confidence_upper": {"type": "number", "example": 55.13},
                "features_used": {"type": "integer", "example": 19},
                "model_accuracy": {"type": "string", "example": "98.09%"},
                "error": {"type": "string"}
            }
        },
        "types.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "healthy"},
                "model_loaded": {"type": "boolean", "example": true},
                "scaler_loaded": {"type": "boolean", "example": true}
            }
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "not found"},
                "code": {"type": "integer", "example": 404}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "homeprice stub API",
	Description:      "Development stand-in for the house price prediction service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
