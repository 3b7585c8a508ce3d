// Package api contains the OpenAPI documentation of the backend.
//
// It is regenerated with "swag init" from the annotations of the handlers.
package api

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
        "/": {
            "get": {
                "tags": [
                    "General"
                ],
                "summary": "API root",
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "tags": [
                    "General"
                ],
                "summary": "Get health",
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            }
        },
        "/version": {
            "get": {
                "tags": [
                    "General"
                ],
                "summary": "API version",
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            }
        },
        "/v1": {
            "get": {
                "tags": [
                    "v1"
                ],
                "summary": "v1 API",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            },
            "delete": {
                "tags": [
                    "v1"
                ],
                "summary": "Delete all data of the user",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            }
        },
        "/v1/account": {
            "get": {
                "tags": [
                    "Account"
                ],
                "summary": "Get own account",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            },
            "post": {
                "tags": [
                    "Account"
                ],
                "summary": "Create own account",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            },
            "patch": {
                "tags": [
                    "Account"
                ],
                "summary": "Update own account",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            }
        },
        "/v1/balance": {
            "get": {
                "tags": [
                    "Balance"
                ],
                "summary": "Get balance",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            }
        },
        "/v1/budgets": {
            "get": {
                "tags": [
                    "Budgets"
                ],
                "summary": "Get budgets",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            },
            "post": {
                "tags": [
                    "Budgets"
                ],
                "summary": "Create budget",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            }
        },
        "/v1/budgets/{id}": {
            "get": {
                "tags": [
                    "Budgets"
                ],
                "summary": "Get budget",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            },
            "patch": {
                "tags": [
                    "Budgets"
                ],
                "summary": "Update budget",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            },
            "delete": {
                "tags": [
                    "Budgets"
                ],
                "summary": "Delete budget",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            }
        },
        "/v1/categories": {
            "get": {
                "tags": [
                    "Catalog"
                ],
                "summary": "Get categories",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            }
        },
        "/v1/themes": {
            "get": {
                "tags": [
                    "Catalog"
                ],
                "summary": "Get themes",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            }
        },
        "/v1/match-rules": {
            "get": {
                "tags": [
                    "MatchRules"
                ],
                "summary": "Get match rules",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            },
            "post": {
                "tags": [
                    "MatchRules"
                ],
                "summary": "Create match rule",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            }
        },
        "/v1/match-rules/{id}": {
            "get": {
                "tags": [
                    "MatchRules"
                ],
                "summary": "Get match rule",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            },
            "patch": {
                "tags": [
                    "MatchRules"
                ],
                "summary": "Update match rule",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            },
            "delete": {
                "tags": [
                    "MatchRules"
                ],
                "summary": "Delete match rule",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            }
        },
        "/v1/recurring-bills": {
            "get": {
                "tags": [
                    "Recurring Bills"
                ],
                "summary": "Get recurring bills",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            },
            "post": {
                "tags": [
                    "Recurring Bills"
                ],
                "summary": "Create recurring bill",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            }
        },
        "/v1/recurring-bills/{id}": {
            "get": {
                "tags": [
                    "Recurring Bills"
                ],
                "summary": "Get recurring bill",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            },
            "patch": {
                "tags": [
                    "Recurring Bills"
                ],
                "summary": "Update recurring bill",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            },
            "delete": {
                "tags": [
                    "Recurring Bills"
                ],
                "summary": "Delete recurring bill",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            }
        },
        "/v1/recurring-bills/{id}/pay": {
            "post": {
                "tags": [
                    "Recurring Bills"
                ],
                "summary": "Pay recurring bill",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            }
        },
        "/v1/transactions": {
            "get": {
                "tags": [
                    "Transactions"
                ],
                "summary": "Get transactions",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            },
            "post": {
                "tags": [
                    "Transactions"
                ],
                "summary": "Create transaction",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            }
        },
        "/v1/transactions/{id}": {
            "get": {
                "tags": [
                    "Transactions"
                ],
                "summary": "Get transaction",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            },
            "patch": {
                "tags": [
                    "Transactions"
                ],
                "summary": "Update transaction",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            },
            "delete": {
                "tags": [
                    "Transactions"
                ],
                "summary": "Delete transaction",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "default": {
                        "description": "See the error field of the response"
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
