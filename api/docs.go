// Package api contains the Swagger documentation of the backend. It is
// served under /docs.
//
// Regenerate it with go generate after changing the annotations of a
// handler.
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
        "/healthz": {
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "General"
                ],
                "summary": "Get health",
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/healthz.HealthResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/budget-categories": {
            "get": {
                "description": "Returns the budget categories in display order",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budget Categories"
                ],
                "summary": "Get budget categories",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetCategoryListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetCategoryListResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Budget Categories"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/budget-categories/{id}": {
            "get": {
                "description": "Returns a specific budget category",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budget Categories"
                ],
                "summary": "Get budget category",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetCategoryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetCategoryResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetCategoryResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetCategoryResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Budget Categories"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/budget-items": {
            "get": {
                "description": "Returns a list of budget items",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budget Items"
                ],
                "summary": "Get budget items",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by budget ID",
                        "name": "budget",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetItemListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetItemListResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetItemListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetItemListResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates new budget items. Budget and budget category must exist.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budget Items"
                ],
                "summary": "Create budget items",
                "parameters": [
                    {
                        "description": "Budget items",
                        "name": "budgetItems",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.BudgetItemEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetItemCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetItemCreateResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetItemCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetItemCreateResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Budget Items"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/budget-items/{id}": {
            "get": {
                "description": "Returns a specific budget item",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budget Items"
                ],
                "summary": "Get budget item",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetItemResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetItemResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetItemResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetItemResponse"
                        }
                    }
                }
            },
            "put": {
                "description": "Creates the budget item with the ID from the path or replaces all fields of the existing one.\nFields missing in the request body are reset to their default.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budget Items"
                ],
                "summary": "Create or replace budget item",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Budget item",
                        "name": "budgetItem",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetItemEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetItemResponse"
                        }
                    },
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetItemResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetItemResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetItemResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetItemResponse"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a budget item permanently",
                "tags": [
                    "Budget Items"
                ],
                "summary": "Delete budget item",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs.\nPUT creates the item when it does not exist, so unknown IDs are allowed.",
                "tags": [
                    "Budget Items"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "patch": {
                "description": "Sets the amount spent for a budget item. All other fields in the request body are ignored.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budget Items"
                ],
                "summary": "Update amount spent",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Amount spent",
                        "name": "budgetItem",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetItemSpentEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetItemResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetItemResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetItemResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetItemResponse"
                        }
                    }
                }
            }
        },
        "/v1/budgets": {
            "get": {
                "description": "Returns a list of budgets with their items",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Get budgets",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by team ID",
                        "name": "team",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetListResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates new budgets. The team must exist and must not have a budget yet.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Create budgets",
                "parameters": [
                    {
                        "description": "Budgets",
                        "name": "budgets",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.BudgetEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetCreateResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetCreateResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Budgets"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/budgets/{id}": {
            "get": {
                "description": "Returns a specific budget with its items",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Get budget",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Budgets"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/dashboard": {
            "get": {
                "description": "Returns the budget overview over all organizations or a single one.\nAn unknown organization results in an empty dashboard.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Dashboard"
                ],
                "summary": "Get dashboard",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Restrict the dashboard to this organization",
                        "name": "organization",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.DashboardResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.DashboardResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.DashboardResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Dashboard"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/departments": {
            "get": {
                "description": "Returns a list of departments",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Departments"
                ],
                "summary": "Get departments",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by organization ID",
                        "name": "organization",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.DepartmentListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.DepartmentListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.DepartmentListResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates new departments. The organization must exist.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Departments"
                ],
                "summary": "Create departments",
                "parameters": [
                    {
                        "description": "Departments",
                        "name": "departments",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.DepartmentEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.DepartmentCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.DepartmentCreateResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.DepartmentCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.DepartmentCreateResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Departments"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/departments/{id}": {
            "get": {
                "description": "Returns a specific department",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Departments"
                ],
                "summary": "Get department",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.DepartmentResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.DepartmentResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.DepartmentResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.DepartmentResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Departments"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/departments/{id}/overview": {
            "get": {
                "description": "Returns the department budget split by manager and team",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Departments"
                ],
                "summary": "Get department overview",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.DepartmentOverviewResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.DepartmentOverviewResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.DepartmentOverviewResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.DepartmentOverviewResponse"
                        }
                    }
                }
            }
        },
        "/v1/departments/{id}/summary": {
            "get": {
                "description": "Returns the budget aggregation of a department",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Departments"
                ],
                "summary": "Get department summary",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.SummaryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.SummaryResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.SummaryResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.SummaryResponse"
                        }
                    }
                }
            }
        },
        "/v1/managers": {
            "get": {
                "description": "Returns a list of managers",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Managers"
                ],
                "summary": "Get managers",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by department ID",
                        "name": "department",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ManagerListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ManagerListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.ManagerListResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates new managers. The department must exist.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Managers"
                ],
                "summary": "Create managers",
                "parameters": [
                    {
                        "description": "Managers",
                        "name": "managers",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.ManagerEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.ManagerCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ManagerCreateResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.ManagerCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.ManagerCreateResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Managers"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/managers/{id}": {
            "get": {
                "description": "Returns a specific manager",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Managers"
                ],
                "summary": "Get manager",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ManagerResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ManagerResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.ManagerResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.ManagerResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Managers"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/managers/{id}/summary": {
            "get": {
                "description": "Returns the budget aggregation over the teams of a manager",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Managers"
                ],
                "summary": "Get manager summary",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.SummaryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.SummaryResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.SummaryResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.SummaryResponse"
                        }
                    }
                }
            }
        },
        "/v1/organizations": {
            "get": {
                "description": "Returns a list of all organizations, ordered by name",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Organizations"
                ],
                "summary": "Get organizations",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.OrganizationListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.OrganizationListResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates new organizations",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Organizations"
                ],
                "summary": "Create organizations",
                "parameters": [
                    {
                        "description": "Organizations",
                        "name": "organizations",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.OrganizationEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.OrganizationCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.OrganizationCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.OrganizationCreateResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Organizations"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/organizations/{id}": {
            "get": {
                "description": "Returns a specific organization",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Organizations"
                ],
                "summary": "Get organization",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.OrganizationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.OrganizationResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.OrganizationResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.OrganizationResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Organizations"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/organizations/{id}/summary": {
            "get": {
                "description": "Returns the budget aggregation of an organization",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Organizations"
                ],
                "summary": "Get organization summary",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.SummaryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.SummaryResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.SummaryResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.SummaryResponse"
                        }
                    }
                }
            }
        },
        "/v1/seed": {
            "post": {
                "description": "Creates the sample organization with its departments, managers, teams and budgets.\nNothing is created if any organization exists.",
                "tags": [
                    "Seed"
                ],
                "summary": "Create sample data",
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "204": {
                        "description": "No Content"
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Seed"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/teams": {
            "get": {
                "description": "Returns a list of teams",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Teams"
                ],
                "summary": "Get teams",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by manager ID",
                        "name": "manager",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by glob pattern on the name",
                        "name": "match",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TeamListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TeamListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TeamListResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates new teams. The manager must exist. Budgets are linked with PUT /v1/teams/{id}/budget.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Teams"
                ],
                "summary": "Create teams",
                "parameters": [
                    {
                        "description": "Teams",
                        "name": "teams",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.TeamEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.TeamCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TeamCreateResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.TeamCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TeamCreateResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Teams"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/teams/{id}": {
            "get": {
                "description": "Returns a specific team",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Teams"
                ],
                "summary": "Get team",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TeamResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TeamResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.TeamResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TeamResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Teams"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/teams/{id}/budget": {
            "put": {
                "description": "Sets the budget of the team. The budget must belong to the team.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Teams"
                ],
                "summary": "Link team budget",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Budget to link",
                        "name": "budget",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.TeamBudgetEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TeamResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TeamResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.TeamResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TeamResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Teams"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/teams/{id}/summary": {
            "get": {
                "description": "Returns the budget aggregation of the budget linked to a team",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Teams"
                ],
                "summary": "Get team summary",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.SummaryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.SummaryResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.SummaryResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.SummaryResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "healthz.HealthResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "sql: database is closed"
                }
            }
        },
        "types.Money": {
            "type": "object",
            "properties": {
                "amount": {
                    "description": "The exact amount",
                    "type": "number",
                    "example": 600000
                },
                "formatted": {
                    "description": "The amount formatted for display",
                    "type": "string",
                    "example": "$600,000.00"
                }
            }
        },
        "v1.Budget": {
            "type": "object",
            "properties": {
                "budgetItems": {
                    "description": "Items of the budget",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.BudgetItem"
                    }
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2024-04-02T19:28:44.491514Z"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "links": {
                    "$ref": "#/definitions/v1.BudgetLinks"
                },
                "teamId": {
                    "description": "ID of the team the budget belongs to",
                    "type": "string",
                    "example": "0b5a7e3c-0a0f-4f4e-9d8d-5f0c1c2b3a4d"
                },
                "totalAmount": {
                    "description": "Total amount of the budget",
                    "type": "number",
                    "example": 50000,
                    "minimum": 0,
                    "maximum": 1000000000000.0,
                    "default": 0
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2024-04-17T20:14:01.048145Z"
                },
                "year": {
                    "description": "Fiscal year of the budget",
                    "type": "integer",
                    "example": 2024
                }
            }
        },
        "v1.BudgetCategory": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2024-04-02T19:28:44.491514Z"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "links": {
                    "$ref": "#/definitions/v1.BudgetCategoryLinks"
                },
                "name": {
                    "description": "Name of the category",
                    "type": "string",
                    "example": "Conferences"
                },
                "position": {
                    "description": "Display order",
                    "type": "integer",
                    "example": 2
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2024-04-17T20:14:01.048145Z"
                }
            }
        },
        "v1.BudgetCategoryLinks": {
            "type": "object",
            "properties": {}
        },
        "v1.BudgetCategoryListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of budget categories",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.BudgetCategory"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.BudgetCategoryResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "The budget category",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.BudgetCategory"
                        }
                    ]
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.BudgetCreateResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of created budgets",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.BudgetResponse"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.BudgetEditable": {
            "type": "object",
            "properties": {
                "teamId": {
                    "description": "ID of the team the budget belongs to",
                    "type": "string",
                    "example": "0b5a7e3c-0a0f-4f4e-9d8d-5f0c1c2b3a4d"
                },
                "totalAmount": {
                    "description": "Total amount of the budget",
                    "type": "number",
                    "example": 50000,
                    "minimum": 0,
                    "maximum": 1000000000000.0,
                    "default": 0
                },
                "year": {
                    "description": "Fiscal year of the budget",
                    "type": "integer",
                    "example": 2024
                }
            }
        },
        "v1.BudgetItem": {
            "type": "object",
            "properties": {
                "amount": {
                    "description": "Allocated amount",
                    "type": "number",
                    "example": 15000,
                    "minimum": 0,
                    "maximum": 1000000000000.0,
                    "default": 0
                },
                "budgetCategoryId": {
                    "description": "ID of the budget category",
                    "type": "string",
                    "example": "9ad2bb4e-2a43-4dc0-a4b8-fd8b55fd7d8e"
                },
                "budgetId": {
                    "description": "ID of the budget the item belongs to",
                    "type": "string",
                    "example": "3f1a9c2e-4b7d-4e8a-9f6c-1d2e3f4a5b6c"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2024-04-02T19:28:44.491514Z"
                },
                "description": {
                    "description": "Description of the item",
                    "type": "string",
                    "example": "Budget allocation for Training and Courses"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "links": {
                    "$ref": "#/definitions/v1.BudgetItemLinks"
                },
                "overBudget": {
                    "description": "More was spent than allocated",
                    "type": "boolean",
                    "example": false
                },
                "remaining": {
                    "description": "Amount minus spent",
                    "type": "number",
                    "example": 10799.5
                },
                "spent": {
                    "description": "Amount spent",
                    "type": "number",
                    "example": 4200.5,
                    "maximum": 1000000000000.0,
                    "default": 0
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2024-04-17T20:14:01.048145Z"
                }
            }
        },
        "v1.BudgetItemCreateResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of created budget items",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.BudgetItemResponse"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.BudgetItemEditable": {
            "type": "object",
            "properties": {
                "amount": {
                    "description": "Allocated amount",
                    "type": "number",
                    "example": 15000,
                    "minimum": 0,
                    "maximum": 1000000000000.0,
                    "default": 0
                },
                "budgetCategoryId": {
                    "description": "ID of the budget category",
                    "type": "string",
                    "example": "9ad2bb4e-2a43-4dc0-a4b8-fd8b55fd7d8e"
                },
                "budgetId": {
                    "description": "ID of the budget the item belongs to",
                    "type": "string",
                    "example": "3f1a9c2e-4b7d-4e8a-9f6c-1d2e3f4a5b6c"
                },
                "description": {
                    "description": "Description of the item",
                    "type": "string",
                    "example": "Budget allocation for Training and Courses"
                },
                "spent": {
                    "description": "Amount spent",
                    "type": "number",
                    "example": 4200.5,
                    "maximum": 1000000000000.0,
                    "default": 0
                }
            }
        },
        "v1.BudgetItemLinks": {
            "type": "object",
            "properties": {}
        },
        "v1.BudgetItemListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of budget items",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.BudgetItem"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.BudgetItemResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "The budget item",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.BudgetItem"
                        }
                    ]
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.BudgetItemSpentEditable": {
            "type": "object",
            "properties": {
                "spent": {
                    "description": "Amount spent",
                    "type": "number",
                    "example": 4200.5,
                    "maximum": 1000000000000.0
                }
            }
        },
        "v1.BudgetLinks": {
            "type": "object",
            "properties": {}
        },
        "v1.BudgetListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of budgets",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Budget"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.BudgetResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "The budget",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Budget"
                        }
                    ]
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.CategoryTotal": {
            "type": "object",
            "properties": {
                "allocated": {
                    "description": "Sum of the allocated amounts",
                    "allOf": [
                        {
                            "$ref": "#/definitions/types.Money"
                        }
                    ]
                },
                "categoryId": {
                    "description": "ID of the budget category",
                    "type": "string",
                    "example": "9ad2bb4e-2a43-4dc0-a4b8-fd8b55fd7d8e"
                },
                "name": {
                    "description": "Name of the budget category",
                    "type": "string",
                    "example": "Training and Courses"
                },
                "spent": {
                    "description": "Sum of the amounts spent",
                    "allOf": [
                        {
                            "$ref": "#/definitions/types.Money"
                        }
                    ]
                }
            }
        },
        "v1.Dashboard": {
            "type": "object",
            "properties": {
                "categories": {
                    "description": "Distribution over the budget categories",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.CategoryTotal"
                    }
                },
                "departments": {
                    "description": "Number of departments",
                    "type": "integer",
                    "example": 5
                },
                "organizations": {
                    "description": "Number of organizations",
                    "type": "integer",
                    "example": 1
                },
                "teams": {
                    "description": "Number of teams",
                    "type": "integer",
                    "example": 13
                },
                "totalAllocated": {
                    "description": "Sum over all categories",
                    "allOf": [
                        {
                            "$ref": "#/definitions/types.Money"
                        }
                    ]
                },
                "totalBudget": {
                    "description": "Sum of the organization budgets",
                    "allOf": [
                        {
                            "$ref": "#/definitions/types.Money"
                        }
                    ]
                }
            }
        },
        "v1.DashboardResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "The dashboard",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Dashboard"
                        }
                    ]
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.Department": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2024-04-02T19:28:44.491514Z"
                },
                "departmentHeadName": {
                    "description": "Name of the department head",
                    "type": "string",
                    "example": "Michael Chen"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "links": {
                    "$ref": "#/definitions/v1.DepartmentLinks"
                },
                "name": {
                    "description": "Name of the department",
                    "type": "string",
                    "example": "Engineering"
                },
                "organizationId": {
                    "description": "ID of the organization the department belongs to",
                    "type": "string",
                    "example": "550dc009-cea6-4c12-b2a5-03446eb7b7cf"
                },
                "totalBudget": {
                    "description": "Total budget of the department",
                    "type": "number",
                    "example": 2000000,
                    "minimum": 0,
                    "maximum": 1000000000000.0,
                    "default": 0
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2024-04-17T20:14:01.048145Z"
                }
            }
        },
        "v1.DepartmentCreateResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of created departments",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.DepartmentResponse"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.DepartmentEditable": {
            "type": "object",
            "properties": {
                "departmentHeadName": {
                    "description": "Name of the department head",
                    "type": "string",
                    "example": "Michael Chen"
                },
                "name": {
                    "description": "Name of the department",
                    "type": "string",
                    "example": "Engineering"
                },
                "organizationId": {
                    "description": "ID of the organization the department belongs to",
                    "type": "string",
                    "example": "550dc009-cea6-4c12-b2a5-03446eb7b7cf"
                },
                "totalBudget": {
                    "description": "Total budget of the department",
                    "type": "number",
                    "example": 2000000,
                    "minimum": 0,
                    "maximum": 1000000000000.0,
                    "default": 0
                }
            }
        },
        "v1.DepartmentLinks": {
            "type": "object",
            "properties": {}
        },
        "v1.DepartmentListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of departments",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Department"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.DepartmentOverview": {
            "type": "object",
            "properties": {
                "allocated": {
                    "description": "Sum of all team budgets",
                    "allOf": [
                        {
                            "$ref": "#/definitions/types.Money"
                        }
                    ]
                },
                "department": {
                    "description": "The department",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Department"
                        }
                    ]
                },
                "distribution": {
                    "description": "Chart data",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.DistributionEntry"
                    }
                },
                "managers": {
                    "description": "Budget split by manager",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.ManagerAllocation"
                    }
                },
                "totalBudget": {
                    "description": "Budget of the department",
                    "allOf": [
                        {
                            "$ref": "#/definitions/types.Money"
                        }
                    ]
                },
                "unallocated": {
                    "description": "Part of the budget not assigned to any team",
                    "allOf": [
                        {
                            "$ref": "#/definitions/types.Money"
                        }
                    ]
                }
            }
        },
        "v1.DepartmentOverviewResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "The overview",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.DepartmentOverview"
                        }
                    ]
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "there is no department matching your query"
                }
            }
        },
        "v1.DepartmentResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "The department",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Department"
                        }
                    ]
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.DistributionEntry": {
            "type": "object",
            "properties": {
                "name": {
                    "description": "Name of the manager or \"Unallocated\"",
                    "type": "string",
                    "example": "Alex Kumar"
                },
                "value": {
                    "description": "Amount",
                    "allOf": [
                        {
                            "$ref": "#/definitions/types.Money"
                        }
                    ]
                }
            }
        },
        "v1.Manager": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2024-04-02T19:28:44.491514Z"
                },
                "departmentId": {
                    "description": "ID of the department the manager belongs to",
                    "type": "string",
                    "example": "f8e4b5c4-7e5f-4d1e-9c4a-2a6f7e0f8b1d"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "links": {
                    "$ref": "#/definitions/v1.ManagerLinks"
                },
                "name": {
                    "description": "Name of the manager",
                    "type": "string",
                    "example": "Alex Kumar"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2024-04-17T20:14:01.048145Z"
                }
            }
        },
        "v1.ManagerAllocation": {
            "type": "object",
            "properties": {
                "manager": {
                    "description": "The manager",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Manager"
                        }
                    ]
                },
                "percent": {
                    "description": "Share of the department budget in percent, one decimal place",
                    "type": "number",
                    "example": 65
                },
                "teams": {
                    "description": "Teams of the manager with their budgets",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.TeamBudget"
                    }
                },
                "totalAmount": {
                    "description": "Sum of the team budgets",
                    "allOf": [
                        {
                            "$ref": "#/definitions/types.Money"
                        }
                    ]
                }
            }
        },
        "v1.ManagerCreateResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of created managers",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.ManagerResponse"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.ManagerEditable": {
            "type": "object",
            "properties": {
                "departmentId": {
                    "description": "ID of the department the manager belongs to",
                    "type": "string",
                    "example": "f8e4b5c4-7e5f-4d1e-9c4a-2a6f7e0f8b1d"
                },
                "name": {
                    "description": "Name of the manager",
                    "type": "string",
                    "example": "Alex Kumar"
                }
            }
        },
        "v1.ManagerLinks": {
            "type": "object",
            "properties": {}
        },
        "v1.ManagerListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of managers",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Manager"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.ManagerResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "The manager",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Manager"
                        }
                    ]
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.Organization": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2024-04-02T19:28:44.491514Z"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "leaderName": {
                    "description": "Name of the organization leader",
                    "type": "string",
                    "example": "Sarah Anderson"
                },
                "links": {
                    "$ref": "#/definitions/v1.OrganizationLinks"
                },
                "name": {
                    "description": "Name of the organization",
                    "type": "string",
                    "example": "SampleTestOrg"
                },
                "totalBudget": {
                    "description": "Total budget of the organization",
                    "type": "number",
                    "example": 5000000,
                    "minimum": 0,
                    "maximum": 1000000000000.0,
                    "default": 0
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2024-04-17T20:14:01.048145Z"
                }
            }
        },
        "v1.OrganizationCreateResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of created organizations",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.OrganizationResponse"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.OrganizationEditable": {
            "type": "object",
            "properties": {
                "leaderName": {
                    "description": "Name of the organization leader",
                    "type": "string",
                    "example": "Sarah Anderson"
                },
                "name": {
                    "description": "Name of the organization",
                    "type": "string",
                    "example": "SampleTestOrg"
                },
                "totalBudget": {
                    "description": "Total budget of the organization",
                    "type": "number",
                    "example": 5000000,
                    "minimum": 0,
                    "maximum": 1000000000000.0,
                    "default": 0
                }
            }
        },
        "v1.OrganizationLinks": {
            "type": "object",
            "properties": {}
        },
        "v1.OrganizationListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of organizations",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Organization"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.OrganizationResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "The organization",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Organization"
                        }
                    ]
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.Summary": {
            "type": "object",
            "properties": {
                "allocated": {
                    "description": "Sum of all budget item amounts",
                    "allOf": [
                        {
                            "$ref": "#/definitions/types.Money"
                        }
                    ]
                },
                "budgeted": {
                    "description": "Sum of the nominal budgets of the direct children",
                    "allOf": [
                        {
                            "$ref": "#/definitions/types.Money"
                        }
                    ]
                },
                "categories": {
                    "description": "Distribution over the budget categories",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.CategoryTotal"
                    }
                },
                "departments": {
                    "description": "Number of departments in scope",
                    "type": "integer",
                    "example": 5
                },
                "id": {
                    "description": "ID of the resource",
                    "type": "string",
                    "example": "f8e4b5c4-7e5f-4d1e-9c4a-2a6f7e0f8b1d"
                },
                "links": {
                    "$ref": "#/definitions/v1.SummaryLinks"
                },
                "managers": {
                    "description": "Number of managers in scope",
                    "type": "integer",
                    "example": 8
                },
                "name": {
                    "description": "Name of the resource",
                    "type": "string",
                    "example": "Engineering"
                },
                "overBudget": {
                    "description": "More was spent than budgeted",
                    "type": "boolean",
                    "example": false
                },
                "remaining": {
                    "description": "Total budget minus spent",
                    "allOf": [
                        {
                            "$ref": "#/definitions/types.Money"
                        }
                    ]
                },
                "scope": {
                    "description": "Level of the organizational tree",
                    "type": "string",
                    "example": "department"
                },
                "spent": {
                    "description": "Sum of all budget item spendings",
                    "allOf": [
                        {
                            "$ref": "#/definitions/types.Money"
                        }
                    ]
                },
                "teams": {
                    "description": "Number of teams in scope",
                    "type": "integer",
                    "example": 13
                },
                "totalBudget": {
                    "description": "Nominal budget",
                    "allOf": [
                        {
                            "$ref": "#/definitions/types.Money"
                        }
                    ]
                },
                "unallocated": {
                    "description": "Part of the budget not assigned to children. Negative if overcommitted.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/types.Money"
                        }
                    ]
                }
            }
        },
        "v1.SummaryLinks": {
            "type": "object",
            "properties": {}
        },
        "v1.SummaryResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "The summary",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Summary"
                        }
                    ]
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "there is no department matching your query"
                }
            }
        },
        "v1.Team": {
            "type": "object",
            "properties": {
                "budgetId": {
                    "description": "ID of the linked budget, null if there is none",
                    "type": "string",
                    "example": "3f1a9c2e-4b7d-4e8a-9f6c-1d2e3f4a5b6c"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2024-04-02T19:28:44.491514Z"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "links": {
                    "$ref": "#/definitions/v1.TeamLinks"
                },
                "managerId": {
                    "description": "ID of the manager leading the team",
                    "type": "string",
                    "example": "1e7d6c11-bd1d-4c35-8f4e-3a0c6b1f2e44"
                },
                "name": {
                    "description": "Name of the team",
                    "type": "string",
                    "example": "Frontend Team"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2024-04-17T20:14:01.048145Z"
                }
            }
        },
        "v1.TeamBudget": {
            "type": "object",
            "properties": {
                "team": {
                    "description": "The team",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Team"
                        }
                    ]
                },
                "totalAmount": {
                    "description": "Total amount of the linked budget, zero if there is none",
                    "allOf": [
                        {
                            "$ref": "#/definitions/types.Money"
                        }
                    ]
                }
            }
        },
        "v1.TeamBudgetEditable": {
            "type": "object",
            "properties": {
                "budgetId": {
                    "description": "ID of the budget to link. It must belong to the team.",
                    "type": "string",
                    "example": "3f1a9c2e-4b7d-4e8a-9f6c-1d2e3f4a5b6c"
                }
            }
        },
        "v1.TeamCreateResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of created teams",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.TeamResponse"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.TeamEditable": {
            "type": "object",
            "properties": {
                "managerId": {
                    "description": "ID of the manager leading the team",
                    "type": "string",
                    "example": "1e7d6c11-bd1d-4c35-8f4e-3a0c6b1f2e44"
                },
                "name": {
                    "description": "Name of the team",
                    "type": "string",
                    "example": "Frontend Team"
                }
            }
        },
        "v1.TeamLinks": {
            "type": "object",
            "properties": {}
        },
        "v1.TeamListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of teams",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Team"
                    }
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.TeamResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "The team",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Team"
                        }
                    ]
                },
                "error": {
                    "description": "The error, if any occurred",
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.httpError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
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
