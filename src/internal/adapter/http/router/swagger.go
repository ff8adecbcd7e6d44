package router

import (
	"fmt"
	"net/http"
)

func registerSwaggerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	mux.HandleFunc("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	mux.HandleFunc("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Bank Ledger API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Bank Ledger API",
    "version": "1.0.0"
  },
  "paths": {
    "/clients": {
      "post": {
        "summary": "Register client",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["name", "birthDate", "cpf", "address"],
                "properties": {
                  "name": {"type": "string"},
                  "birthDate": {"type": "string", "example": "02-01-1990"},
                  "cpf": {"type": "string", "pattern": "^[0-9]+$"},
                  "address": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {
          "201": {"description": "Created"},
          "400": {"description": "Validation error"},
          "401": {"description": "Unauthorized"},
          "409": {"description": "CPF already registered"}
        }
      },
      "get": {
        "summary": "List clients",
        "security": [{"BasicAuth": []}],
        "responses": {
          "200": {"description": "OK"},
          "401": {"description": "Unauthorized"}
        }
      }
    },
    "/clients/{cpf}": {
      "get": {
        "summary": "Get client",
        "security": [{"BasicAuth": []}],
        "parameters": [
          {"name": "cpf", "in": "path", "required": true, "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {"description": "OK"},
          "404": {"description": "Client not found"}
        }
      }
    },
    "/accounts": {
      "post": {
        "summary": "Open checking account",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["cpf"],
                "properties": {
                  "cpf": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {
          "201": {"description": "Created"},
          "400": {"description": "Validation error"},
          "404": {"description": "Client not found"}
        }
      },
      "get": {
        "summary": "List accounts",
        "security": [{"BasicAuth": []}],
        "responses": {
          "200": {"description": "OK"}
        }
      }
    },
    "/accounts/{number}": {
      "get": {
        "summary": "Get account",
        "security": [{"BasicAuth": []}],
        "parameters": [
          {"name": "number", "in": "path", "required": true, "schema": {"type": "integer"}}
        ],
        "responses": {
          "200": {"description": "OK"},
          "404": {"description": "Account not found"}
        }
      }
    },
    "/statement": {
      "get": {
        "summary": "Account statement",
        "security": [{"BasicAuth": []}],
        "parameters": [
          {"name": "cpf", "in": "query", "required": true, "schema": {"type": "string"}},
          {"name": "accountNumber", "in": "query", "required": false, "schema": {"type": "integer"}}
        ],
        "responses": {
          "200": {"description": "OK"},
          "404": {"description": "Client or account not found"}
        }
      }
    },
    "/deposit": {
      "post": {
        "summary": "Deposit funds",
        "security": [{"BasicAuth": []}],
        "requestBody": {"$ref": "#/components/requestBodies/Transaction"},
        "responses": {
          "200": {"description": "OK"},
          "404": {"description": "Client or account not found"},
          "422": {"description": "Transaction rejected"}
        }
      }
    },
    "/withdraw": {
      "post": {
        "summary": "Withdraw funds",
        "security": [{"BasicAuth": []}],
        "requestBody": {"$ref": "#/components/requestBodies/Transaction"},
        "responses": {
          "200": {"description": "OK"},
          "404": {"description": "Client or account not found"},
          "422": {"description": "Transaction rejected"}
        }
      }
    }
  },
  "components": {
    "securitySchemes": {
      "BasicAuth": {"type": "http", "scheme": "basic"}
    },
    "requestBodies": {
      "Transaction": {
        "required": true,
        "content": {
          "application/json": {
            "schema": {
              "type": "object",
              "required": ["cpf", "amount"],
              "properties": {
                "cpf": {"type": "string"},
                "accountNumber": {"type": "integer"},
                "amount": {"type": "string", "example": "150.00"}
              }
            }
          }
        }
      }
    }
  }
}`
