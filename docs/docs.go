// Package docs registra a documentação OpenAPI servida em /swagger.
// Gerado a partir das anotações dos handlers; regenere com "swag init -g cmd/main.go".
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
        "/v1/auth/login": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Autentica um usuário",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "credenciais",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.LoginResponse"
                        }
                    },
                    "400": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Credenciais inválidas",
                        "schema": {
                            "$ref": "#/definitions/auth.MensagemResponse"
                        }
                    }
                }
            }
        },
        "/v1/patio": {
            "get": {
                "tags": [
                    "patio"
                ],
                "summary": "Lista todos",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.PatioResponse"
                            }
                        }
                    },
                    "204": {
                        "description": "Nenhum registro"
                    }
                }
            },
            "post": {
                "tags": [
                    "patio"
                ],
                "summary": "Cria",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.PatioRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.PatioResponse"
                        },
                        "headers": {
                            "Location": {
                                "type": "string",
                                "description": "URL do recurso criado"
                            }
                        }
                    },
                    "400": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/patio/pagina": {
            "get": {
                "tags": [
                    "patio"
                ],
                "summary": "Lista paginada",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "default": 1,
                        "name": "numeroPag",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 10,
                        "name": "tamanhoPag",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "204": {
                        "description": "Página vazia"
                    },
                    "400": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/patio/{id}": {
            "get": {
                "tags": [
                    "patio"
                ],
                "summary": "Obtém por ID",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.PatioResponse"
                        }
                    },
                    "404": {
                        "description": "Não encontrado"
                    }
                }
            },
            "put": {
                "tags": [
                    "patio"
                ],
                "summary": "Atualiza",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.PatioRequest"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Não encontrado"
                    }
                }
            },
            "delete": {
                "tags": [
                    "patio"
                ],
                "summary": "Remove",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Não encontrado"
                    },
                    "409": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v2/filial": {
            "get": {
                "tags": [
                    "filial"
                ],
                "summary": "Lista todos",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.FilialResponse"
                            }
                        }
                    },
                    "204": {
                        "description": "Nenhum registro"
                    }
                }
            },
            "post": {
                "tags": [
                    "filial"
                ],
                "summary": "Cria",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.FilialRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.FilialResponse"
                        },
                        "headers": {
                            "Location": {
                                "type": "string",
                                "description": "URL do recurso criado"
                            }
                        }
                    },
                    "400": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v2/filial/pagina": {
            "get": {
                "tags": [
                    "filial"
                ],
                "summary": "Lista paginada",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "default": 1,
                        "name": "numeroPag",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 10,
                        "name": "tamanhoPag",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "204": {
                        "description": "Página vazia"
                    },
                    "400": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v2/filial/{id}": {
            "get": {
                "tags": [
                    "filial"
                ],
                "summary": "Obtém por ID",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.FilialResponse"
                        }
                    },
                    "404": {
                        "description": "Não encontrado"
                    }
                }
            },
            "put": {
                "tags": [
                    "filial"
                ],
                "summary": "Atualiza",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.FilialRequest"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Não encontrado"
                    }
                }
            },
            "delete": {
                "tags": [
                    "filial"
                ],
                "summary": "Remove",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Não encontrado"
                    },
                    "409": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/usuario": {
            "get": {
                "tags": [
                    "usuario"
                ],
                "summary": "Lista todos",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.UsuarioResponse"
                            }
                        }
                    },
                    "204": {
                        "description": "Nenhum registro"
                    }
                }
            },
            "post": {
                "tags": [
                    "usuario"
                ],
                "summary": "Cria",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.UsuarioRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.UsuarioResponse"
                        },
                        "headers": {
                            "Location": {
                                "type": "string",
                                "description": "URL do recurso criado"
                            }
                        }
                    },
                    "400": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/usuario/pagina": {
            "get": {
                "tags": [
                    "usuario"
                ],
                "summary": "Lista paginada",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "default": 1,
                        "name": "numeroPag",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 10,
                        "name": "tamanhoPag",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "204": {
                        "description": "Página vazia"
                    },
                    "400": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/usuario/{id}": {
            "get": {
                "tags": [
                    "usuario"
                ],
                "summary": "Obtém por ID",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.UsuarioResponse"
                        }
                    },
                    "404": {
                        "description": "Não encontrado"
                    }
                }
            },
            "put": {
                "tags": [
                    "usuario"
                ],
                "summary": "Atualiza",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.UsuarioRequest"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Não encontrado"
                    }
                }
            },
            "delete": {
                "tags": [
                    "usuario"
                ],
                "summary": "Remove",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Não encontrado"
                    },
                    "409": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/leitorrfid": {
            "get": {
                "tags": [
                    "leitorrfid"
                ],
                "summary": "Lista todos",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.LeitorRfidResponse"
                            }
                        }
                    },
                    "204": {
                        "description": "Nenhum registro"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            },
            "post": {
                "tags": [
                    "leitorrfid"
                ],
                "summary": "Cria",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.LeitorRfidRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.LeitorRfidResponse"
                        },
                        "headers": {
                            "Location": {
                                "type": "string",
                                "description": "URL do recurso criado"
                            }
                        }
                    },
                    "400": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/leitorrfid/pagina": {
            "get": {
                "tags": [
                    "leitorrfid"
                ],
                "summary": "Lista paginada",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "default": 1,
                        "name": "numeroPag",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 10,
                        "name": "tamanhoPag",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "204": {
                        "description": "Página vazia"
                    },
                    "400": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/leitorrfid/{id}": {
            "get": {
                "tags": [
                    "leitorrfid"
                ],
                "summary": "Obtém por ID",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.LeitorRfidResponse"
                        }
                    },
                    "404": {
                        "description": "Não encontrado"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            },
            "put": {
                "tags": [
                    "leitorrfid"
                ],
                "summary": "Atualiza",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.LeitorRfidRequest"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Não encontrado"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "leitorrfid"
                ],
                "summary": "Remove",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Não encontrado"
                    },
                    "409": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/leiturarfid": {
            "get": {
                "tags": [
                    "leiturarfid"
                ],
                "summary": "Lista todos",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.LeituraRfidResponse"
                            }
                        }
                    },
                    "204": {
                        "description": "Nenhum registro"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            },
            "post": {
                "tags": [
                    "leiturarfid"
                ],
                "summary": "Cria",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.LeituraRfidRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.LeituraRfidResponse"
                        },
                        "headers": {
                            "Location": {
                                "type": "string",
                                "description": "URL do recurso criado"
                            }
                        }
                    },
                    "400": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/leiturarfid/pagina": {
            "get": {
                "tags": [
                    "leiturarfid"
                ],
                "summary": "Lista paginada",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "default": 1,
                        "name": "numeroPag",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 10,
                        "name": "tamanhoPag",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "204": {
                        "description": "Página vazia"
                    },
                    "400": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/leiturarfid/{id}": {
            "get": {
                "tags": [
                    "leiturarfid"
                ],
                "summary": "Obtém por ID",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.LeituraRfidResponse"
                        }
                    },
                    "404": {
                        "description": "Não encontrado"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            },
            "put": {
                "tags": [
                    "leiturarfid"
                ],
                "summary": "Atualiza",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.LeituraRfidRequest"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Não encontrado"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "leiturarfid"
                ],
                "summary": "Remove",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Não encontrado"
                    },
                    "409": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/v1/moto": {
            "get": {
                "tags": [
                    "moto"
                ],
                "summary": "Lista todos",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.MotoResponse"
                            }
                        }
                    },
                    "204": {
                        "description": "Nenhum registro"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            },
            "post": {
                "tags": [
                    "moto"
                ],
                "summary": "Cria",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.MotoRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.MotoResponse"
                        },
                        "headers": {
                            "Location": {
                                "type": "string",
                                "description": "URL do recurso criado"
                            }
                        }
                    },
                    "400": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/v1/moto/pagina": {
            "get": {
                "tags": [
                    "moto"
                ],
                "summary": "Lista paginada",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "default": 1,
                        "name": "numeroPag",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 10,
                        "name": "tamanhoPag",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "204": {
                        "description": "Página vazia"
                    },
                    "400": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/v1/moto/{id}": {
            "get": {
                "tags": [
                    "moto"
                ],
                "summary": "Obtém por ID",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.MotoResponse"
                        }
                    },
                    "404": {
                        "description": "Não encontrado"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            },
            "put": {
                "tags": [
                    "moto"
                ],
                "summary": "Atualiza",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.MotoRequest"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Não encontrado"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "moto"
                ],
                "summary": "Remove",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Não encontrado"
                    },
                    "409": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        },
        "/v1/moto/placa": {
            "get": {
                "tags": [
                    "moto"
                ],
                "summary": "Obtém por ID",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Placa da moto",
                        "name": "placa",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Alias de placa",
                        "name": "valor",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.MotoResponse"
                        }
                    },
                    "404": {
                        "description": "Não encontrado"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            },
            "put": {
                "tags": [
                    "moto"
                ],
                "summary": "Atualiza",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Placa da moto",
                        "name": "placa",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Alias de placa",
                        "name": "valor",
                        "in": "query"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.MotoRequest"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Não encontrado"
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "moto"
                ],
                "summary": "Remove",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Placa da moto",
                        "name": "placa",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Alias de placa",
                        "name": "valor",
                        "in": "query"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Não encontrado"
                    },
                    "409": {
                        "description": "Erro",
                        "schema": {
                            "$ref": "#/definitions/respond.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "Bearer": []
                    }
                ]
            }
        }
    },
    "definitions": {
        "respond.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "integer",
                    "example": 400
                },
                "category": {
                    "type": "string",
                    "example": "VALIDATION_ERROR"
                },
                "message": {
                    "type": "string"
                },
                "requestId": {
                    "type": "string"
                },
                "fields": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/errors.FieldError"
                    }
                }
            }
        },
        "errors.FieldError": {
            "type": "object",
            "properties": {
                "campo": {
                    "type": "string",
                    "example": "placa"
                },
                "mensagem": {
                    "type": "string"
                }
            }
        },
        "auth.MensagemResponse": {
            "type": "object",
            "properties": {
                "mensagem": {
                    "type": "string",
                    "example": "Credenciais inválidas"
                }
            }
        },
        "domain.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string",
                    "example": "ana@mottu.com"
                },
                "senha": {
                    "type": "string"
                }
            },
            "required": [
                "email",
                "senha"
            ]
        },
        "domain.LoginResponse": {
            "type": "object",
            "properties": {
                "token": {
                    "type": "string"
                }
            }
        },
        "domain.MotoRequest": {
            "type": "object",
            "properties": {
                "placa": {
                    "type": "string",
                    "example": "ABC1234"
                },
                "modelo": {
                    "type": "string",
                    "enum": [
                        "MottuSport",
                        "MottuE",
                        "MottuPop"
                    ]
                },
                "ano": {
                    "type": "integer",
                    "example": 2024
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "Disponivel",
                        "Alugada",
                        "Manutencao"
                    ]
                },
                "patioId": {
                    "type": "integer",
                    "example": 1
                }
            },
            "required": [
                "placa",
                "modelo",
                "ano",
                "status",
                "patioId"
            ]
        },
        "domain.MotoResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 1
                },
                "placa": {
                    "type": "string",
                    "example": "ABC1234"
                },
                "modelo": {
                    "type": "string",
                    "example": "MottuPop"
                },
                "ano": {
                    "type": "integer",
                    "example": 2024
                },
                "status": {
                    "type": "string",
                    "example": "Disponivel"
                },
                "patioId": {
                    "type": "integer",
                    "example": 1
                }
            }
        },
        "domain.PatioRequest": {
            "type": "object",
            "properties": {
                "nome": {
                    "type": "string",
                    "example": "Pátio Butantã"
                },
                "localizacao": {
                    "type": "string",
                    "example": "Av. Vital Brasil, 100"
                },
                "capacidade": {
                    "type": "integer",
                    "example": 120
                },
                "filialId": {
                    "type": "integer",
                    "example": 1
                }
            },
            "required": [
                "nome",
                "localizacao",
                "capacidade",
                "filialId"
            ]
        },
        "domain.PatioResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 1
                },
                "nome": {
                    "type": "string"
                },
                "localizacao": {
                    "type": "string"
                },
                "capacidade": {
                    "type": "integer",
                    "example": 120
                },
                "filialId": {
                    "type": "integer",
                    "example": 1
                }
            }
        },
        "domain.FilialRequest": {
            "type": "object",
            "properties": {
                "nome": {
                    "type": "string",
                    "example": "Mottu Butantã"
                },
                "endereco": {
                    "type": "string",
                    "example": "Rua Alvarenga, 1200"
                },
                "cidade": {
                    "type": "string",
                    "example": "São Paulo"
                },
                "estado": {
                    "type": "string",
                    "example": "SP"
                }
            },
            "required": [
                "nome",
                "endereco",
                "cidade",
                "estado"
            ]
        },
        "domain.FilialResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 1
                },
                "nome": {
                    "type": "string"
                },
                "endereco": {
                    "type": "string"
                },
                "cidade": {
                    "type": "string"
                },
                "estado": {
                    "type": "string",
                    "example": "SP"
                }
            }
        },
        "domain.UsuarioRequest": {
            "type": "object",
            "properties": {
                "nomeUsuario": {
                    "type": "string",
                    "example": "ana.souza"
                },
                "email": {
                    "type": "string",
                    "example": "ana@mottu.com"
                },
                "senha": {
                    "type": "string"
                },
                "setor": {
                    "type": "string",
                    "enum": [
                        "Administrativo",
                        "Operacional",
                        "Manutencao"
                    ]
                }
            },
            "required": [
                "nomeUsuario",
                "email",
                "senha",
                "setor"
            ]
        },
        "domain.UsuarioResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 1
                },
                "nomeUsuario": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "setor": {
                    "type": "string"
                }
            }
        },
        "domain.LeitorRfidRequest": {
            "type": "object",
            "properties": {
                "identificador": {
                    "type": "string",
                    "example": "LEITOR-BUT-01"
                },
                "localizacao": {
                    "type": "string"
                },
                "patioId": {
                    "type": "integer",
                    "example": 1
                }
            },
            "required": [
                "identificador",
                "localizacao",
                "patioId"
            ]
        },
        "domain.LeitorRfidResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 1
                },
                "identificador": {
                    "type": "string"
                },
                "localizacao": {
                    "type": "string"
                },
                "patioId": {
                    "type": "integer",
                    "example": 1
                }
            }
        },
        "domain.LeituraRfidRequest": {
            "type": "object",
            "properties": {
                "leitorId": {
                    "type": "integer",
                    "example": 1
                },
                "motoId": {
                    "type": "integer",
                    "example": 1
                },
                "dataHora": {
                    "type": "string",
                    "example": "2026-10-15T12:00:00Z"
                }
            },
            "required": [
                "leitorId",
                "motoId"
            ]
        },
        "domain.LeituraRfidResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 1
                },
                "leitorId": {
                    "type": "integer",
                    "example": 1
                },
                "motoId": {
                    "type": "integer",
                    "example": 1
                },
                "dataHora": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "description": "Informe: Bearer {token}",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo contém as informações exportadas da especificação.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "MottuFind API",
	Description:      "Rastreamento de motos da frota Mottu em pátios e filiais.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
