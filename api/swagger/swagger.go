package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Campus Records API",
        "description": "Faculty and student records with profile uploads",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Faculty", "description": "Faculty records"},
        {"name": "Students", "description": "Student records"},
        {"name": "Uploads", "description": "Stored profile files"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Database reachable"},
                    "503": {"description": "Database unreachable"}
                }
            }
        },
        "/api/faculties": {
            "get": {
                "tags": ["Faculty"],
                "summary": "List faculty",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Faculty"}}},
                    "500": {"description": "Error fetching data", "schema": {"$ref": "#/definitions/Message"}}
                }
            },
            "post": {
                "tags": ["Faculty"],
                "summary": "Create faculty",
                "consumes": ["multipart/form-data", "application/x-www-form-urlencoded"],
                "parameters": [
                    {"name": "faculty_number", "in": "formData", "required": true, "type": "string"},
                    {"name": "faculty_name", "in": "formData", "type": "string"},
                    {"name": "joining_year", "in": "formData", "type": "string"},
                    {"name": "birth_date", "in": "formData", "type": "string"},
                    {"name": "department", "in": "formData", "type": "string"},
                    {"name": "mobile", "in": "formData", "type": "string"},
                    {"name": "faculty_email", "in": "formData", "type": "string"},
                    {"name": "faculty_profile", "in": "formData", "type": "file"}
                ],
                "responses": {
                    "201": {"description": "Faculty added successfully", "schema": {"$ref": "#/definitions/Message"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/Message"}},
                    "500": {"description": "Error inserting data", "schema": {"$ref": "#/definitions/Message"}}
                }
            }
        },
        "/api/faculties/{facultyNumber}": {
            "get": {
                "tags": ["Faculty"],
                "summary": "Get faculty",
                "parameters": [
                    {"name": "facultyNumber", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Faculty"}},
                    "404": {"description": "Faculty not found", "schema": {"$ref": "#/definitions/Message"}}
                }
            },
            "put": {
                "tags": ["Faculty"],
                "summary": "Update faculty",
                "description": "Overwrites every attribute. Without a new file the faculty_profile field is stored as sent.",
                "consumes": ["multipart/form-data", "application/x-www-form-urlencoded"],
                "parameters": [
                    {"name": "facultyNumber", "in": "path", "required": true, "type": "string"},
                    {"name": "faculty_name", "in": "formData", "type": "string"},
                    {"name": "joining_year", "in": "formData", "type": "string"},
                    {"name": "birth_date", "in": "formData", "type": "string"},
                    {"name": "department", "in": "formData", "type": "string"},
                    {"name": "mobile", "in": "formData", "type": "string"},
                    {"name": "faculty_email", "in": "formData", "type": "string"},
                    {"name": "faculty_profile", "in": "formData", "type": "file"}
                ],
                "responses": {
                    "200": {"description": "Faculty updated successfully", "schema": {"$ref": "#/definitions/Message"}},
                    "404": {"description": "Faculty not found", "schema": {"$ref": "#/definitions/Message"}},
                    "500": {"description": "Error updating data", "schema": {"$ref": "#/definitions/Message"}}
                }
            },
            "delete": {
                "tags": ["Faculty"],
                "summary": "Delete faculty",
                "parameters": [
                    {"name": "facultyNumber", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Faculty deleted successfully", "schema": {"$ref": "#/definitions/Message"}},
                    "404": {"description": "Faculty not found", "schema": {"$ref": "#/definitions/Message"}},
                    "500": {"description": "Error deleting data", "schema": {"$ref": "#/definitions/Message"}}
                }
            }
        },
        "/api/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List students",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Student"}}},
                    "500": {"description": "Error fetching data", "schema": {"$ref": "#/definitions/Message"}}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Create student",
                "consumes": ["multipart/form-data", "application/x-www-form-urlencoded"],
                "parameters": [
                    {"name": "id", "in": "formData", "required": true, "type": "string"},
                    {"name": "name", "in": "formData", "type": "string"},
                    {"name": "birth_date", "in": "formData", "type": "string"},
                    {"name": "mobile", "in": "formData", "type": "string"},
                    {"name": "email", "in": "formData", "type": "string"},
                    {"name": "department", "in": "formData", "type": "string"},
                    {"name": "cgpa", "in": "formData", "type": "number"},
                    {"name": "profile", "in": "formData", "type": "file"}
                ],
                "responses": {
                    "201": {"description": "Student added successfully", "schema": {"$ref": "#/definitions/Message"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/Message"}},
                    "500": {"description": "Error inserting data", "schema": {"$ref": "#/definitions/Message"}}
                }
            }
        },
        "/api/students/{id}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Student"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/Message"}}
                }
            },
            "put": {
                "tags": ["Students"],
                "summary": "Update student",
                "description": "Overwrites every attribute. Without a new file the profile field is stored as sent.",
                "consumes": ["multipart/form-data", "application/x-www-form-urlencoded"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "name", "in": "formData", "type": "string"},
                    {"name": "birth_date", "in": "formData", "type": "string"},
                    {"name": "mobile", "in": "formData", "type": "string"},
                    {"name": "email", "in": "formData", "type": "string"},
                    {"name": "department", "in": "formData", "type": "string"},
                    {"name": "cgpa", "in": "formData", "type": "number"},
                    {"name": "profile", "in": "formData", "type": "file"}
                ],
                "responses": {
                    "200": {"description": "Student updated successfully", "schema": {"$ref": "#/definitions/Message"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/Message"}},
                    "500": {"description": "Error updating data", "schema": {"$ref": "#/definitions/Message"}}
                }
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Student deleted successfully", "schema": {"$ref": "#/definitions/Message"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/Message"}},
                    "500": {"description": "Error deleting data", "schema": {"$ref": "#/definitions/Message"}}
                }
            }
        },
        "/uploads/{filename}": {
            "get": {
                "tags": ["Uploads"],
                "summary": "Download a stored profile file",
                "produces": ["application/octet-stream"],
                "parameters": [
                    {"name": "filename", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File bytes", "schema": {"type": "file"}},
                    "404": {"description": "File not found", "schema": {"$ref": "#/definitions/Message"}}
                }
            }
        }
    },
    "definitions": {
        "Faculty": {
            "type": "object",
            "properties": {
                "faculty_number": {"type": "string"},
                "faculty_name": {"type": "string", "x-nullable": true},
                "faculty_profile": {"type": "string", "x-nullable": true},
                "joining_year": {"type": "string", "x-nullable": true},
                "birth_date": {"type": "string", "x-nullable": true},
                "department": {"type": "string", "x-nullable": true},
                "mobile": {"type": "string", "x-nullable": true},
                "faculty_email": {"type": "string", "x-nullable": true}
            }
        },
        "Student": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string", "x-nullable": true},
                "profile": {"type": "string", "x-nullable": true},
                "birth_date": {"type": "string", "x-nullable": true},
                "mobile": {"type": "string", "x-nullable": true},
                "email": {"type": "string", "x-nullable": true},
                "department": {"type": "string", "x-nullable": true},
                "cgpa": {"type": "number", "x-nullable": true}
            }
        },
        "Message": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "error": {"type": "string"},
                "code": {"type": "string"}
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
