// Package docs holds the generated swagger specification served at /swagger/.
package docs

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
        "/api/admission/v1/applicants": {
            "get": {
                "summary": "List applicants with filters and paging",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "summary": "Create or update an application, optionally with a CV",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/admission/v1/applicants/{applicant_id}": {
            "get": {
                "summary": "Fetch one applicant",
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "summary": "Withdraw an application that is still Applied",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/admission/v1/applicants/{applicant_id}/reviews": {
            "get": {
                "summary": "List reviews recorded for an applicant",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/admission/v1/checkin/{auth_id}": {
            "post": {
                "summary": "Check in a confirmed applicant",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/admission/v1/review/next": {
            "get": {
                "summary": "Next batch of applicants for the calling reviewer",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/admission/v1/reviews": {
            "post": {
                "summary": "Record the calling reviewer's score for an applicant",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "meridian admission api",
	Description:      "Hackathon application management: applicant lifecycle, review assignment, review recording.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
