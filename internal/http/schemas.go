package http

import (
	"embed"
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

type schemas struct {
	register      *gojsonschema.Schema
	login         *gojsonschema.Schema
	expenseAdd    *gojsonschema.Schema
	expenseUpdate *gojsonschema.Schema
	incomeAdd     *gojsonschema.Schema
	incomeUpdate  *gojsonschema.Schema
	aichat        *gojsonschema.Schema
}

func mustSchema(name string) *gojsonschema.Schema {
	raw, err := schemaFS.ReadFile("schemas/" + name)
	if err != nil {
		panic(err)
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		panic(err)
	}
	return schema
}

func loadSchemas() *schemas {
	return &schemas{
		register:      mustSchema("register.schema.json"),
		login:         mustSchema("login.schema.json"),
		expenseAdd:    mustSchema("expense_add.schema.json"),
		expenseUpdate: mustSchema("expense_update.schema.json"),
		incomeAdd:     mustSchema("income_add.schema.json"),
		incomeUpdate:  mustSchema("income_update.schema.json"),
		aichat:        mustSchema("aichat.schema.json"),
	}
}

// bindValidated reads the request body, checks it against the schema and
// unmarshals it into out. It writes the error response itself and reports
// whether the caller may proceed.
func bindValidated(c *gin.Context, schema *gojsonschema.Schema, out any) bool {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(body) == 0 {
		c.JSON(422, gin.H{"success": false, "message": "Request body is required"})
		return false
	}

	res, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		c.JSON(422, gin.H{"success": false, "message": "Invalid JSON body"})
		return false
	}
	if !res.Valid() {
		details := []string{}
		for _, e := range res.Errors() {
			details = append(details, e.String())
		}
		c.JSON(422, gin.H{"success": false, "message": "Invalid request body", "details": details})
		return false
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.JSON(422, gin.H{"success": false, "message": "Invalid JSON body"})
		return false
	}
	return true
}

// flexBool accepts a JSON boolean or the string "true", matching the loose
// recurring flag the clients send.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case bool:
		*b = flexBool(t)
	case string:
		*b = flexBool(t == "true")
	}
	return nil
}
