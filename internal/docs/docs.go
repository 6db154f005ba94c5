// Package docs serves the OpenAPI document and a Swagger UI page for it.
package docs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var openapiYAML []byte

const uiPage = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
  <meta charset="utf-8">
  <title>Loja API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({ url: "{{DOC_URL}}", dom_id: "#swagger-ui" });
  </script>
</body>
</html>`

// OpenAPIJSON converts the embedded YAML document to JSON.
func OpenAPIJSON() ([]byte, error) {
	var doc interface{}
	if err := yaml.Unmarshal(openapiYAML, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse openapi.yaml: %w", err)
	}
	out, err := json.Marshal(normalize(doc))
	if err != nil {
		return nil, fmt.Errorf("failed to encode openapi document: %w", err)
	}
	return out, nil
}

// normalize turns YAML maps with non-string keys into JSON-encodable ones.
func normalize(v interface{}) interface{} {
	switch t := v.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = normalize(val)
		}
		return m
	case map[string]interface{}:
		for k, val := range t {
			t[k] = normalize(val)
		}
		return t
	case []interface{}:
		for i, val := range t {
			t[i] = normalize(val)
		}
		return t
	}
	return v
}

// Register mounts the UI at path and the document at path+"/openapi.json".
func Register(router fiber.Router, path string) error {
	doc, err := OpenAPIJSON()
	if err != nil {
		return err
	}
	path = "/" + strings.Trim(path, "/")
	docURL := path + "/openapi.json"
	page := strings.Replace(uiPage, "{{DOC_URL}}", docURL, 1)

	router.Get(docURL, func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.Send(doc)
	})
	router.Get(path, func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(page)
	})
	return nil
}
