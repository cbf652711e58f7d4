package main

import (
	_ "buildquote/docs"
	"buildquote/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Estimate Composition API
// @version         1.0
// @description     Construction-estimate composition service (line items, document templates, exports) backed by DynamoDB.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
