package main

// @title Catalog Service API
// @version 1.0
// @description This is the Catalog Service API with full observability (logging, tracing, metrics)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/stockly/stock-management
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/stockly/stock-management/blob/main/LICENSE

// @host localhost:8081
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Products
// @tag.description Product catalog endpoints

// @tag.name Health
// @tag.description Health check endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints
