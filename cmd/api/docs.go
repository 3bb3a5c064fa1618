package main

// @title           Fiscal Engine API
// @version         1.0
// @description     API de classificação contábil e cálculo de tributos para documentos fiscais brasileiros

// @contact.name   ContaFlux
// @contact.email  suporte@contaflux.com.br

// @host      localhost:8080
// @BasePath  /api/v1
