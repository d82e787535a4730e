package main

import "github.com/King-Austin/ATTENDIFY-BACKEND/internal/app"

// @title           Attendify API
// @version         1.0
// @description     Бэкенд учёта посещаемости: преподаватели, курсы, студенты и ведомости.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	app.Run()
}
