// @title           SignLearn API
// @version         1.0
// @description     Backend for the SignLearn sign-language learning platform.
// @host            localhost:8080
// @BasePath        /api

package main

import "signlearn_backend/internal/app"

func main() {
	app.Run()
}
