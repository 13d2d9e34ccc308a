package handlers

import (
	"signlearn_backend/internal/auth"
	"signlearn_backend/internal/validator"
)

func newTestBase() *BaseHandler {
	return NewBaseHandler(validator.New())
}

func testTokens() *auth.TokenManager {
	return auth.NewTokenManager("handler-test-secret", "signlearn", "signlearn-app", 7)
}
