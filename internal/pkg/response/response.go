package response

import "github.com/gofiber/fiber/v3"

const MessageInternalServerError = "Internal server error"

// Envelope is the success/failure wrapper used by the auth, onboarding, and
// logout endpoints.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK writes {"success":true,"message":...,"data":...}; data is omitted when nil.
func OK(c fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Envelope{Success: true, Message: message, Data: data})
}

// Fail writes {"success":false,"message":...,"error":...}; message is
// omitted when empty.
func Fail(c fiber.Ctx, status int, message, errMsg string) error {
	return c.Status(status).JSON(Envelope{Success: false, Message: message, Error: errMsg})
}

// Error writes the bare {"error":...} body the resource endpoints use.
func Error(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// Message writes the bare {"message":...} body.
func Message(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}
