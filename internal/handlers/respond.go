package handlers

import (
	"errors"
	"fmt"
	"log"
	"reflect"
	"strconv"
	"strings"

	"herbal/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// errorResponse writes the {"error": msg} body used by every failure.
func errorResponse(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// storeError maps a service error to 404 or a logged, generic 500.
func storeError(c *fiber.Ctx, err error, notFoundMsg, failMsg string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return errorResponse(c, fiber.StatusNotFound, notFoundMsg)
	}
	log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	return errorResponse(c, fiber.StatusInternalServerError, failMsg)
}

// idParam parses a positive integer path parameter.
func idParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return uint(id), nil
}

// newValidator returns a validator that reports fields by their JSON name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bindJSON parses the request body into dst and validates it. The returned
// error message is safe to show to clients.
func bindJSON(c *fiber.Ctx, v *validator.Validate, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return errors.New("invalid request body")
	}
	if err := v.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return err
		}
		msgs := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed on the '%s' tag", e.Field(), e.Tag()))
		}
		return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}
	return nil
}

// ErrorHandler renders errors returned from handlers and routing failures
// (unknown route, wrong method) in the common error shape.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	} else {
		log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}
	return errorResponse(c, code, msg)
}
