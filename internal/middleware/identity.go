package middleware

// identity.go holds helpers shared across middleware files: extracting a
// stable caller identifier for rate-limit keys from whatever identity the
// auth layer has placed in the Echo context.

import (
    "fmt"

    "github.com/labstack/echo/v4"
)

// currentUserID returns the authenticated user's id as a string for use
// in rate-limit keys, or "anon" when the request is unauthenticated.
// JWTAuth stores the raw "sub" claim, which arrives as a JSON number.
func currentUserID(c echo.Context) string {
    switch v := c.Get("user_id").(type) {
    case nil:
        return "anon"
    case string:
        if v != "" {
            return v
        }
        return "anon"
    case float64:
        return fmt.Sprintf("%.0f", v)
    default:
        return fmt.Sprint(v)
    }
}
