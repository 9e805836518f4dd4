package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// UIDFromLocals resolves the acting user id set by the JWT middleware.
func UIDFromLocals(c *fiber.Ctx) (bson.ObjectID, error) {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return bson.NilObjectID, fiber.ErrUnauthorized
	}
	oid, err := bson.ObjectIDFromHex(uid)
	if err != nil {
		return bson.NilObjectID, fiber.ErrUnauthorized
	}
	return oid, nil
}
